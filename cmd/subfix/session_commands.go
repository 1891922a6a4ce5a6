package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subfix/internal/session"
	"subfix/internal/srt"
)

func newSessionCommand(ctx *commandContext) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage saved editing sessions",
	}

	sessionCmd.AddCommand(newSessionSaveCommand(ctx))
	sessionCmd.AddCommand(newSessionListCommand(ctx))
	sessionCmd.AddCommand(newSessionRestoreCommand(ctx))
	sessionCmd.AddCommand(newSessionDeleteCommand(ctx))
	sessionCmd.AddCommand(newSessionClearCommand(ctx))

	return sessionCmd
}

func newSessionSaveCommand(ctx *commandContext) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save FILE",
		Short: "Store a subtitle file in the session database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			limits := cfg.TimelineLimits()

			doc, warnings, err := srt.ReadFile(args[0], limits)
			if err != nil {
				return err
			}
			for _, warning := range warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", warning)
			}

			target := strings.TrimSpace(name)
			if target == "" {
				target = filepath.Base(args[0])
			}

			store, err := session.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveDocument(cmd.Context(), target, doc, limits); err != nil {
				return fmt.Errorf("save session %q: %w", target, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %q (%d cues)\n", target, doc.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Session name (default: file basename)")
	return cmd
}

func newSessionListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.Open(ctx.configValue())
			if err != nil {
				return err
			}
			defer store.Close()

			infos, err := store.ListDocuments(cmd.Context())
			if err != nil {
				return fmt.Errorf("list sessions: %w", err)
			}

			if asJSON {
				return writeJSON(cmd, infos)
			}
			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no saved sessions")
				return nil
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{
					info.Name,
					fmt.Sprintf("%d", info.Segments),
					info.UpdatedAt.Local().Format("2006-01-02 15:04:05"),
				})
			}
			renderTable(cmd.OutOrStdout(),
				[]string{"Name", "Cues", "Updated"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit machine-readable JSON")
	return cmd
}

func newSessionRestoreCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "restore NAME",
		Short: "Write a saved session back out as a subtitle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.Open(ctx.configValue())
			if err != nil {
				return err
			}
			defer store.Close()

			doc, _, err := store.LoadDocument(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					return fmt.Errorf("no saved session named %q", args[0])
				}
				return fmt.Errorf("load session %q: %w", args[0], err)
			}

			target := outputPath
			if target == "" {
				target = args[0]
				if filepath.Ext(target) == "" {
					target += ".srt"
				}
			}
			if err := srt.WriteFile(target, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d cues)\n", target, doc.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: session name)")
	return cmd
}

func newSessionDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Remove a saved session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.Open(ctx.configValue())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteDocument(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, session.ErrNotFound) {
					return fmt.Errorf("no saved session named %q", args[0])
				}
				return fmt.Errorf("delete session %q: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", args[0])
			return nil
		},
	}
}

func newSessionClearCommand(ctx *commandContext) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all saved sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("pass --yes to confirm clearing all saved sessions")
			}
			store, err := session.Open(ctx.configValue())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear sessions: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "all sessions cleared")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "Confirm removal of every saved session")
	return cmd
}
