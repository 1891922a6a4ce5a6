package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subfix/internal/srt"
)

func newFmtCommand(ctx *commandContext) *cobra.Command {
	var (
		outputPath string
		inPlace    bool
	)

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite a subtitle file in canonical form",
		Long: `fmt re-serializes a subtitle file: cues renumbered from 1, timing lines
normalized to HH:MM:SS,mmm --> HH:MM:SS,mmm, line endings unified, and a
single blank line between cues. Malformed blocks are dropped with a warning.`,
		Args: cobra.ExactArgs(1),
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

			target := outputPath
			if inPlace {
				target = args[0]
			}
			if target == "" {
				target = srt.EditedName(args[0])
			}
			if err := srt.WriteFile(target, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d cues)\n", target, doc.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: input with _edited suffix)")
	cmd.Flags().BoolVarP(&inPlace, "write", "w", false, "Rewrite the file in place")
	return cmd
}
