package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subfix/internal/editor"
	"subfix/internal/srt"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "split FILE CUE",
		Short: "Split a cue in two at a balanced word boundary",
		Long: `split divides the cue's text at the word boundary closest to its midpoint
and allocates the cue's time span proportionally to the two halves. Cues with
fewer than two words or no more than ten characters are refused.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			limits := cfg.TimelineLimits()

			doc, _, err := srt.ReadFile(args[0], limits)
			if err != nil {
				return err
			}
			seg, err := parseSegmentIndex(doc, args[1])
			if err != nil {
				return err
			}

			out, ok := editor.Split(doc, seg.Key, limits)
			if !ok {
				return fmt.Errorf("cue %d is not splittable", seg.Index)
			}

			target := outputPath
			if target == "" {
				target = srt.EditedName(args[0])
			}
			if err := srt.WriteFile(target, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d cues)\n", target, out.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: input with _edited suffix)")
	return cmd
}

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "merge FILE CUE",
		Short: "Merge a cue with the one that follows it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			limits := cfg.TimelineLimits()

			doc, _, err := srt.ReadFile(args[0], limits)
			if err != nil {
				return err
			}
			seg, err := parseSegmentIndex(doc, args[1])
			if err != nil {
				return err
			}

			out, ok := editor.MergeWithNext(doc, seg.Key, limits)
			if !ok {
				return fmt.Errorf("cue %d has no following cue to merge with", seg.Index)
			}

			target := outputPath
			if target == "" {
				target = srt.EditedName(args[0])
			}
			if err := srt.WriteFile(target, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d cues)\n", target, out.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: input with _edited suffix)")
	return cmd
}
