package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subfix/internal/srt"
	"subfix/internal/timecode"
)

func newShiftCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "shift FILE SECONDS",
		Short: "Shift every cue by a number of seconds (negative shifts earlier)",
		Long: `shift moves every cue's start and end by the given amount. Cues are
clamped at zero: a shift that would push a cue before the start of the file
pins its start at 00:00:00,000 and shortens it accordingly.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			limits := cfg.TimelineLimits()

			delta, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
			if err != nil {
				return fmt.Errorf("seconds must be numeric, got %q", args[1])
			}

			doc, warnings, err := srt.ReadFile(args[0], limits)
			if err != nil {
				return err
			}
			for _, warning := range warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", warning)
			}

			shifted := doc.Clone()
			for i, seg := range shifted.Segments {
				start := timecode.Round(seg.Start + delta)
				end := timecode.Round(seg.End + delta)
				if start < 0 {
					start = 0
				}
				if end < 0 {
					end = 0
				}
				seg.Start = start
				seg.End = end
				shifted.Segments[i] = seg
			}
			shifted = shifted.Refresh(limits)

			target := outputPath
			if target == "" {
				target = srt.EditedName(args[0])
			}
			if err := srt.WriteFile(target, shifted); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d cues shifted by %s)\n",
				target, shifted.Len(), formatSeconds(delta))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: input with _edited suffix)")
	return cmd
}
