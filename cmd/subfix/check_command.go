package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subfix/internal/srt"
	"subfix/internal/textutil"
	"subfix/internal/timecode"
)

type checkReport struct {
	File     string       `json:"file"`
	Segments int          `json:"segments"`
	Issues   int          `json:"issues"`
	Warnings []string     `json:"warnings,omitempty"`
	Cues     []cueFinding `json:"cues,omitempty"`
}

type cueFinding struct {
	Index      int      `json:"index"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Duration   float64  `json:"duration"`
	Chars      int      `json:"chars"`
	Splittable bool     `json:"splittable"`
	Problems   []string `json:"problems"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var showAll bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Report cues that violate limits or collide on the timeline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			limits := cfg.TimelineLimits()
			logger := ctx.ensureLogger()

			var reports []checkReport
			for _, path := range args {
				doc, warnings, err := srt.ReadFile(path, limits)
				if err != nil {
					return err
				}
				logger.Info("parsed file", "file", path, "segments", doc.Len(), "skipped", len(warnings))

				report := checkReport{
					File:     path,
					Segments: doc.Len(),
					Issues:   countIssues(doc),
				}
				for _, warning := range warnings {
					report.Warnings = append(report.Warnings, warning.String())
				}
				for _, seg := range doc.Segments {
					problems := issueSummary(seg)
					if textutil.HasDanglingFormatting(seg.Text) {
						problems = append(problems, "dangling formatting")
					}
					if len(problems) == 0 && !showAll {
						continue
					}
					report.Cues = append(report.Cues, cueFinding{
						Index:      seg.Index,
						Start:      timecode.Format(seg.Start),
						End:        timecode.Format(seg.End),
						Duration:   seg.Duration,
						Chars:      seg.CharCount,
						Splittable: textutil.IsSplittable(seg.Text),
						Problems:   problems,
					})
				}
				reports = append(reports, report)
			}

			if jsonOutput {
				return writeJSON(cmd, reports)
			}
			for _, report := range reports {
				renderCheckReport(cmd, report)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	cmd.Flags().BoolVar(&showAll, "all", false, "List every cue, not only those with problems")
	return cmd
}

func renderCheckReport(cmd *cobra.Command, report checkReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d cues, %d with problems\n", report.File, report.Segments, report.Issues)
	for _, warning := range report.Warnings {
		fmt.Fprintf(out, "  warning: %s\n", warning)
	}
	if len(report.Cues) == 0 {
		return
	}

	rows := make([][]string, 0, len(report.Cues))
	for _, cue := range report.Cues {
		rows = append(rows, []string{
			strconv.Itoa(cue.Index),
			cue.Start + " --> " + cue.End,
			formatSeconds(cue.Duration),
			strconv.Itoa(cue.Chars),
			yesNo(cue.Splittable),
			strings.Join(cue.Problems, ", "),
		})
	}
	renderTable(out,
		[]string{"#", "Span", "Duration", "Chars", "Splittable", "Problems"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
	)
}
