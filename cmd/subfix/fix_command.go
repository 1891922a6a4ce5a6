package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subfix/internal/cascade"
	"subfix/internal/srt"
)

func newFixCommand(ctx *commandContext) *cobra.Command {
	var minDuration float64
	var dryRun bool
	var outputPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "fix FILE",
		Short: "Bring every under-duration cue up to the minimum by borrowing time",
		Long: `fix plans a sequence of borrow operations: for each cue shorter than the
minimum duration it takes spare time from later cues (duration above the
minimum) and from gaps in the timeline, shifting intermediate cues so their
own durations survive. The plan is all-or-nothing; when the timeline has no
time to give, the blocking cue is reported and nothing changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			limits := cfg.TimelineLimits()
			if minDuration > 0 {
				limits.MinDuration = minDuration
			}
			logger := ctx.ensureLogger()

			path := args[0]
			doc, warnings, err := srt.ReadFile(path, limits)
			if err != nil {
				return err
			}
			for _, warning := range warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", warning)
			}

			plan := cascade.Calculate(doc, limits.MinDuration)
			if jsonOutput {
				if err := writeJSON(cmd, plan); err != nil {
					return err
				}
			} else {
				renderPlan(cmd, plan)
			}
			if !plan.CanBeFixed {
				return fmt.Errorf("cannot fix %s: %s", path, plan.Reason)
			}
			if len(plan.Steps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to fix")
				return nil
			}
			if dryRun {
				return nil
			}

			fixed, err := cascade.Apply(doc, plan, limits)
			if err != nil {
				return err
			}

			target := outputPath
			if target == "" {
				target = srt.EditedName(path)
			}
			if err := srt.WriteFile(target, fixed); err != nil {
				return err
			}
			logger.Info("applied fix plan",
				"file", path,
				"output", target,
				"steps", len(plan.Steps),
				"affected", plan.TotalAffected,
			)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d cues adjusted)\n", target, plan.TotalAffected)
			return nil
		},
	}

	cmd.Flags().Float64Var(&minDuration, "min-duration", 0, "Override the configured minimum cue duration in seconds")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without writing anything")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: input with _edited suffix)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the plan as JSON")
	return cmd
}

func renderPlan(cmd *cobra.Command, plan cascade.Plan) {
	out := cmd.OutOrStdout()
	if !plan.CanBeFixed {
		return
	}
	if len(plan.Steps) == 0 {
		return
	}

	rows := make([][]string, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		rows = append(rows, []string{
			strconv.Itoa(step.Index),
			string(step.Action),
			formatSeconds(step.TimeChange),
			step.Reason,
		})
	}
	renderTable(out,
		[]string{"Cue", "Action", "Delta", "Reason"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
	)
	fmt.Fprintf(out, "%d steps touching %d cues\n", len(plan.Steps), plan.TotalAffected)
}
