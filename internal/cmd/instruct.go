package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/phaseline/internal/backlog"
	"github.com/felixgeelhaar/phaseline/internal/instruct"
	"github.com/felixgeelhaar/phaseline/internal/schedule"
	"github.com/felixgeelhaar/phaseline/internal/ux"
)

func newInstructCmd() *cobra.Command {
	instructCmd := &cobra.Command{
		Use:   "instruct",
		Short: "Render the backlog as directed execution instructions",
		Long: `Schedules the backlog and renders the result as plain instructions:
the single next action by default, or the whole phased plan with
--full. Worker assignments come from each item's declared worker or
from keyword classification, overridable with a rules file.`,
		RunE: runInstruct,
	}

	instructCmd.Flags().String("in", "", "backlog file (default: .phaseline/backlog.yaml)")
	instructCmd.Flags().Bool("full", false, "render every phase instead of just the next action")
	instructCmd.Flags().String("rules", "", "classifier rules file (default: .phaseline/rules.yaml when present)")
	return instructCmd
}

func runInstruct(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	full, err := cmd.Flags().GetBool("full")
	if err != nil {
		return err
	}
	rules, err := cmd.Flags().GetString("rules")
	if err != nil {
		return err
	}

	snapshot, err := backlog.Load(cmdCtx.In)
	if err != nil {
		return ux.EnhanceError(err)
	}

	formatter := instruct.NewFormatter()
	if rules == "" {
		if defaults := ux.NewPathDefaults(); defaults.HasRulesFile() {
			rules = defaults.RulesFile()
		}
	}
	if rules != "" {
		classifier, err := instruct.LoadRules(rules)
		if err != nil {
			return err
		}
		formatter.Classifier = classifier
	}

	result := schedule.Schedule(snapshot)

	var out string
	if full {
		out = formatter.FullPlan(snapshot, result)
	} else {
		out = formatter.NextAction(snapshot, result)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
