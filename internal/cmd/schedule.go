package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/phaseline/internal/backlog"
	"github.com/felixgeelhaar/phaseline/internal/domain"
	"github.com/felixgeelhaar/phaseline/internal/errors"
	"github.com/felixgeelhaar/phaseline/internal/log"
	"github.com/felixgeelhaar/phaseline/internal/schedule"
	"github.com/felixgeelhaar/phaseline/internal/ux"
)

func newScheduleCmd() *cobra.Command {
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Partition the backlog into ordered concurrency phases",
		Long: `Reads a backlog snapshot and computes which items can start now,
which items run in later phases, and which items are blocked by
unresolved or circular dependencies.`,
		RunE: runSchedule,
	}

	scheduleCmd.Flags().String("in", "", "backlog file (default: .phaseline/backlog.yaml)")
	scheduleCmd.Flags().StringP("format", "f", "text", "output format (text, json, yaml)")
	scheduleCmd.Flags().Bool("strict", false, "exit non-zero when any item is blocked")
	return scheduleCmd
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return err
	}

	snapshot, err := backlog.Load(cmdCtx.In)
	if err != nil {
		return ux.EnhanceError(err)
	}

	report, err := schedule.NewReport(snapshot)
	if err != nil {
		return err
	}
	log.DefaultLogger().Debug("schedule computed",
		"items", snapshot.Len(),
		"phases", len(report.Result.Phases),
		"blocked", len(report.Result.Blocked))

	formatter, err := ux.NewFormatter(cmdCtx.Format, &ux.FormatterOptions{Writer: cmd.OutOrStdout()})
	if err != nil {
		return err
	}

	var out interface{} = report
	if cmdCtx.Format == "text" || cmdCtx.Format == "" {
		out = renderScheduleText(report)
	}
	if err := formatter.Format(out); err != nil {
		return err
	}

	if strict && len(report.Result.Blocked) > 0 {
		return errors.NewSchedBlockedError(len(report.Result.Blocked))
	}
	return nil
}

// renderScheduleText is the human view of a schedule report
func renderScheduleText(report *schedule.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Snapshot %s\n", shortDigest(report.SnapshotDigest))

	if report.Result.TotalScheduled() == 0 && len(report.Result.Blocked) == 0 {
		b.WriteString("Nothing outstanding.\n")
	}

	if len(report.Result.RunnableNow) > 0 {
		fmt.Fprintf(&b, "Runnable now: %s\n", joinIDs(report.Result.RunnableNow))
	}

	for _, phase := range report.Result.Phases {
		fmt.Fprintf(&b, "Phase %d: %s\n", phase.Index+1, joinIDs(phase.Items))
		for _, group := range phase.Groups {
			fmt.Fprintf(&b, "  same prerequisites: %s\n", joinIDs(group))
		}
	}

	if len(report.Result.Blocked) > 0 {
		fmt.Fprintf(&b, "Blocked (%d):\n", len(report.Result.Blocked))
		for _, blocked := range report.Result.Blocked {
			fmt.Fprintf(&b, "  - %s: %s\n", blocked.ID, blocked.Reason)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func joinIDs(ids []domain.ItemID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
