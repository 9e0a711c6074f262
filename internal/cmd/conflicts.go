package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/phaseline/internal/backlog"
	"github.com/felixgeelhaar/phaseline/internal/conflict"
	"github.com/felixgeelhaar/phaseline/internal/domain"
	"github.com/felixgeelhaar/phaseline/internal/errors"
	"github.com/felixgeelhaar/phaseline/internal/ux"
)

func newConflictsCmd() *cobra.Command {
	conflictsCmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Check work items for unsafe resource overlap",
		Long: `Scans the whole backlog for items whose touched files overlap, or,
with --group, judges whether a specific set of items is safe to run
concurrently. A denied group verdict exits with a dedicated code so
scripts can branch on it.`,
		RunE: runConflicts,
	}

	conflictsCmd.Flags().String("in", "", "backlog file (default: .phaseline/backlog.yaml)")
	conflictsCmd.Flags().StringP("format", "f", "text", "output format (text, json, yaml)")
	conflictsCmd.Flags().StringSlice("group", nil, "item ids to judge as one concurrent group")
	return conflictsCmd
}

func runConflicts(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	group, err := cmd.Flags().GetStringSlice("group")
	if err != nil {
		return err
	}

	snapshot, err := backlog.Load(cmdCtx.In)
	if err != nil {
		return ux.EnhanceError(err)
	}

	formatter, err := ux.NewFormatter(cmdCtx.Format, &ux.FormatterOptions{Writer: cmd.OutOrStdout()})
	if err != nil {
		return err
	}

	if len(group) > 0 {
		return runGroupVerdict(formatter, snapshot, group, cmdCtx.Format)
	}
	return runBacklogScan(formatter, snapshot, cmdCtx.Format)
}

// runGroupVerdict judges the named items as one concurrent group
func runGroupVerdict(formatter ux.Formatter, snapshot *backlog.Snapshot, group []string, format string) error {
	items := make([]backlog.Item, 0, len(group))
	for _, raw := range group {
		id := domain.ItemID(strings.TrimSpace(raw))
		if id == "" {
			continue
		}
		item, ok := snapshot.Item(id)
		if !ok {
			return errors.NewConflictItemUnknownError(id.String())
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return errors.NewConflictGroupEmptyError()
	}

	verdict := conflict.AssessGroup(items)

	var out interface{} = verdict
	if format == "text" || format == "" {
		out = renderVerdictText(verdict)
	}
	if err := formatter.Format(out); err != nil {
		return err
	}

	if !verdict.Allowed {
		return errors.NewConflictGroupDeniedError(verdict.Reason)
	}
	return nil
}

// runBacklogScan reports cross-item overlap across the whole backlog
func runBacklogScan(formatter ux.Formatter, snapshot *backlog.Snapshot, format string) error {
	report, err := conflict.NewScanReport(snapshot)
	if err != nil {
		return err
	}

	var out interface{} = report
	if format == "text" || format == "" {
		out = renderScanText(report)
	}
	return formatter.Format(out)
}

func renderVerdictText(verdict conflict.Verdict) string {
	var b strings.Builder

	if verdict.Allowed {
		fmt.Fprintf(&b, "ALLOW (confidence %d): %s\n", verdict.Confidence, verdict.Reason)
	} else {
		fmt.Fprintf(&b, "DENY (confidence %d): %s\n", verdict.Confidence, verdict.Reason)
	}
	for _, risk := range verdict.RiskFactors {
		fmt.Fprintf(&b, "  risk: %s\n", risk)
	}
	for _, rec := range verdict.Recommendations {
		fmt.Fprintf(&b, "  recommendation: %s\n", rec)
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderScanText(report *conflict.ScanReport) string {
	if len(report.Conflicts) == 0 {
		return "No conflicts found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d conflict(s):\n", len(report.Conflicts))
	for _, record := range report.Conflicts {
		fmt.Fprintf(&b, "  [%s] %s %s: %s\n",
			record.Severity, record.Type, record.FilePath, joinIDs(record.Items))
		if record.Recommendation != "" {
			fmt.Fprintf(&b, "    %s\n", record.Recommendation)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
