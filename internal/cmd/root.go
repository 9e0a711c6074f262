// Package cmd wires the phaseline command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/phaseline/internal/log"
	"github.com/felixgeelhaar/phaseline/internal/version"
)

// NewRootCmd builds a fresh command tree. Commands hold no package
// state, so concurrent trees do not interfere.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phaseline",
		Short: "Dependency-aware phase scheduler for work backlogs",
		Long: `phaseline partitions a backlog of interdependent work items into
ordered concurrency phases, judges whether dependency-eligible items
are actually safe to run together given the files they touch, and
renders the result as directed instructions for whatever agent
executes the work.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(cmd)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "warn", "minimum log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log output format (text, json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress all diagnostic logging")

	rootCmd.AddCommand(newScheduleCmd())
	rootCmd.AddCommand(newConflictsCmd())
	rootCmd.AddCommand(newInstructCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// Execute runs a fresh command tree
func Execute() error {
	return NewRootCmd().Execute()
}

// ExecuteContext runs a fresh command tree with the given context
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// configureLogging builds the global logger from the persistent flags.
// Logs go to stderr so plan output on stdout stays machine-readable.
func configureLogging(cmd *cobra.Command) error {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}

	config := log.DefaultConfig()
	config.Level = log.ParseLevel(level)
	config.Format = log.ParseFormat(format)
	config.ServiceVersion = version.Version
	if quiet {
		config.Level = log.LevelError
	}

	log.SetDefaultLogger(log.New(config))
	return nil
}
