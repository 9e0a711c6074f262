package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/phaseline/internal/ux"
)

// CommandContext holds the flags shared by the backlog-reading
// commands, extracted once so RunE functions stay small
type CommandContext struct {
	In     string
	Format string
	Quiet  bool
}

// NewCommandContext extracts the shared flags from a command. The
// backlog path falls back to the default location when --in is empty.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	in, err := cmd.Flags().GetString("in")
	if err != nil {
		return nil, err
	}
	if in == "" {
		in = ux.NewPathDefaults().BacklogFile()
	}

	format := "text"
	if cmd.Flags().Lookup("format") != nil {
		format, err = cmd.Flags().GetString("format")
		if err != nil {
			return nil, err
		}
	}

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		In:     in,
		Format: format,
		Quiet:  quiet,
	}, nil
}
