package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/phaseline/internal/version"
)

func newVersionCmd() *cobra.Command {
	var verbose bool
	var asJSON bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print version information including version number, git commit,
build date, Go version, and platform.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()

			if asJSON {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal version info: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "phaseline %s\n", info.Short())
			return nil
		},
	}

	versionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed version information")
	versionCmd.Flags().BoolVar(&asJSON, "json", false, "output version information as JSON")
	return versionCmd
}
