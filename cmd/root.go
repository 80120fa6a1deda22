// Package cmd implements the kaudit command line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "kaudit",
		Short:         "OCSF audit event emission for streaming brokers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the configuration file")

	root.AddCommand(newValidateCmd(&configPath))
	root.AddCommand(newEmitCmd(&configPath))
	return root
}
