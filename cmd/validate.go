package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kaudit/config"
)

// newValidateCmd checks a configuration file and reports the effective
// settings.
func newValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"configuration OK: audit enabled=%t capacity=%d flush=%s sink=%s\n",
				cfg.Audit.Enabled,
				cfg.Audit.QueueCapacity,
				cfg.Audit.FlushInterval(),
				cfg.Audit.Sink.Type)
			return nil
		},
	}
}
