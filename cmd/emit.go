package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kaudit/audit"
	"kaudit/config"
	"kaudit/ocsf"
	"kaudit/version"
)

// newEmitCmd emits sample lifecycle events through a real queue and sink,
// for smoke-testing a collector endpoint.
func newEmitCmd(configPath *string) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Emit sample audit events to the configured sink",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			zl, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = zl.Sync() }()
			logger := zl.Sugar()

			queue, err := audit.NewQueue(audit.QueueConfig{
				Capacity:      cfg.Audit.QueueCapacity,
				FlushInterval: cfg.Audit.FlushInterval(),
			}, buildSink(cfg.Audit.Sink, logger), logger)
			if err != nil {
				return err
			}

			app := ocsf.Product{
				Name:       ocsf.ProductName,
				VendorName: ocsf.VendorName,
				Version:    version.Build(),
			}

			coalesced := 0
			for i := 0; i < count; i++ {
				now := ocsf.Timestamp(time.Now().UnixMilli())
				ev := ocsf.NewApplicationLifecycle(ocsf.AppLifecycleStart, app, ocsf.SeverityInformational, now)
				if queue.Submit(ev) {
					coalesced++
				}
			}

			if err := queue.Flush(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"emitted %d events, %d coalesced, %d records shipped\n",
				count, coalesced, count-coalesced)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of events to emit")
	return cmd
}

// buildSink maps the sink configuration to an implementation.
func buildSink(cfg config.SinkConfig, logger *zap.SugaredLogger) audit.Sink {
	if cfg.Type == config.SinkTypeWebhook {
		return audit.NewWebhookSink(audit.WebhookSinkConfig{
			URL:     cfg.URL,
			Timeout: cfg.Timeout(),
			Headers: cfg.Headers,
		}, logger)
	}
	return audit.NewLogSink(logger)
}
