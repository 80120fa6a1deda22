package audit

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sink receives batches of serialized audit records. Records within a
// batch are ordered oldest-first.
type Sink interface {
	Ship(ctx context.Context, records [][]byte) error
}

// WebhookSinkConfig configures an HTTP ingestion endpoint.
type WebhookSinkConfig struct {
	URL     string
	Timeout time.Duration
	// Headers are added to every request, e.g. an authorization token for
	// the SIEM collector.
	Headers map[string]string
}

// WebhookSink POSTs each batch as newline-delimited JSON, the framing most
// SIEM HTTP collectors accept.
type WebhookSink struct {
	config WebhookSinkConfig
	client *http.Client
	logger *zap.SugaredLogger
}

// NewWebhookSink creates a webhook sink. A nil logger defaults to a no-op
// logger; a zero timeout defaults to 10 seconds.
func NewWebhookSink(config WebhookSinkConfig, logger *zap.SugaredLogger) *WebhookSink {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	return &WebhookSink{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// Ship delivers one batch. Any non-2xx response is an error; the caller
// decides whether the batch is retried or dropped.
func (s *WebhookSink) Ship(ctx context.Context, records [][]byte) error {
	var body bytes.Buffer
	for _, record := range records {
		body.Write(record)
		body.WriteByte('\n')
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.URL, &body)
	if err != nil {
		return fmt.Errorf("failed to build sink request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-ndjson")
	batchID := uuid.New().String()
	req.Header.Set("X-Batch-Id", batchID)
	for name, value := range s.config.Headers {
		req.Header.Set(name, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to ship audit batch %s: %w", batchID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sink rejected audit batch %s: status %d", batchID, resp.StatusCode)
	}

	s.logger.Debugw("Shipped audit batch",
		"batch_id", batchID,
		"records", len(records))
	return nil
}

// LogSink writes each record to the logger, for development and tests.
type LogSink struct {
	logger *zap.SugaredLogger
}

// NewLogSink creates a sink that logs every record at info level.
func NewLogSink(logger *zap.SugaredLogger) *LogSink {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &LogSink{logger: logger}
}

// Ship logs each record in order.
func (s *LogSink) Ship(_ context.Context, records [][]byte) error {
	for _, record := range records {
		s.logger.Infow("audit", "record", string(record))
	}
	return nil
}
