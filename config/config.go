// Package config loads and validates the audit subsystem configuration.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Sink type identifiers accepted in configuration.
const (
	SinkTypeWebhook = "webhook"
	SinkTypeLog     = "log"
)

// Event class names accepted in audit.enabled_classes.
var knownClasses = map[string]bool{
	"api_activity":          true,
	"authentication":        true,
	"application_lifecycle": true,
}

// SinkConfig selects and configures the audit record destination.
type SinkConfig struct {
	// Type is "webhook" (HTTP collector) or "log" (local logger).
	Type string `mapstructure:"type"`
	// URL is the collector endpoint, required for webhook sinks.
	URL string `mapstructure:"url"`
	// TimeoutSeconds bounds one delivery attempt.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// Headers are added to every delivery, e.g. a collector token.
	Headers map[string]string `mapstructure:"headers"`
}

// Timeout returns the delivery timeout as a duration.
func (s SinkConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// AuditConfig controls the deduplicating emission path.
type AuditConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// QueueCapacity bounds the number of coalesced entries per queue.
	QueueCapacity int `mapstructure:"queue_capacity"`
	// FlushIntervalMs is the background flush cadence in milliseconds.
	FlushIntervalMs int `mapstructure:"flush_interval_ms"`
	// EnabledClasses limits which event classes are emitted; empty means
	// all classes.
	EnabledClasses []string   `mapstructure:"enabled_classes"`
	Sink           SinkConfig `mapstructure:"sink"`
}

// FlushInterval returns the flush cadence as a duration.
func (a AuditConfig) FlushInterval() time.Duration {
	return time.Duration(a.FlushIntervalMs) * time.Millisecond
}

// ClassEnabled reports whether events of the named class are emitted.
func (a AuditConfig) ClassEnabled(class string) bool {
	if len(a.EnabledClasses) == 0 {
		return true
	}
	for _, c := range a.EnabledClasses {
		if c == class {
			return true
		}
	}
	return false
}

// Config is the root configuration.
type Config struct {
	Audit AuditConfig `mapstructure:"audit"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("audit.enabled", true)
	v.SetDefault("audit.queue_capacity", 1024)
	v.SetDefault("audit.flush_interval_ms", 500)
	v.SetDefault("audit.sink.type", SinkTypeLog)
	v.SetDefault("audit.sink.timeout_seconds", 10)
}

// Load reads configuration from the given file (optional; defaults apply
// without one) with KAUDIT_* environment overrides, and validates it.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("KAUDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	a := c.Audit
	if a.QueueCapacity <= 0 {
		return fmt.Errorf("audit.queue_capacity must be positive, got %d", a.QueueCapacity)
	}
	if a.FlushIntervalMs <= 0 {
		return fmt.Errorf("audit.flush_interval_ms must be positive, got %d", a.FlushIntervalMs)
	}
	for _, class := range a.EnabledClasses {
		if !knownClasses[class] {
			return fmt.Errorf("unknown audit event class %q", class)
		}
	}

	switch a.Sink.Type {
	case SinkTypeLog:
	case SinkTypeWebhook:
		if a.Sink.URL == "" {
			return fmt.Errorf("audit.sink.url is required for webhook sinks")
		}
		u, err := url.Parse(a.Sink.URL)
		if err != nil {
			return fmt.Errorf("invalid audit.sink.url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("audit.sink.url must be http or https, got %q", u.Scheme)
		}
	default:
		return fmt.Errorf("unknown audit sink type %q", a.Sink.Type)
	}

	if a.Sink.TimeoutSeconds <= 0 {
		return fmt.Errorf("audit.sink.timeout_seconds must be positive, got %d", a.Sink.TimeoutSeconds)
	}
	return nil
}
