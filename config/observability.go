package config

import "strings"

// ObservabilityConfig contains metrics emission configuration.
type ObservabilityConfig struct {
	// StatsdEnabled toggles StatsD metric emission.
	StatsdEnabled bool `env:"STATSD_ENABLED" envDefault:"false"`

	// StatsdAddr is the UDP address of the StatsD-compatible sink.
	StatsdAddr string `env:"STATSD_ADDR" envDefault:"localhost:8125"`

	// StatsdPrefix is prepended to every metric name.
	StatsdPrefix string `env:"STATSD_PREFIX" envDefault:"erp_gateway"`
}

// Sanitize applies guardrails to observability configuration values.
func (o *ObservabilityConfig) Sanitize() {
	o.StatsdAddr = strings.TrimSpace(o.StatsdAddr)
	if o.StatsdAddr == "" {
		o.StatsdEnabled = false
	}
}
