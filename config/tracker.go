package config

import "time"

// TrackerConfig contains background job tracker configuration.
type TrackerConfig struct {
	// Retention is how long a job stays queryable after reaching a terminal
	// state. After this window the job is removed and lookups report not found.
	Retention time.Duration `env:"TRACKER_RETENTION" envDefault:"5m"`

	// SweepInterval is the retention reaper tick interval. A terminal job is
	// removed on the first sweep at or after completion time plus Retention.
	SweepInterval time.Duration `env:"TRACKER_SWEEP_INTERVAL" envDefault:"30s"`
}

// Sanitize applies guardrails to tracker configuration values.
func (t *TrackerConfig) Sanitize() {
	if t.Retention < time.Second {
		t.Retention = time.Second
	}
	if t.SweepInterval < time.Second {
		t.SweepInterval = time.Second
	}
	// Sweeping slower than the retention window would let jobs linger for up
	// to a full extra interval; clamp to the retention window.
	if t.SweepInterval > t.Retention {
		t.SweepInterval = t.Retention
	}
}
