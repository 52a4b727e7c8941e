package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - database.go: ERP partition and document store configuration
//   - http.go: HTTP server configuration
//   - tracker.go: background job tracker configuration
//   - notify.go: outbound notification and QR decoder configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, etc.)
	IsDev bool `env:"DEV" envDefault:"false"`

	// Partition database configuration, one block per ERP site.
	KOL PartitionConfig `envPrefix:"KOL_DB_"`
	AHM PartitionConfig `envPrefix:"AHM_DB_"`

	// Document store configuration (Redis-backed).
	Redis RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Service mode configuration
	Services string `env:"SERVICES" envDefault:"http,tracker"`

	// Job tracker configuration
	Tracker TrackerConfig

	// Outbound notification configuration
	Notify NotifyConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Tracker.Sanitize()
	c.Notify.Sanitize()
	c.Observability.Sanitize()
}

// GetEnabledServices returns the enabled services based on the Services field.
func (c *AppConfig) GetEnabledServices() (map[ServiceMode]bool, error) {
	return ParseServices(c.Services)
}

// IsHTTPServerEnabled returns true if the HTTP server service is enabled.
func (c *AppConfig) IsHTTPServerEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeHTTP]
}

// IsTrackerEnabled returns true if the job tracker reaper is enabled.
func (c *AppConfig) IsTrackerEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeTracker]
}
