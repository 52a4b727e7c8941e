package config

// PartitionConfig contains connection settings for one ERP database partition.
// The gateway always runs against two partitions (KOL and AHM); each carries
// its own schema version for the production stored procedures.
type PartitionConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"erp"`
	Password string `env:"PASSWORD" envDefault:"erp"`
	Name     string `env:"NAME"     envDefault:"erp"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production

	// MaxOpenConns caps the partition connection pool. The job tracker puts no
	// limiter of its own in front of the pool, so this is the only bound on
	// concurrent external calls.
	MaxOpenConns int `env:"MAX_OPEN_CONNS" envDefault:"10"`
}

// RedisConfig contains document store connection settings.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
