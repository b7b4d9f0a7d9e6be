package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration
type Config struct {
	Port        int    `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	APIKey      string `envconfig:"API_KEY" validate:"required"` // API key for authentication
	Environment string `envconfig:"ENVIRONMENT" default:"dev" validate:"oneof=dev staging prod test"`
	Version     string `envconfig:"VERSION" default:"dev"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`

	DBUser         string        `envconfig:"DB_USER" default:"postgres" validate:"required"`
	DBPassword     string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBHost         string        `envconfig:"DB_HOST" default:"localhost" validate:"required"`
	DBPort         int           `envconfig:"DB_PORT" default:"5432" validate:"min=1,max=65535"`
	DBName         string        `envconfig:"DB_NAME" default:"itemsim" validate:"required"`
	DBSSLMode      string        `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns     int           `envconfig:"DB_MAX_CONNS" default:"20" validate:"min=1"`
	DBMaxConnIdle  time.Duration `envconfig:"DB_MAX_CONN_IDLE" default:"5m"`
	DBMaxConnLife  time.Duration `envconfig:"DB_MAX_CONN_LIFE" default:"1h"`
	MigrateOnStart bool          `envconfig:"MIGRATE_ON_START" default:"true"`

	StartingMoney    int           `envconfig:"STARTING_MONEY" default:"10000" validate:"min=0"`
	MaxTxRetries     int           `envconfig:"ECONOMY_MAX_TX_RETRIES" default:"3" validate:"min=0,max=20"`
	LockTimeout      time.Duration `envconfig:"ECONOMY_LOCK_TIMEOUT" default:"2s"`
	CatalogCacheSize int           `envconfig:"CATALOG_CACHE_SIZE" default:"512" validate:"min=1"`
	CatalogCacheTTL  time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"5m"`
	// CatalogSeedFile is applied at startup when it exists. Empty disables seeding.
	CatalogSeedFile string `envconfig:"CATALOG_SEED_FILE" default:"configs/catalog.json"`

	TrustedProxies  []string      `envconfig:"TRUSTED_PROXIES"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

var validate = validator.New()

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load(EnvFile)

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("invalid config %s: failed %q constraint", f.Field(), f.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Warnings returns non-fatal issues such as example secrets left in place.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	return warnings
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     c.DBName,
		RawQuery: "sslmode=" + c.DBSSLMode,
	}
	return u.String()
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
