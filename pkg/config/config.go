package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App         AppConfig
	Seed        SeedConfig
	Redis       RedisConfig
	Idempotency IdempotencyConfig
	Metrics     MetricsConfig
	CORS        CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env             string        `envconfig:"INVENTORY_APP_ENV" required:"true"`
	Port            string        `envconfig:"INVENTORY_APP_PORT" default:"8080"`
	LogLevel        string        `envconfig:"INVENTORY_LOG_LEVEL" default:"info"`
	LogWarnStack    bool          `envconfig:"INVENTORY_LOG_WARN_STACK" default:"false"`
	ShutdownTimeout time.Duration `envconfig:"INVENTORY_SHUTDOWN_TIMEOUT" default:"10s"`
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SeedFixtures reports whether the demo catalog is loaded at startup. Prod never
// gets demo data.
func (c *Config) SeedFixtures() bool {
	return c.Seed.Fixtures && !c.App.IsProd()
}

// SeedConfig controls fixture loading at startup.
type SeedConfig struct {
	Fixtures bool `envconfig:"INVENTORY_SEED_FIXTURES" default:"true"`
}

// RedisConfig is optional; an empty URL and address disables the idempotency store.
type RedisConfig struct {
	URL          string        `envconfig:"INVENTORY_REDIS_URL"`
	Address      string        `envconfig:"INVENTORY_REDIS_ADDR"`
	Password     string        `envconfig:"INVENTORY_REDIS_PASSWORD"`
	DB           int           `envconfig:"INVENTORY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"INVENTORY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"INVENTORY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"INVENTORY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"INVENTORY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"INVENTORY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type IdempotencyConfig struct {
	TTL time.Duration `envconfig:"INVENTORY_IDEMPOTENCY_TTL" default:"24h"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"INVENTORY_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"INVENTORY_METRICS_PATH" default:"/metrics"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"INVENTORY_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (c *Config) validate() error {
	if c.Idempotency.TTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvIdempotencyTTL)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%s must start with /", EnvMetricsPath)
	}
	return nil
}
