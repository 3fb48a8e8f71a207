package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported exchange rate sources.
const (
	RatesSourceCSV      = "csv"
	RatesSourcePostgres = "postgres"
	RatesSourceRedis    = "redis"
)

// ErrUnknownRatesSource is returned when RATES_SOURCE names no known source.
var ErrUnknownRatesSource = errors.New("unknown rates source")

type Config struct {
	App      AppConfig
	Rates    RatesConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Metrics  MetricsConfig
}

type AppConfig struct {
	Host            string        `envconfig:"APP_HOST"             default:"localhost"`
	Port            string        `envconfig:"APP_PORT"             default:"8080"`
	LogLevel        string        `envconfig:"APP_LOG_LEVEL"        default:"info"`
	Version         string        `envconfig:"APP_VERSION"          default:"1.0.0"`
	ShutdownTimeout time.Duration `envconfig:"APP_SHUTDOWN_TIMEOUT" default:"10s"`
}

type RatesConfig struct {
	Source      string        `envconfig:"RATES_SOURCE"       default:"csv"`
	CSVPath     string        `envconfig:"RATES_CSV_PATH"`
	LoadTimeout time.Duration `envconfig:"RATES_LOAD_TIMEOUT" default:"10s"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST"     default:"localhost"`
	Port     int    `envconfig:"POSTGRES_PORT"     default:"5432"`
	User     string `envconfig:"POSTGRES_USER"     default:"user"`
	Password string `envconfig:"POSTGRES_PASSWORD" default:"password"`
	DBName   string `envconfig:"POSTGRES_DB"       default:"database"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE"  default:"disable"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST"      default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT"      default:"6379"`
	DB       int    `envconfig:"REDIS_DB"        default:"0"`
	Password string `envconfig:"REDIS_PASSWORD"`
	RatesKey string `envconfig:"REDIS_RATES_KEY" default:"exchange_rates"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

// Load reads the env file at path, if it exists, and decodes the environment into a Config.
// Variables already present in the environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Rates.Source {
	case RatesSourceCSV, RatesSourcePostgres, RatesSourceRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRatesSource, c.Rates.Source)
	}
	if c.Rates.LoadTimeout <= 0 {
		return fmt.Errorf("RATES_LOAD_TIMEOUT must be positive, got %s", c.Rates.LoadTimeout)
	}
	return nil
}

// Addr is the HTTP listen address.
func (a AppConfig) Addr() string {
	return net.JoinHostPort(a.Host, a.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode)
}

func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}
