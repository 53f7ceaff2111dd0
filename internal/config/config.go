package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Empty-set policies for the average cost recompute
const (
	OnEmptySkip  = "skip"
	OnEmptyReset = "reset"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port         string   `yaml:"port" env:"SERVER_PORT"`
	Mode         string   `yaml:"mode" env:"SERVER_MODE"`
	ReadTimeout  string   `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout string   `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	CORSOrigins  []string `yaml:"cors_origins" env:"SERVER_CORS_ORIGINS" envSeparator:","`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host            string `yaml:"host" env:"DB_HOST"`
	Port            string `yaml:"port" env:"DB_PORT"`
	User            string `yaml:"user" env:"DB_USER"`
	Password        string `yaml:"password" env:"DB_PASSWORD"`
	DBName          string `yaml:"dbname" env:"DB_NAME"`
	SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
	MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
}

// JWTConfig holds token verification settings
type JWTConfig struct {
	Secret string `yaml:"secret" env:"JWT_SECRET"`
	Issuer string `yaml:"issuer" env:"JWT_ISSUER"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// AverageCostConfig controls how bootcamp average costs are maintained
type AverageCostConfig struct {
	// OnEmpty is either "skip" (leave the last average) or "reset" (clear it)
	OnEmpty          string `yaml:"on_empty" env:"AVERAGE_COST_ON_EMPTY"`
	RecomputeTimeout string `yaml:"recompute_timeout" env:"AVERAGE_COST_RECOMPUTE_TIMEOUT"`
	// ReconcileSchedule is a cron spec; empty disables the periodic job
	ReconcileSchedule string `yaml:"reconcile_schedule" env:"AVERAGE_COST_RECONCILE_SCHEDULE"`
}

// SeedConfig controls sample data creation at startup
type SeedConfig struct {
	Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	// OwnerID owns the sample bootcamp; a random id is used when empty
	OwnerID string `yaml:"owner_id" env:"SEED_OWNER_ID"`
}

// Config structure represents the application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	JWT         JWTConfig         `yaml:"jwt"`
	Logging     LoggingConfig     `yaml:"logging"`
	AverageCost AverageCostConfig `yaml:"average_cost"`
	Seed        SeedConfig        `yaml:"seed"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; env vars alone are enough in containers
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	config.AverageCost.OnEmpty = strings.ToLower(strings.TrimSpace(config.AverageCost.OnEmpty))

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.CORSOrigins = []string{"*"}

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "devcamper"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.Issuer = "devcamper.io"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.AverageCost.OnEmpty = OnEmptySkip
	config.AverageCost.RecomputeTimeout = "5s"
	config.AverageCost.ReconcileSchedule = "@every 1h"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	switch config.AverageCost.OnEmpty {
	case OnEmptySkip, OnEmptyReset:
	default:
		return fmt.Errorf("average_cost.on_empty must be %q or %q, got %q", OnEmptySkip, OnEmptyReset, config.AverageCost.OnEmpty)
	}

	for name, value := range map[string]string{
		"server.read_timeout":            config.Server.ReadTimeout,
		"server.write_timeout":           config.Server.WriteTimeout,
		"database.conn_max_lifetime":     config.Database.ConnMaxLifetime,
		"average_cost.recompute_timeout": config.AverageCost.RecomputeTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if config.Seed.OwnerID != "" {
		if _, err := uuid.Parse(config.Seed.OwnerID); err != nil {
			return fmt.Errorf("invalid seed.owner_id: %w", err)
		}
	}

	if config.AverageCost.ReconcileSchedule != "" {
		if _, err := cron.ParseStandard(config.AverageCost.ReconcileSchedule); err != nil {
			return fmt.Errorf("invalid average_cost.reconcile_schedule: %w", err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
