// Package config loads the server configuration from a YAML file with
// environment overrides. A .env file next to the binary is honored
// when present.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the file nor the environment sets a value.
const (
	DefaultAddr          = ":8080"
	DefaultDSN           = "file:data/portfolio.db"
	DefaultAdminEmail    = "admin@datheory.local"
	DefaultAdminPassword = "admin123"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"` // Listen address, e.g. ":8080".
}

// DatabaseConfig holds the relational store settings.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"` // PostgreSQL or SQLite DSN.
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `yaml:"file"`  // Optional log file; stdout when empty.
	Level string `yaml:"level"` // logrus level name, default "info".
}

// AdminConfig holds the seed credentials for the primary admin.
type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Admin    AdminConfig    `yaml:"admin"`
}

// Load reads the configuration file at path, then applies environment
// overrides and defaults. A missing file is not an error; the
// environment and defaults fully describe a runnable server.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		raw, errRead := os.ReadFile(path)
		switch {
		case errRead == nil:
			if errUnmarshal := yaml.Unmarshal(raw, &cfg); errUnmarshal != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, errUnmarshal)
			}
		case os.IsNotExist(errRead):
			// Fall through to env and defaults.
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", path, errRead)
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func applyEnv(cfg *Config) {
	if v := envValue("PORTFOLIO_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := envValue("PORTFOLIO_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := envValue("PORTFOLIO_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := envValue("PORTFOLIO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := envValue("ADMIN_EMAIL"); v != "" {
		cfg.Admin.Email = v
	}
	if v := envValue("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
}

// applyDefaults fills any values still unset.
func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = DefaultDSN
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Admin.Email == "" {
		cfg.Admin.Email = DefaultAdminEmail
	}
	if cfg.Admin.Password == "" {
		cfg.Admin.Password = DefaultAdminPassword
	}
}

// envValue returns a trimmed environment variable value.
func envValue(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
