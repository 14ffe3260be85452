package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Store    StoreConfig    `mapstructure:"store"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Session  SessionConfig  `mapstructure:"session"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case "file":
		if c.Store.Dir == "" {
			return errors.New("store.dir is required for the file backend")
		}
	case "postgres":
		if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
			return errors.New("postgres credentials are required")
		}
		if c.Postgres.Host == "" {
			return errors.New("postgres.host is required")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown store.backend: %s", c.Store.Backend)
	}
	if c.Session.Secret == "" {
		return errors.New("session.secret is required")
	}
	return nil
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// StoreConfig selects and parameterizes the persistence backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
}

// SessionConfig contains login and token settings. Passcodes maps a role to
// a bcrypt hash; roles without an entry log in without one. The map is
// parsed out of the session.passcodes string ("role:hash,role:hash") by
// NewConfig, not decoded by viper.
type SessionConfig struct {
	Secret     string            `mapstructure:"secret"`
	TokenTTL   time.Duration     `mapstructure:"token_ttl"`
	LoginRPS   float64           `mapstructure:"login_rps"`
	LoginBurst int               `mapstructure:"login_burst"`
	Passcodes  map[string]string `mapstructure:"-"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}
