// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

// NewConfig loads configuration from environment using viper with typed
// defaults and validation. A local .env file fills missing variables.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	passcodes, err := parsePasscodes(v.GetString("session.passcodes"))
	if err != nil {
		return nil, err
	}
	cfg.Session.Passcodes = passcodes

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// parsePasscodes turns a "role:hash,role:hash" string into the role map.
// bcrypt hashes contain no commas or colons, so plain splitting is safe.
func parsePasscodes(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	out := make(map[string]string)
	for _, entry := range strings.Split(raw, ",") {
		role, hash, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok || role == "" || hash == "" {
			return nil, fmt.Errorf("session.passcodes entry %q must be role:hash", entry)
		}
		out[role] = hash
	}
	return out, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("store.backend", "file")
	v.SetDefault("store.dir", defaultStoreDir())

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db_name", "capstone_hub")
	v.SetDefault("postgres.ssl_mode", "disable")

	v.SetDefault("session.token_ttl", 12*time.Hour)
	v.SetDefault("session.login_rps", 1.0)
	v.SetDefault("session.login_burst", 5)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"store.backend",
		"store.dir",
		"postgres.host",
		"postgres.port",
		"postgres.user",
		"postgres.password",
		"postgres.db_name",
		"postgres.ssl_mode",
		"session.secret",
		"session.token_ttl",
		"session.login_rps",
		"session.login_burst",
		"session.passcodes",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

// one dir per profile, like a browser profile's local storage
func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".capstone-hub"
	}
	return filepath.Join(home, ".capstone-hub")
}
