// Package config loads the YAML configuration file. Provider credentials live
// here (or in flags), never in code.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SMS holds messaging provider credentials and tuning.
type SMS struct {
	AccountSID     string `yaml:"account_sid"`
	AuthToken      string `yaml:"auth_token"`
	FromNumber     string `yaml:"from_number"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Configured reports whether a real provider is usable. When false the server
// falls back to a log-only sender.
func (s SMS) Configured() bool {
	return s.AccountSID != "" && s.AuthToken != "" && s.FromNumber != ""
}

// Timeout returns the provider call timeout.
func (s SMS) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Config is the full server configuration.
type Config struct {
	Addr    string `yaml:"addr"`
	DBPath  string `yaml:"db"`
	LogPath string `yaml:"log"`
	SMS     SMS    `yaml:"sms"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Addr:   ":8080",
		DBPath: "paketnik.sqlite3",
		SMS:    SMS{TimeoutSeconds: 10},
	}
}

// Load reads the config file at path, applying defaults for anything unset.
// A missing file is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "paketnik.sqlite3"
	}
	if cfg.SMS.TimeoutSeconds <= 0 {
		cfg.SMS.TimeoutSeconds = 10
	}

	return cfg, nil
}
