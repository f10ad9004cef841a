package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gravitrone/designkit/internal/ui/components"
)

// Env vars that override the file.
const (
	EnvLogLevel = "DESIGNKIT_LOG_LEVEL"
	EnvLogFile  = "DESIGNKIT_LOG_FILE"
)

// Config holds user preferences stored at ~/.designkit/config.
type Config struct {
	Theme      string                `yaml:"theme"`
	TabVariant components.TabVariant `yaml:"tab_variant,omitempty"`
	VimKeys    bool                  `yaml:"vim_keys"`
	Layout     string                `yaml:"layout,omitempty"`
	LogLevel   string                `yaml:"log_level,omitempty"`
	LogFile    string                `yaml:"log_file,omitempty"`
}

// Default returns the preferences used when no config file exists.
func Default() *Config {
	return &Config{
		Theme:      "dark",
		TabVariant: components.TabPill,
		VimKeys:    true,
		LogLevel:   "info",
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".designkit", "config")
}

// Load reads and parses the config file. A missing file returns an error
// wrapping os.ErrNotExist; callers usually fall back to Default.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	if perm := info.Mode().Perm(); perm&0077 != 0 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	variant, ok := components.ParseTabVariant(string(cfg.TabVariant))
	if !ok {
		return nil, fmt.Errorf("config tab_variant %q: want pill or underline", cfg.TabVariant)
	}
	cfg.TabVariant = variant

	cfg.applyEnv()
	return cfg, nil
}

// LoadOrDefault is Load with a fallback to Default when the file is missing.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return nil, err
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
}
