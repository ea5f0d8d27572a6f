package console

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultServerURL = "http://localhost:8080"

// Config is the console's only persisted local state.
type Config struct {
	ServerURL string `yaml:"server_url"`
	Token     string `yaml:"token,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{ServerURL: DefaultServerURL}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/form-console/config.yaml, falling
// back to the platform user config directory.
func DefaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return filepath.Join(".form-console", "config.yaml")
		}
	}
	return filepath.Join(dir, "form-console", "config.yaml")
}

// LoadConfig reads the config at path. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	return cfg, nil
}

// Save writes the config with owner-only permissions since it holds the
// session token.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
