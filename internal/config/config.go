package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"

	fileName = "config.yaml"
)

type Config struct {
	Backend  string `yaml:"backend,omitempty" mapstructure:"backend"`
	Key      string `yaml:"key,omitempty" mapstructure:"key"`
	LogLevel string `yaml:"log_level,omitempty" mapstructure:"log_level"`
}

func Default() *Config {
	return &Config{Backend: BackendFile, Key: "todos", LogLevel: "info"}
}

func ValidateBackend(b string) error {
	switch b {
	case BackendFile, BackendSQLite:
		return nil
	}
	return fmt.Errorf("invalid backend %q: must be one of file, sqlite", b)
}

// Load reads <dataDir>/config.yaml over the defaults. TALLY_BACKEND, TALLY_KEY
// and TALLY_LOG_LEVEL override the file.
func Load(dataDir string) (*Config, error) {
	def := Default()
	v := viper.New()
	v.SetDefault("backend", def.Backend)
	v.SetDefault("key", def.Key)
	v.SetDefault("log_level", def.LogLevel)
	v.SetEnvPrefix("TALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := filepath.Join(dataDir, fileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := ValidateBackend(cfg.Backend); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(dataDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	path := filepath.Join(dataDir, fileName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
