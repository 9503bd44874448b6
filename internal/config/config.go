// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"

	"focusboard/internal/catalog"
	"focusboard/internal/logging"
	"focusboard/internal/shared"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Tasks    TasksConfig    `toml:"tasks"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// TasksConfig holds task listing settings.
type TasksConfig struct {
	DefaultOrder string `toml:"default_order"` // one of catalog.TaskOrders
}

const (
	DefaultDatabasePath = "focusboard.db"
	DefaultLogLevel     = "info"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the configuration to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorCreateFile)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorEncodeFile)
	}
	return nil
}

// ParseAndValidate sets defaults for missing values and rejects unknown
// log levels and task orders.
func (c *Config) ParseAndValidate() error {
	c.applyDefaults()

	if !logging.IsValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}
	if _, ok := catalog.TaskOrders[c.Tasks.DefaultOrder]; !ok {
		return fmt.Errorf("invalid tasks.default_order %q: %w", c.Tasks.DefaultOrder, shared.ErrInvalidOrder)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Database.Path) == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Tasks.DefaultOrder == "" {
		c.Tasks.DefaultOrder = catalog.DefaultTaskOrder
	}
}
