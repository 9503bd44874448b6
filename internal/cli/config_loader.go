// filepath: internal/cli/config_loader.go
package cli

import (
	"fmt"
	"os"
	"strconv"

	"focusboard/internal/config"
	"focusboard/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultConfigPath = "config.toml"

// initializeConfig loads the config file and applies env and flag overrides,
// in that order of increasing precedence, then sets up the logger.
func (options *GlobalOptions) initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv("FB_CONFIG_PATH"); envPath != "" && !cmd.Flags().Changed("config_path") {
		options.CfgFilePath = envPath
	}
	if options.CfgFilePath == "" {
		options.CfgFilePath = defaultConfigPath
	}

	cfg, err := config.LoadConfig(options.CfgFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", options.CfgFilePath, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	options.applyOverrides(cfg, cmd.Flags())

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	options.Conf = cfg

	// 4. Initialize Logging
	options.Logger = logging.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level)

	return nil
}

func (options *GlobalOptions) applyOverrides(c *config.Config, flags *pflag.FlagSet) {
	getEnv := func(key string) string { return os.Getenv(key) }

	// --- Environment Variables ---
	if v := getEnv("FB_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := getEnv("FB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getEnv("FB_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}

	// --- CLI Flags ---
	if flags.Changed("db") {
		c.Database.Path = options.DBPath
	}
	if flags.Changed("log-level") {
		c.Logging.Level = options.LogLevel
	}
	if flags.Changed("audit-enabled") {
		c.Logging.AuditEnabled = options.AuditEnabled
	}
}
