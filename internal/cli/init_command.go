// filepath: internal/cli/init_command.go
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"focusboard/internal/config"

	"github.com/spf13/cobra"
)

type InitOptions struct {
	WriteConfig bool // If true, save the effective config when no config file exists
}

func NewInitCommand(globalOptions *GlobalOptions) *cobra.Command {

	initOptions := &InitOptions{}

	initCommand := &cobra.Command{
		Use:   "init",
		Short: "Create the database tables and apply all migrations",
		Long: `Creates every table of the board that does not exist yet, then brings the schema
to the latest version. Running it again is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, globalOptions, initOptions)
		},
	}

	initOptions.registerFlags(initCommand)

	return initCommand
}

func (opt *InitOptions) registerFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&opt.WriteConfig, "write-config", false, "Write the effective configuration to --config_path if that file does not exist.")
}

func runInit(cmd *cobra.Command, globalOptions *GlobalOptions, initOptions *InitOptions) error {
	ctx := cmd.Context()
	logger := globalOptions.Logger

	repo, err := globalOptions.openRepository(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	version, err := repo.MigrationVersion(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Database %s ready (schema version %d)\n", repo.Path(), version)

	if !initOptions.WriteConfig {
		return nil
	}

	path := globalOptions.CfgFilePath
	if _, err := os.Stat(path); err == nil {
		logger.Warnf("Config file %s already exists, not overwriting", path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := config.SaveConfig(path, globalOptions.Conf); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}
