// filepath: internal/cli/cli.go
package cli

import (
	"context"
	"fmt"
	"os"

	"focusboard/internal/catalog"
	"focusboard/internal/config"
	"focusboard/internal/logging/audit"
	"focusboard/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type GlobalOptions struct {
	CfgFilePath  string
	LogLevel     string
	DBPath       string
	AuditEnabled bool

	Logger *logrus.Logger
	Conf   *config.Config
}

func NewRootCMD() *cobra.Command {

	globalOptions := &GlobalOptions{}

	rootCMD := &cobra.Command{
		Use:          "focusboard",
		Short:        "FocusBoard task and habit tracker",
		Long:         "A local task, habit and reward tracker backed by a single SQLite file.",
		SilenceUsage: true,
		// PersistentPreRunE loads the configuration before any command runs.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.initializeConfig(cmd)
		},
	}

	// register global flags
	globalOptions.registerFlags(rootCMD)

	// add subcommands
	rootCMD.AddCommand(NewInitCommand(globalOptions))
	rootCMD.AddCommand(NewMigrateCommand(globalOptions))
	rootCMD.AddCommand(NewTaskCommand(globalOptions))
	rootCMD.AddCommand(NewProgressCommand(globalOptions))
	rootCMD.AddCommand(NewStatsCommand(globalOptions))
	rootCMD.AddCommand(NewRecoveryCommand(globalOptions))

	return rootCMD
}

func (options *GlobalOptions) registerFlags(cmd *cobra.Command) {
	// flags that can be used for each command
	cmd.PersistentFlags().StringVar(&options.CfgFilePath, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: FB_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&options.LogLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: FB_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&options.DBPath, "db", "", "Path to the SQLite database file. (Env: FB_DATABASE_PATH)")
	cmd.PersistentFlags().BoolVar(&options.AuditEnabled, "audit-enabled", false, "Enable audit logging of changes. (Env: FB_AUDIT_ENABLED=true)")
}

// openRepository opens the configured database with every catalog table registered.
func (options *GlobalOptions) openRepository(ctx context.Context) (*repository.Repository, error) {
	repo := repository.NewRepository(options.Conf.Database.Path, options.Logger)
	catalog.Register(repo)
	if err := repo.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return repo, nil
}

// openCurrentRepository is openRepository for commands that need the tables
// created and every migration applied.
func (options *GlobalOptions) openCurrentRepository(ctx context.Context) (*repository.Repository, error) {
	repo, err := options.openRepository(ctx)
	if err != nil {
		return nil, err
	}
	if err := repo.Initialize(ctx); err != nil {
		repo.Close()
		return nil, err
	}
	if err := repo.ValidateSchema(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("cannot use database %s, run 'focusboard init': %w", repo.Path(), err)
	}
	return repo, nil
}

func (options *GlobalOptions) auditor() audit.Logger {
	return audit.NewLoggerSTDOUT(options.Logger, options.Conf.Logging.AuditEnabled)
}

func Execute() {

	rootCmd := NewRootCMD()

	// Run the command based on os.Args
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
