// filepath: internal/cli/migrate_command.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewMigrateCommand(globalOptions *GlobalOptions) *cobra.Command {

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database schema versions. Use subcommands 'up', 'down', or 'status'.`,
	}

	var upCmd = &cobra.Command{
		Use:   "up",
		Short: "Migrate the database to the most recent version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(cmd, "up", globalOptions)
		},
	}

	var downCmd = &cobra.Command{
		Use:   "down",
		Short: "Roll back the database by one version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(cmd, "down", globalOptions)
		},
	}

	var statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Dump the migration status for the current DB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(cmd, "status", globalOptions)
		},
	}

	// Add subcommands
	migrateCmd.AddCommand(upCmd)
	migrateCmd.AddCommand(downCmd)
	migrateCmd.AddCommand(statusCmd)

	return migrateCmd
}

func runMigration(cmd *cobra.Command, command string, globalOptions *GlobalOptions) error {
	ctx := cmd.Context()

	repo, err := globalOptions.openRepository(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	// Migrations alter the catalog tables, so they must exist first.
	if err := repo.Initialize(ctx); err != nil {
		return err
	}
	if err := repo.Migrate(ctx, command); err != nil {
		return err
	}

	version, err := repo.MigrationVersion(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d\n", version)
	return nil
}
