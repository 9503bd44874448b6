// filepath: internal/cli/recovery_command.go
package cli

import (
	"fmt"

	"focusboard/internal/services"

	"github.com/spf13/cobra"
)

type RecoveryOptions struct {
	DryRun bool // If true, report only without editing
}

func NewRecoveryCommand(globalOptions *GlobalOptions) *cobra.Command {

	recoveryOptions := &RecoveryOptions{DryRun: false}

	recoveryCommand := &cobra.Command{
		Use:   "recovery",
		Short: "Run maintenance tasks to fix database inconsistencies",
		Long: `Scans the tasks for a completed flag that disagrees with the completion time
(e.g., rows edited by hand) and repairs them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecovery(cmd, globalOptions, recoveryOptions)
		},
	}

	recoveryOptions.registerFlags(recoveryCommand)

	return recoveryCommand

}

func (opt *RecoveryOptions) registerFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&opt.DryRun, "dryrun", false, "If true, report only without editing.")
}

func runRecovery(cmd *cobra.Command, globalOptions *GlobalOptions, recoveryOptions *RecoveryOptions) error {
	ctx := cmd.Context()
	logger := globalOptions.Logger

	repo, err := globalOptions.openCurrentRepository(ctx)
	if err != nil {
		return fmt.Errorf("cannot run recovery: %w", err)
	}
	defer repo.Close()

	logger.Info("Starting recovery process...")

	totalFixed, err := services.NewRecoveryService(repo, logger).FixCompletionTimes(ctx, recoveryOptions.DryRun)
	if err != nil {
		return err
	}

	logger.Infof("Recovery complete. Total tasks fixed: %d", totalFixed)
	if recoveryOptions.DryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%d task(s) need fixing\n", totalFixed)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%d task(s) fixed\n", totalFixed)
	}
	return nil
}
