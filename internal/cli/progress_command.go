// filepath: internal/cli/progress_command.go
package cli

import (
	"fmt"
	"strconv"

	"focusboard/internal/models"
	"focusboard/internal/services"

	"github.com/spf13/cobra"
)

func NewProgressCommand(globalOptions *GlobalOptions) *cobra.Command {

	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Show or add reward points",
	}

	showCmd := &cobra.Command{
		Use:   "show USER",
		Short: "Show the points and level of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProgressService(cmd, globalOptions, func(svc services.ProgressService) error {
				p, err := svc.GetProgress(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printProgress(cmd, p)
				return nil
			})
		},
	}

	addCmd := &cobra.Command{
		Use:   "add USER POINTS",
		Short: "Add points to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid points %q: %w", args[1], err)
			}
			return withProgressService(cmd, globalOptions, func(svc services.ProgressService) error {
				p, err := svc.AddPoints(cmd.Context(), args[0], points)
				if err != nil {
					return err
				}
				printProgress(cmd, p)
				return nil
			})
		},
	}

	progressCmd.AddCommand(showCmd)
	progressCmd.AddCommand(addCmd)

	return progressCmd
}

func withProgressService(cmd *cobra.Command, globalOptions *GlobalOptions, fn func(services.ProgressService) error) error {
	repo, err := globalOptions.openCurrentRepository(cmd.Context())
	if err != nil {
		return err
	}
	defer repo.Close()

	return fn(services.NewProgressService(repo, globalOptions.Logger, globalOptions.auditor()))
}

func printProgress(cmd *cobra.Command, p *models.Progress) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s points, level %d\n", p.UserID, strconv.FormatFloat(p.Points, 'f', -1, 64), p.Level)
}
