// filepath: internal/cli/stats_command.go
package cli

import (
	"fmt"
	"text/tabwriter"

	"focusboard/internal/models"
	"focusboard/internal/services"

	"github.com/spf13/cobra"
)

type StatsOptions struct {
	JSON bool
}

func NewStatsCommand(globalOptions *GlobalOptions) *cobra.Command {

	statsOptions := &StatsOptions{}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the row count of every table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, globalOptions, statsOptions)
		},
	}
	statsCmd.Flags().BoolVar(&statsOptions.JSON, "json", false, "Print JSON instead of a table.")

	return statsCmd
}

func runStats(cmd *cobra.Command, globalOptions *GlobalOptions, opt *StatsOptions) error {
	ctx := cmd.Context()

	repo, err := globalOptions.openCurrentRepository(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	stats, err := services.NewStatsService(repo, repo.Tables()).TableStats(ctx)
	if err != nil {
		return err
	}
	taskSvc, err := services.NewTaskService(repo, globalOptions.Logger, nil, globalOptions.Conf.Tasks.DefaultOrder)
	if err != nil {
		return err
	}
	open, err := taskSvc.CountOpenTasks(ctx)
	if err != nil {
		return err
	}

	if opt.JSON {
		return writeJSON(cmd.OutOrStdout(), struct {
			Tables    []models.TableStats `json:"tables"`
			OpenTasks int                 `json:"open_tasks"`
		}{stats, open})
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tROWS")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%d\n", s.Table, s.Rows)
	}
	fmt.Fprintf(w, "open tasks\t%d\n", open)
	return w.Flush()
}
