// filepath: internal/cli/task_command.go
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"focusboard/internal/models"
	"focusboard/internal/services"

	"github.com/spf13/cobra"
)

type TaskAddOptions struct {
	Description string
	Urgent      bool
	Important   bool
	Due         string // YYYY-MM-DD
	Tags        []string
}

type TaskListOptions struct {
	Status    string // all, open or done
	Urgent    bool
	Important bool
	JSON      bool
}

func NewTaskCommand(globalOptions *GlobalOptions) *cobra.Command {

	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks and subtasks",
	}

	addOptions := &TaskAddOptions{}
	addCmd := &cobra.Command{
		Use:   "add TITLE...",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskAdd(cmd, globalOptions, addOptions, strings.Join(args, " "))
		},
	}
	addCmd.Flags().StringVarP(&addOptions.Description, "description", "d", "", "Longer description of the task.")
	addCmd.Flags().BoolVarP(&addOptions.Urgent, "urgent", "u", false, "Mark the task urgent.")
	addCmd.Flags().BoolVarP(&addOptions.Important, "important", "i", false, "Mark the task important.")
	addCmd.Flags().StringVar(&addOptions.Due, "due", "", "Due date as YYYY-MM-DD.")
	addCmd.Flags().StringSliceVarP(&addOptions.Tags, "tag", "t", nil, "Tag to attach; repeat or separate with commas.")

	listOptions := &TaskListOptions{}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskList(cmd, globalOptions, listOptions)
		},
	}
	listCmd.Flags().StringVar(&listOptions.Status, "status", "all", "Which tasks to show: all, open or done.")
	listCmd.Flags().BoolVar(&listOptions.Urgent, "urgent", false, "Only urgent (true) or only non-urgent (false) tasks.")
	listCmd.Flags().BoolVar(&listOptions.Important, "important", false, "Only important (true) or only non-important (false) tasks.")
	listCmd.Flags().BoolVar(&listOptions.JSON, "json", false, "Print JSON instead of a table.")

	doneCmd := &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaskService(cmd, globalOptions, func(svc services.TaskService) error {
				task, err := svc.CompleteTask(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Completed %s %s\n", task.ID, task.Title)
				return nil
			})
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task and its subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTaskService(cmd, globalOptions, func(svc services.TaskService) error {
				if err := svc.DeleteTask(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}

	subCmd := &cobra.Command{
		Use:   "sub ID [TITLE...]",
		Short: "Add a subtask, or list the subtasks when no title is given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskSub(cmd, globalOptions, args[0], strings.Join(args[1:], " "))
		},
	}

	taskCmd.AddCommand(addCmd)
	taskCmd.AddCommand(listCmd)
	taskCmd.AddCommand(doneCmd)
	taskCmd.AddCommand(rmCmd)
	taskCmd.AddCommand(subCmd)

	return taskCmd
}

// withTaskService opens a current database for the duration of fn.
func withTaskService(cmd *cobra.Command, globalOptions *GlobalOptions, fn func(services.TaskService) error) error {
	repo, err := globalOptions.openCurrentRepository(cmd.Context())
	if err != nil {
		return err
	}
	defer repo.Close()

	svc, err := services.NewTaskService(repo, globalOptions.Logger, globalOptions.auditor(), globalOptions.Conf.Tasks.DefaultOrder)
	if err != nil {
		return err
	}
	return fn(svc)
}

func runTaskAdd(cmd *cobra.Command, globalOptions *GlobalOptions, opt *TaskAddOptions, title string) error {
	payload := models.TaskCreatePayload{
		Title:       title,
		Description: opt.Description,
		Urgent:      opt.Urgent,
		Important:   opt.Important,
		Tags:        opt.Tags,
	}
	if opt.Due != "" {
		due, err := time.Parse(time.DateOnly, opt.Due)
		if err != nil {
			return fmt.Errorf("invalid --due %q, expected YYYY-MM-DD", opt.Due)
		}
		payload.DueDate = &due
	}

	return withTaskService(cmd, globalOptions, func(svc services.TaskService) error {
		task, err := svc.CreateTask(cmd.Context(), payload)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), task.ID)
		return nil
	})
}

func runTaskList(cmd *cobra.Command, globalOptions *GlobalOptions, opt *TaskListOptions) error {
	filter := models.TaskFilter{}
	switch opt.Status {
	case "all":
	case "open":
		filter.Completed = boolPtr(false)
	case "done":
		filter.Completed = boolPtr(true)
	default:
		return fmt.Errorf("invalid --status %q, expected all, open or done", opt.Status)
	}
	if cmd.Flags().Changed("urgent") {
		filter.Urgent = boolPtr(opt.Urgent)
	}
	if cmd.Flags().Changed("important") {
		filter.Important = boolPtr(opt.Important)
	}

	return withTaskService(cmd, globalOptions, func(svc services.TaskService) error {
		tasks, err := svc.ListTasks(cmd.Context(), filter)
		if err != nil {
			return err
		}
		if opt.JSON {
			return writeJSON(cmd.OutOrStdout(), tasks)
		}
		return writeTaskTable(cmd.OutOrStdout(), tasks)
	})
}

func runTaskSub(cmd *cobra.Command, globalOptions *GlobalOptions, taskID, title string) error {
	return withTaskService(cmd, globalOptions, func(svc services.TaskService) error {
		ctx := cmd.Context()
		if title != "" {
			subtask, err := svc.AddSubtask(ctx, taskID, title)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), subtask.ID)
			return nil
		}

		if _, err := svc.GetTask(ctx, taskID); err != nil {
			return err
		}
		subtasks, err := svc.ListSubtasks(ctx, taskID)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDONE\tTITLE")
		for _, s := range subtasks {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, mark(s.Completed), s.Title)
		}
		return w.Flush()
	})
}

func writeTaskTable(out io.Writer, tasks []models.Task) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tURGENT\tIMPORTANT\tDUE\tTITLE\tTAGS")
	for _, t := range tasks {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format(time.DateOnly)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, mark(t.Completed), mark(t.Urgent), mark(t.Important), due, t.Title, strings.Join(t.Tags, ","))
	}
	return w.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func mark(b bool) string {
	if b {
		return "x"
	}
	return "-"
}

func boolPtr(b bool) *bool { return &b }
