package cli

import (
	"fmt"

	"github.com/alexanderramin/sprintline/internal/cli/formatter"
	"github.com/alexanderramin/sprintline/internal/contract"
	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tk"},
		Short:   "Manage tasks",
	}
	cmd.AddCommand(
		newTaskShowCmd(app),
		newTaskCreateCmd(app),
		newTaskUpdateCmd(app),
		newTaskDeleteCmd(app),
		newTaskMoveCmd(app),
		newTaskDependCmd(app),
		newTaskUndependCmd(app),
		newTaskDepsCmd(app),
	)
	return cmd
}

func addTaskFlags(fs *pflag.FlagSet) {
	addNameFlags(fs)
	addScheduleFlags(fs)
	fs.String("status", "", "Status (todo, in_progress, review, done, blocked) or code")
	fs.String("priority", "", "Priority (low, medium, high, critical) or code")
	fs.Int("department", 0, "Department id")
	fs.Int("assignee", 0, "Assignee member id")
	fs.String("assignee-name", "", "Assignee display name")
	fs.Float64("estimated", 0, "Estimated hours")
	fs.Float64("actual", 0, "Actual hours")
	fs.Float64("progress", 0, "Progress percentage")
	fs.StringSlice("depends-on", nil, "Task ids this task depends on (e.g. 3,TK-4)")
	fs.StringSlice("members", nil, "Member ids")
}

func parseTaskRef(s string) (int, error) {
	return service.ParseRef(domain.KindTask, s)
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show a task and its subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskRef(args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTask(t))
			return nil
		},
	}
}

func newTaskCreateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create SPRINT",
		Short: "Add a task to a sprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sprintID, err := service.ParseRef(domain.KindSprint, args[0])
			if err != nil {
				return err
			}
			r := newFlagReader(cmd.Flags())
			req := contract.CreateTaskRequest{
				Name:           r.str("name"),
				Description:    r.str("description"),
				StartDate:      r.date("start"),
				EndDate:        r.date("end"),
				StatusID:       r.status("status"),
				PriorityID:     r.priority("priority"),
				DepartmentID:   r.integer("department"),
				AssigneeID:     r.integer("assignee"),
				AssigneeName:   r.str("assignee-name"),
				EstimatedHours: r.float("estimated"),
				ActualHours:    r.float("actual"),
				Progress:       r.float("progress"),
				Dependencies:   r.refs("depends-on", domain.KindTask),
				Members:        r.ids("members"),
			}
			if err := r.err(); err != nil {
				return err
			}
			t, err := app.Tasks.Create(cmd.Context(), sprintID, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Created task %s %s in %s",
				t.TreeID(), t.Name, domain.TreeID(domain.KindSprint, t.SprintID))))
			return nil
		},
	}
	addTaskFlags(cmd.Flags())
	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Change fields of a task",
		Long: `Change fields of a task. --depends-on and --members replace the stored
lists; pass an empty value to clear them. --move-days shifts both stored
dates and wins over --start/--end.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskRef(args[0])
			if err != nil {
				return err
			}
			r := newFlagReader(cmd.Flags())
			req := contract.UpdateTaskRequest{
				Name:           r.str("name"),
				Description:    r.str("description"),
				StartDate:      r.date("start"),
				EndDate:        r.date("end"),
				StatusID:       r.status("status"),
				PriorityID:     r.priority("priority"),
				DepartmentID:   r.integer("department"),
				AssigneeID:     r.integer("assignee"),
				AssigneeName:   r.str("assignee-name"),
				EstimatedHours: r.float("estimated"),
				ActualHours:    r.float("actual"),
				Progress:       r.float("progress"),
				Dependencies:   r.refs("depends-on", domain.KindTask),
				Members:        r.ids("members"),
				MoveDays:       r.integer("move-days"),
			}
			if err := r.err(); err != nil {
				return err
			}
			t, err := app.Tasks.Update(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Updated task %s %s",
				t.TreeID(), formatter.FormatRange(t.StartDate, t.EndDate, t.Duration))))
			return nil
		},
	}
	addTaskFlags(cmd.Flags())
	cmd.Flags().Int("move-days", 0, "Shift both dates by this many days (may be negative)")
	return cmd
}

func newTaskDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete REF",
		Short: "Delete a task with its subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskRef(args[0])
			if err != nil {
				return err
			}
			return runDelete(cmd, app, domain.TreeID(domain.KindTask, id), func() (*service.DeleteResult, error) {
				return app.Tasks.Delete(cmd.Context(), id)
			})
		},
	}
	addYesFlag(cmd)
	return cmd
}

func newTaskMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move REF SPRINT",
		Short: "Move a task to the end of another sprint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskRef(args[0])
			if err != nil {
				return err
			}
			sprintID, err := service.ParseRef(domain.KindSprint, args[1])
			if err != nil {
				return err
			}
			t, err := app.Tasks.Move(cmd.Context(), id, sprintID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Moved %s to %s",
				t.TreeID(), domain.TreeID(domain.KindSprint, t.SprintID))))
			return nil
		},
	}
}

func newTaskDependCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "depend REF ON",
		Short: "Record that a task depends on another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, dep, err := parseTaskPair(args)
			if err != nil {
				return err
			}
			if err := app.Tasks.AddDependency(cmd.Context(), id, dep); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("%s now depends on %s",
				domain.TreeID(domain.KindTask, id), domain.TreeID(domain.KindTask, dep))))
			return nil
		},
	}
}

func newTaskUndependCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undepend REF ON",
		Short: "Remove a dependency edge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, dep, err := parseTaskPair(args)
			if err != nil {
				return err
			}
			if err := app.Tasks.RemoveDependency(cmd.Context(), id, dep); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("%s no longer depends on %s",
				domain.TreeID(domain.KindTask, id), domain.TreeID(domain.KindTask, dep))))
			return nil
		},
	}
}

func newTaskDepsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deps REF",
		Short: "List what a task depends on and what it blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskRef(args[0])
			if err != nil {
				return err
			}
			set, err := app.Tasks.ListDependencies(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDependencies(set))
			return nil
		},
	}
}

func parseTaskPair(args []string) (int, int, error) {
	id, err := parseTaskRef(args[0])
	if err != nil {
		return 0, 0, err
	}
	dep, err := parseTaskRef(args[1])
	if err != nil {
		return 0, 0, err
	}
	return id, dep, nil
}
