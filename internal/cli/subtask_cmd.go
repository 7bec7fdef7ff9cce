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

func newSubtaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subtask",
		Aliases: []string{"st"},
		Short:   "Manage subtasks",
	}
	cmd.AddCommand(
		newSubtaskShowCmd(app),
		newSubtaskCreateCmd(app),
		newSubtaskUpdateCmd(app),
		newSubtaskDeleteCmd(app),
	)
	return cmd
}

func addSubtaskFlags(fs *pflag.FlagSet) {
	addNameFlags(fs)
	fs.String("status", "", "Status (todo, in_progress, review, done, blocked) or code")
	fs.String("priority", "", "Priority (low, medium, high, critical) or code")
	fs.Int("department", 0, "Department id")
	fs.Int("assignee", 0, "Assignee member id")
	fs.String("assignee-name", "", "Assignee display name")
	fs.Float64("estimated", 0, "Estimated hours")
	fs.Float64("actual", 0, "Actual hours")
}

func newSubtaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show a subtask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := service.ParseRef(domain.KindSubtask, args[0])
			if err != nil {
				return err
			}
			st, err := app.Subtasks.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSubtask(st))
			return nil
		},
	}
}

func newSubtaskCreateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create TASK",
		Short: "Add a subtask to a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := service.ParseRef(domain.KindTask, args[0])
			if err != nil {
				return err
			}
			r := newFlagReader(cmd.Flags())
			req := contract.CreateSubtaskRequest{
				Name:           r.str("name"),
				Description:    r.str("description"),
				AssigneeID:     r.integer("assignee"),
				AssigneeName:   r.str("assignee-name"),
				StatusID:       r.status("status"),
				PriorityID:     r.priority("priority"),
				DepartmentID:   r.integer("department"),
				EstimatedHours: r.float("estimated"),
				ActualHours:    r.float("actual"),
			}
			if err := r.err(); err != nil {
				return err
			}
			st, err := app.Subtasks.Create(cmd.Context(), taskID, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Created subtask %s %s under %s",
				st.TreeID(), st.Name, domain.TreeID(domain.KindTask, st.TaskID))))
			return nil
		},
	}
	addSubtaskFlags(cmd.Flags())
	return cmd
}

func newSubtaskUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Change fields of a subtask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := service.ParseRef(domain.KindSubtask, args[0])
			if err != nil {
				return err
			}
			r := newFlagReader(cmd.Flags())
			req := contract.UpdateSubtaskRequest{
				Name:           r.str("name"),
				Description:    r.str("description"),
				AssigneeID:     r.integer("assignee"),
				AssigneeName:   r.str("assignee-name"),
				StatusID:       r.status("status"),
				PriorityID:     r.priority("priority"),
				DepartmentID:   r.integer("department"),
				EstimatedHours: r.float("estimated"),
				ActualHours:    r.float("actual"),
			}
			if err := r.err(); err != nil {
				return err
			}
			st, err := app.Subtasks.Update(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Updated subtask "+st.TreeID()))
			return nil
		},
	}
	addSubtaskFlags(cmd.Flags())
	return cmd
}

func newSubtaskDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete REF",
		Short: "Delete a subtask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := service.ParseRef(domain.KindSubtask, args[0])
			if err != nil {
				return err
			}
			return runDelete(cmd, app, domain.TreeID(domain.KindSubtask, id), func() (*service.DeleteResult, error) {
				return app.Subtasks.Delete(cmd.Context(), id)
			})
		},
	}
	addYesFlag(cmd)
	return cmd
}
