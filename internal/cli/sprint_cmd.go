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

func newSprintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sprint",
		Aliases: []string{"sp"},
		Short:   "Manage sprints",
	}
	cmd.AddCommand(
		newSprintShowCmd(app),
		newSprintCreateCmd(app),
		newSprintUpdateCmd(app),
		newSprintDeleteCmd(app),
	)
	return cmd
}

func addSprintFlags(fs *pflag.FlagSet) {
	addNameFlags(fs)
	addScheduleFlags(fs)
	fs.String("status", "", "Status (todo, in_progress, review, done, blocked) or code")
	fs.Int("department", 0, "Department id")
}

func newSprintShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show a sprint and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := service.ParseRef(domain.KindSprint, args[0])
			if err != nil {
				return err
			}
			sp, err := app.Sprints.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSprint(sp))
			return nil
		},
	}
}

func newSprintCreateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create TIMELINE",
		Short: "Add a sprint to a timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timelineID, err := service.ParseRef(domain.KindTimeline, args[0])
			if err != nil {
				return err
			}
			r := newFlagReader(cmd.Flags())
			req := contract.CreateSprintRequest{
				Name:         r.str("name"),
				Description:  r.str("description"),
				StartDate:    r.date("start"),
				EndDate:      r.date("end"),
				StatusID:     r.status("status"),
				DepartmentID: r.integer("department"),
			}
			if err := r.err(); err != nil {
				return err
			}
			sp, err := app.Sprints.Create(cmd.Context(), timelineID, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Created sprint %s %s in %s",
				sp.TreeID(), sp.Name, domain.TreeID(domain.KindTimeline, sp.TimelineID))))
			return nil
		},
	}
	addSprintFlags(cmd.Flags())
	return cmd
}

func newSprintUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Change fields of a sprint",
		Long: `Change fields of a sprint. --move-days shifts both stored dates by
the given number of days and wins over --start/--end.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := service.ParseRef(domain.KindSprint, args[0])
			if err != nil {
				return err
			}
			r := newFlagReader(cmd.Flags())
			req := contract.UpdateSprintRequest{
				Name:         r.str("name"),
				Description:  r.str("description"),
				StartDate:    r.date("start"),
				EndDate:      r.date("end"),
				StatusID:     r.status("status"),
				DepartmentID: r.integer("department"),
				MoveDays:     r.integer("move-days"),
			}
			if err := r.err(); err != nil {
				return err
			}
			sp, err := app.Sprints.Update(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Updated sprint %s %s",
				sp.TreeID(), formatter.FormatRange(sp.StartDate, sp.EndDate, sp.Duration))))
			return nil
		},
	}
	addSprintFlags(cmd.Flags())
	cmd.Flags().Int("move-days", 0, "Shift both dates by this many days (may be negative)")
	return cmd
}

func newSprintDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete REF",
		Short: "Delete a sprint with all its tasks and subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := service.ParseRef(domain.KindSprint, args[0])
			if err != nil {
				return err
			}
			return runDelete(cmd, app, domain.TreeID(domain.KindSprint, id), func() (*service.DeleteResult, error) {
				return app.Sprints.Delete(cmd.Context(), id)
			})
		},
	}
	addYesFlag(cmd)
	return cmd
}
