package cli

import (
	"fmt"

	"github.com/alexanderramin/sprintline/internal/cli/formatter"
	"github.com/alexanderramin/sprintline/internal/contract"
	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/service"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timeline",
		Aliases: []string{"tl"},
		Short:   "Manage timelines",
	}
	cmd.AddCommand(
		newTimelineListCmd(app),
		newTimelineShowCmd(app),
		newTimelineCreateCmd(app),
		newTimelineUpdateCmd(app),
		newTimelineDeleteCmd(app),
	)
	return cmd
}

func newTimelineListCmd(app *App) *cobra.Command {
	var projectID int
	var rollup bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List timelines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if rollup {
				rollups, err := app.Timelines.ListWithRollup(ctx)
				if err != nil {
					return err
				}
				if len(rollups) == 0 {
					fmt.Fprintln(out, formatter.Dim("No timelines found."))
					return nil
				}
				fmt.Fprint(out, formatter.FormatRollup(rollups))
				return nil
			}

			var timelines []*domain.Timeline
			var err error
			if cmd.Flags().Changed("project") {
				timelines, err = app.Timelines.ListByProjectID(ctx, projectID)
			} else {
				timelines, err = app.Timelines.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(timelines) == 0 {
				fmt.Fprintln(out, formatter.Dim("No timelines found."))
				return nil
			}
			fmt.Fprint(out, formatter.FormatTimelineList(timelines))
			return nil
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Only timelines of this project")
	cmd.Flags().BoolVar(&rollup, "rollup", false, "Group by project with subtree counts and hours")
	return cmd
}

func newTimelineShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show a timeline and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := service.ParseRef(domain.KindTimeline, args[0])
			if err != nil {
				return err
			}
			tl, err := app.Timelines.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeline(tl))
			return nil
		},
	}
}

func newTimelineCreateCmd(app *App) *cobra.Command {
	var projectID int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newFlagReader(cmd.Flags())
			req := contract.CreateTimelineRequest{
				ProjectID:   projectID,
				Name:        r.str("name"),
				Description: r.str("description"),
				StartDate:   r.date("start"),
				EndDate:     r.date("end"),
			}
			if err := r.err(); err != nil {
				return err
			}
			tl, err := app.Timelines.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Created timeline %s %s", tl.TreeID(), tl.Name)))
			return nil
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Project id")
	addNameFlags(cmd.Flags())
	addScheduleFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newTimelineUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Change fields of a timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := service.ParseRef(domain.KindTimeline, args[0])
			if err != nil {
				return err
			}
			r := newFlagReader(cmd.Flags())
			req := contract.UpdateTimelineRequest{
				ProjectID:   r.integer("project"),
				Name:        r.str("name"),
				Description: r.str("description"),
				StartDate:   r.date("start"),
				EndDate:     r.date("end"),
			}
			if err := r.err(); err != nil {
				return err
			}
			tl, err := app.Timelines.Update(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Updated timeline "+tl.TreeID()))
			return nil
		},
	}

	cmd.Flags().Int("project", 0, "Project id")
	addNameFlags(cmd.Flags())
	addScheduleFlags(cmd.Flags())
	return cmd
}

func newTimelineDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete REF",
		Short: "Delete a timeline with all its sprints, tasks and subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := service.ParseRef(domain.KindTimeline, args[0])
			if err != nil {
				return err
			}
			return runDelete(cmd, app, domain.TreeID(domain.KindTimeline, id), func() (*service.DeleteResult, error) {
				return app.Timelines.Delete(cmd.Context(), id)
			})
		},
	}
	addYesFlag(cmd)
	return cmd
}

// runDelete confirms, deletes and reports the cascade.
func runDelete(cmd *cobra.Command, app *App, ref string, del func() (*service.DeleteResult, error)) error {
	ok, err := confirmDelete(cmd, app, ref)
	if err != nil || !ok {
		return err
	}
	res, err := del()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDeleteResult(res))
	return nil
}
