package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintline/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Case-insensitive search across the roster and all tasks",
	}
	cmd.AddCommand(newSearchTasksCmd(app), newSearchMembersCmd(app))
	return cmd
}

func newSearchTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks [QUERY...]",
		Short: "Find tasks by name, description, department or member name",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Search.SearchTasks(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, formatter.Dim("No matching tasks."))
				return nil
			}
			fmt.Fprint(out, formatter.FormatWorkItems(items))
			return nil
		},
	}
}

func newSearchMembersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "members [QUERY...]",
		Short: "Find members by username, id number, name, grade or department",
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := app.Search.SearchMembers(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(members) == 0 {
				fmt.Fprintln(out, formatter.Dim("No matching members."))
				return nil
			}
			fmt.Fprint(out, formatter.FormatMembers(members))
			return nil
		},
	}
}
