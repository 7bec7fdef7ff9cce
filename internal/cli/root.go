package cli

import (
	"fmt"

	"github.com/alexanderramin/sprintline/internal/config"
	"github.com/alexanderramin/sprintline/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Timelines service.TimelineService
	Sprints   service.SprintService
	Tasks     service.TaskService
	Subtasks  service.SubtaskService
	Search    service.SearchService

	Logger zerolog.Logger

	// Bootstrap, when set, runs once before the first command with the
	// resolved configuration and fills in the services. Tests leave it nil
	// and hand in a ready App.
	Bootstrap func(cfg *config.Config) error

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Nil uses a huh form.
	Confirm func(title string) (bool, error)

	bootstrapped bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) bootstrap(cmd *cobra.Command) error {
	if a.bootstrapped || a.Bootstrap == nil {
		return nil
	}
	configFile, _ := cmd.Flags().GetString(config.FlagConfig)
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := a.Bootstrap(cfg); err != nil {
		return fmt.Errorf("starting sprintline: %w", err)
	}
	a.bootstrapped = true
	return nil
}

// NewRootCmd creates the top-level "sprintline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "sprintline",
		Short:         "Timeline, sprint and task planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.bootstrap(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newTimelineCmd(app),
		newSprintCmd(app),
		newTaskCmd(app),
		newSubtaskCmd(app),
		newSearchCmd(app),
		newShellCmd(app),
	)
	return root
}
