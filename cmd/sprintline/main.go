package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/sprintline/internal/cli"
	"github.com/alexanderramin/sprintline/internal/config"
	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/seed"
	"github.com/alexanderramin/sprintline/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var logFile io.Closer

	app := &cli.App{
		IsInteractive: func() bool { return cli.IsTerminal(os.Stdin) },
	}

	// Services are wired once flags are parsed so --config, --seed and the
	// log flags take effect.
	app.Bootstrap = func(cfg *config.Config) error {
		logger, closer := cli.NewLogger(cfg.Log, os.Stderr, cli.IsTerminal(os.Stderr))
		logFile = closer

		tree, err := seed.Load(cfg.Seed.Path)
		if err != nil {
			return fmt.Errorf("loading seed: %w", err)
		}
		database := db.OpenDB(tree)
		uow := db.NewMemoryUnitOfWork(database)
		observer := service.NewLogUseCaseObserver(logger)

		app.Timelines = service.NewTimelineService(uow, observer)
		app.Sprints = service.NewSprintService(uow, observer)
		app.Tasks = service.NewTaskService(uow, observer)
		app.Subtasks = service.NewSubtaskService(uow, observer)
		app.Search = service.NewSearchService(uow)
		app.Logger = logger

		sprints, tasks, subtasks := 0, 0, 0
		for _, tl := range tree.Timelines {
			s, t, st := tl.Counts()
			sprints, tasks, subtasks = sprints+s, tasks+t, subtasks+st
		}
		logger.Info().
			Str("seed", seedLabel(cfg.Seed.Path)).
			Int("timelines", len(tree.Timelines)).
			Int("sprints", sprints).
			Int("tasks", tasks).
			Int("subtasks", subtasks).
			Msg("store loaded")
		return nil
	}
	defer func() {
		if logFile != nil {
			_ = logFile.Close()
		}
	}()

	return cli.NewRootCmd(app).Execute()
}

func seedLabel(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
