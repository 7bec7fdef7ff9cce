package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/sprintline/internal/service"
	"github.com/alexanderramin/sprintline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App over the standard fixture tree.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t, testutil.StandardTree()...)
	uow := testutil.NewTestUoW(database)

	return &App{
		Timelines: service.NewTimelineService(uow),
		Sprints:   service.NewSprintService(uow),
		Tasks:     service.NewTaskService(uow),
		Subtasks:  service.NewSubtaskService(uow),
		Search:    service.NewSearchService(uow),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "sprintline")
	assert.Contains(t, output, "timeline")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

// --- timeline ---

func TestTimelineList(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "timeline", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "TL-1")
	assert.Contains(t, output, "Platform")
	assert.Contains(t, output, "Launch")
}

func TestTimelineList_ByProject(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "timeline", "list", "--project", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "Launch")
	assert.NotContains(t, output, "Platform")
}

func TestTimelineList_UnknownProject(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "tl", "list", "--project", "42")
	require.NoError(t, err)
	assert.Contains(t, output, "No timelines found.")
}

func TestTimelineList_Rollup(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "timeline", "list", "--rollup")
	require.NoError(t, err)
	assert.Contains(t, output, "PROJECT 1")
	assert.Contains(t, output, "PROJECT 2")
	assert.Contains(t, output, "2 sprints, 3 tasks")
}

func TestTimelineShow(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "timeline", "show", "TL-1")
	require.NoError(t, err)
	assert.Contains(t, output, "Set up CI")
	assert.Contains(t, output, "ST-2")
}

func TestTimelineShow_MalformedRef(t *testing.T) {
	app := testApp(t)

	for _, ref := range []string{"abc", "SP-1", "0", "TL-x"} {
		_, err := executeCmd(t, app, "timeline", "show", ref)
		assert.ErrorIs(t, err, service.ErrNotFound, ref)
	}
}

func TestTimelineCreate(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "timeline", "create", "--project", "3", "--name", "Q3", "--start", "2024-07-01")
	require.NoError(t, err)
	assert.Contains(t, output, "Created timeline TL-3 Q3")

	tls, err := app.Timelines.ListByProjectID(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, tls, 1)
	assert.Equal(t, testutil.Date(2024, 7, 1), tls[0].StartDate)
}

func TestTimelineCreate_RequiresProject(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "timeline", "create", "--name", "Q3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project")
}

func TestTimelineCreate_BadDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "timeline", "create", "--project", "1", "--start", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--start")
}

func TestTimelineUpdate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "timeline", "update", "1", "--name", "Core Platform")
	require.NoError(t, err)

	tl, err := app.Timelines.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Core Platform", tl.Name)
	assert.Equal(t, 1, tl.ProjectID, "unset flags leave fields alone")
}

func TestTimelineDelete_Cascades(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "timeline", "delete", "TL-1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted TL-1 with 2 sprints, 3 tasks, 2 subtasks")

	_, err = app.Tasks.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

// --- sprint ---

func TestSprintCreate(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "sprint", "create", "TL-1",
		"--name", "Sprint 9", "--start", "2024-02-01", "--end", "2024-02-14", "--status", "in_progress")
	require.NoError(t, err)
	assert.Contains(t, output, "Created sprint SP-4 Sprint 9 in TL-1")

	sp, err := app.Sprints.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 13, sp.Duration)
	assert.Equal(t, 2, sp.StatusID)
}

func TestSprintCreate_MissingTimeline(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "sprint", "create", "TL-99", "--name", "Orphan")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSprintUpdate_MoveDays(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "sprint", "update", "SP-1", "--move-days", "7")
	require.NoError(t, err)

	sp, err := app.Sprints.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, testutil.Date(2024, 1, 8), sp.StartDate)
	assert.Equal(t, testutil.Date(2024, 1, 22), sp.EndDate)
}

func TestSprintShow(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "sp", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "SP-1 SPRINT 1")
	assert.Contains(t, output, "TK-2")
}

// --- task ---

func TestTaskCreate_WithLabels(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "task", "create", "SP-2",
		"--name", "Write docs", "--priority", "high", "--status", "in progress",
		"--depends-on", "TK-1,3", "--estimated", "5")
	require.NoError(t, err)
	assert.Contains(t, output, "Created task TK-5 Write docs in SP-2")

	task, err := app.Tasks.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 3, task.PriorityID)
	assert.Equal(t, 2, task.StatusID)
	assert.Equal(t, []int{1, 3}, task.Dependencies)
	assert.Equal(t, 5.0, task.EstimatedHours)
}

func TestTaskCreate_UnknownPriority(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "create", "SP-2", "--priority", "urgent-ish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown priority")
}

func TestTaskUpdate_ClearDependencies(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "update", "TK-2", "--depends-on", "")
	require.NoError(t, err)

	task, err := app.Tasks.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, task.Dependencies)
}

func TestTaskMove(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "task", "move", "TK-1", "SP-2")
	require.NoError(t, err)
	assert.Contains(t, output, "Moved TK-1 to SP-2")

	sp, err := app.Sprints.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, sp.Tasks, 2)
	assert.Equal(t, 1, sp.Tasks[1].ID, "moved task goes last")
}

func TestTaskDependencies(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "depend", "TK-3", "TK-1")
	require.NoError(t, err)

	output, err := executeCmd(t, app, "task", "deps", "TK-1")
	require.NoError(t, err)
	assert.Contains(t, output, "TK-2, TK-3")

	_, err = executeCmd(t, app, "task", "depend", "TK-1", "TK-2")
	assert.ErrorIs(t, err, service.ErrInvalidDependency, "cycle")

	_, err = executeCmd(t, app, "task", "undepend", "TK-3", "TK-1")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "task", "undepend", "TK-3", "TK-1")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestTaskDelete_Yes(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "task", "delete", "TK-1", "-y")
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted TK-1 with 2 subtasks (1 dependency reference pruned)")
}

func TestTaskDelete_InteractiveCancel(t *testing.T) {
	app := testApp(t)
	var asked string
	app.IsInteractive = func() bool { return true }
	app.Confirm = func(title string) (bool, error) {
		asked = title
		return false, nil
	}

	output, err := executeCmd(t, app, "task", "delete", "TK-3")
	require.NoError(t, err)
	assert.Equal(t, "Delete TK-3?", asked)
	assert.Contains(t, output, "Cancelled.")

	_, err = app.Tasks.GetByID(context.Background(), 3)
	assert.NoError(t, err, "task survives a cancelled delete")
}

func TestTaskDelete_InteractiveConfirm(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.Confirm = func(string) (bool, error) { return true, nil }

	_, err := executeCmd(t, app, "task", "delete", "TK-3")
	require.NoError(t, err)

	_, err = app.Tasks.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestTaskDelete_YesSkipsPrompt(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.Confirm = func(string) (bool, error) {
		t.Fatal("prompted despite --yes")
		return false, nil
	}

	_, err := executeCmd(t, app, "task", "delete", "TK-3", "--yes")
	require.NoError(t, err)
}

// --- subtask ---

func TestSubtaskLifecycle(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	output, err := executeCmd(t, app, "subtask", "create", "TK-3", "--name", "Polish", "--estimated", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "Created subtask ST-3 Polish under TK-3")

	_, err = executeCmd(t, app, "subtask", "update", "ST-3", "--status", "done")
	require.NoError(t, err)
	st, err := app.Subtasks.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, st.StatusID)

	output, err = executeCmd(t, app, "st", "show", "ST-3")
	require.NoError(t, err)
	assert.Contains(t, output, "ST-3 POLISH")

	_, err = executeCmd(t, app, "subtask", "delete", "ST-3")
	require.NoError(t, err)
	_, err = app.Subtasks.GetByID(ctx, 3)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

// --- search ---

func TestSearchTasks(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "search", "tasks", "alpha")
	require.NoError(t, err)
	assert.Contains(t, output, "Project Alpha Kickoff")
	assert.NotContains(t, output, "Set up CI")
}

func TestSearchTasks_EmptyQueryReturnsAll(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "search", "tasks")
	require.NoError(t, err)
	for _, name := range []string{"Set up CI", "Ship API", "Design review", "Project Alpha Kickoff"} {
		assert.Contains(t, output, name)
	}
}

func TestSearchTasks_HelpListsMatchedFields(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "search", "--help")
	require.NoError(t, err)
	assert.Contains(t, output, "department or member name")
	assert.NotContains(t, output, "progress")
}

func TestSearchTasks_NoMatch(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "search", "tasks", "zzz")
	require.NoError(t, err)
	assert.Contains(t, output, "No matching tasks.")
}

func TestSearchMembers(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "search", "members", "ALICE")
	require.NoError(t, err)
	assert.Contains(t, output, "alice")
	assert.NotContains(t, output, "bob")
}
