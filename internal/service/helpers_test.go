package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/testutil"
)

type testServices struct {
	db        *db.DB
	timelines TimelineService
	sprints   SprintService
	tasks     TaskService
	subtasks  SubtaskService
	search    SearchService
	events    *recordingObserver
}

// setupServices wires every service over one fresh store seeded with opts.
func setupServices(t *testing.T, opts ...testutil.TreeOption) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t, opts...)
	uow := testutil.NewTestUoW(database)
	obs := &recordingObserver{}
	return &testServices{
		db:        database,
		timelines: NewTimelineService(uow, obs),
		sprints:   NewSprintService(uow, obs),
		tasks:     NewTaskService(uow, obs),
		subtasks:  NewSubtaskService(uow, obs),
		search:    NewSearchService(uow),
		events:    obs,
	}
}

func setupStandard(t *testing.T) *testServices {
	t.Helper()
	return setupServices(t, testutil.StandardTree()...)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return UseCaseEvent{}
	}
	return r.events[len(r.events)-1]
}
