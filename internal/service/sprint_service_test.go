package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/sprintline/internal/contract"
	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprintService_CreateRoundTrip(t *testing.T) {
	svc := setupStandard(t)
	ctx := context.Background()

	created, err := svc.sprints.Create(ctx, 1, contract.CreateSprintRequest{
		Name:      contract.Ptr("Sprint A"),
		StartDate: contract.Ptr(testutil.Date(2024, 1, 1)),
		EndDate:   contract.Ptr(testutil.Date(2024, 1, 10)),
	})
	require.NoError(t, err)

	fetched, err := svc.sprints.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sprint A", fetched.Name)
	assert.Equal(t, 9, fetched.Duration)
	assert.Equal(t, domain.DefaultStatusID, fetched.StatusID)
	assert.NotNil(t, fetched.Tasks)
	assert.Empty(t, fetched.Tasks)
	assert.Equal(t, 1, fetched.TimelineID)
	assert.Equal(t, 4, fetched.ID, "next id after the seeded sprints")

	tl, err := svc.timelines.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, tl.Sprints[len(tl.Sprints)-1].ID, "appended to the timeline")
}

func TestSprintService_CreateDefaults(t *testing.T) {
	svc := setupStandard(t)

	before := time.Now().UTC().Add(-time.Second)
	sp, err := svc.sprints.Create(context.Background(), 2, contract.CreateSprintRequest{})
	require.NoError(t, err)
	assert.Equal(t, "", sp.Name)
	assert.Equal(t, "", sp.Description)
	assert.True(t, sp.StartDate.After(before))
	assert.Equal(t, 0, sp.Duration)
	assert.Nil(t, sp.DepartmentID)
}

func TestSprintService_Create_MissingTimelineDoesNotBurnID(t *testing.T) {
	svc := setupStandard(t)
	ctx := context.Background()

	_, err := svc.sprints.Create(ctx, 99, contract.CreateSprintRequest{})
	assert.ErrorIs(t, err, ErrNotFound)

	sp, err := svc.sprints.Create(ctx, 1, contract.CreateSprintRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, sp.ID)
}

func TestSprintService_IDsStrictlyIncrease(t *testing.T) {
	svc := setupStandard(t)
	ctx := context.Background()

	last := 0
	for i := 0; i < 6; i++ {
		sp, err := svc.sprints.Create(ctx, 1, contract.CreateSprintRequest{})
		require.NoError(t, err)
		assert.Greater(t, sp.ID, last)
		last = sp.ID
		if i%2 == 0 {
			_, err := svc.sprints.Delete(ctx, sp.ID)
			require.NoError(t, err)
		}
	}
}

func TestSprintService_UpdateRecomputesDuration(t *testing.T) {
	svc := setupStandard(t)

	sp, err := svc.sprints.Update(context.Background(), 1, contract.UpdateSprintRequest{
		EndDate: contract.Ptr(testutil.Date(2024, 1, 31)),
	})
	require.NoError(t, err)
	assert.Equal(t, testutil.Date(2024, 1, 1), sp.StartDate)
	assert.Equal(t, 30, sp.Duration)
	assert.Equal(t, "Sprint 1", sp.Name)
}

func TestSprintService_UpdateMoveDays(t *testing.T) {
	svc := setupStandard(t)

	sp, err := svc.sprints.Update(context.Background(), 2, contract.UpdateSprintRequest{
		MoveDays:  contract.Ptr(-2),
		StartDate: contract.Ptr(testutil.Date(2030, 1, 1)), // ignored, moveDays wins
	})
	require.NoError(t, err)
	assert.Equal(t, testutil.Date(2023, 12, 30), sp.StartDate)
	assert.Equal(t, testutil.Date(2024, 1, 13), sp.EndDate)
	assert.Equal(t, 14, sp.Duration)
}

func TestSprintService_Update_StampsUpdatedAt(t *testing.T) {
	old := time.Now().UTC().Add(-time.Hour)
	svc := setupServices(t, testutil.WithTimelines(testutil.NewTestTimeline(1, "T",
		testutil.WithSprints(testutil.NewTestSprint(1, "S", testutil.WithSprintUpdatedAt(old))))))

	sp, err := svc.sprints.Update(context.Background(), 1, contract.UpdateSprintRequest{StatusID: contract.Ptr(2)})
	require.NoError(t, err)
	assert.True(t, sp.UpdatedAt.After(old))
	assert.Equal(t, 2, sp.StatusID)
}

// The store uses hard cascade: a deleted sprint's tasks are gone everywhere,
// not left behind as orphans.
func TestSprintService_DeleteCascadesTasks(t *testing.T) {
	svc := setupStandard(t)
	ctx := context.Background()

	// TK-3 lives in another sprint and depends into the deleted one.
	require.NoError(t, svc.tasks.AddDependency(ctx, 3, 1))

	res, err := svc.sprints.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Tasks)
	assert.Equal(t, 2, res.Subtasks)
	assert.Equal(t, 1, res.PrunedDependencies, "only TK-3 -> TK-1 outlives the sprint")

	survivor, err := svc.tasks.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, survivor.Dependencies)

	tl, err := svc.timelines.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tl.Sprints, 1)
	assert.Equal(t, 2, tl.Sprints[0].ID)

	for _, id := range []int{1, 2} {
		_, err := svc.tasks.GetByID(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound, "task %d must not survive as an orphan", id)
	}
	_, err = svc.subtasks.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	items, err := svc.search.SearchTasks(ctx, "")
	require.NoError(t, err)
	for _, w := range items {
		assert.NotEqual(t, 1, w.SprintID, "no work item may reference the deleted sprint")
	}

	// A new task never reuses a cascaded id.
	created, err := svc.tasks.Create(ctx, 2, contract.CreateTaskRequest{})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
}

func TestSprintService_RollbackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t, testutil.StandardTree()...)
	boom := errors.New("boom")
	failing := NewSprintService(&testutil.FailAfterFnUoW{Inner: testutil.NewTestUoW(database), Err: boom})

	_, err := failing.Delete(context.Background(), 1)
	require.ErrorIs(t, err, boom)

	ok := NewSprintService(testutil.NewTestUoW(database))
	sp, err := ok.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, sp.Tasks, 2, "failed delete must leave the tree untouched")

	_, err = failing.Create(context.Background(), 1, contract.CreateSprintRequest{})
	require.ErrorIs(t, err, boom)
	created, err := ok.Create(context.Background(), 1, contract.CreateSprintRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID, "a rolled-back create does not consume an id")
}
