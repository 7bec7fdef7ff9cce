package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprintRepo_CreateAppendsToTimeline(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)
	repo := NewTreeSprintRepo(tree)
	ctx := context.Background()

	sp := testutil.NewTestSprint(10, "Hardening")
	require.NoError(t, repo.Create(ctx, 2, sp))

	tl, fetched, err := repo.Locate(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, tl.ID)
	assert.Equal(t, 2, fetched.TimelineID)
	assert.Equal(t, "Hardening", tl.Sprints[len(tl.Sprints)-1].Name)
	assert.Equal(t, 10, tree.HighWater(domain.KindSprint))
}

func TestSprintRepo_Create_MissingTimeline(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)
	repo := NewTreeSprintRepo(tree)

	err := repo.Create(context.Background(), 99, testutil.NewTestSprint(10, "Orphan"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 3, tree.HighWater(domain.KindSprint), "failed insert must not burn an id")
}

func TestSprintRepo_Locate_FirstMatchInTraversalOrder(t *testing.T) {
	// Two sprints sharing an id can only come from a bad seed; the first one
	// in timeline order wins.
	tree := testutil.NewTestTree(testutil.WithTimelines(
		testutil.NewTestTimeline(1, "A", testutil.WithSprints(testutil.NewTestSprint(5, "first"))),
		testutil.NewTestTimeline(2, "B", testutil.WithSprints(testutil.NewTestSprint(5, "second"))),
	))

	tl, sp, err := NewTreeSprintRepo(tree).Locate(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, tl.ID)
	assert.Equal(t, "first", sp.Name)
}

func TestSprintRepo_DeleteRemovesFromParentOnly(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)
	repo := NewTreeSprintRepo(tree)
	ctx := context.Background()

	removed, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sprint 1", removed.Name)

	tl := tree.Timelines[0]
	require.Len(t, tl.Sprints, 1)
	assert.Equal(t, 2, tl.Sprints[0].ID)
	assert.Len(t, tree.Timelines[1].Sprints, 1)
}
