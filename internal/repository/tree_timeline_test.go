package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineRepo_CreateAndGetByID(t *testing.T) {
	tree := testutil.NewTestTree()
	repo := NewTreeTimelineRepo(tree)
	ctx := context.Background()

	tl := testutil.NewTestTimeline(7, "Roadmap", testutil.WithProjectID(3))
	require.NoError(t, repo.Create(ctx, tl))

	fetched, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap", fetched.Name)
	assert.Equal(t, 3, fetched.ProjectID)
	assert.Equal(t, 7, tree.HighWater(domain.KindTimeline))
}

func TestTimelineRepo_Create_DuplicateID(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)
	repo := NewTreeTimelineRepo(tree)

	err := repo.Create(context.Background(), testutil.NewTestTimeline(1, "Dup"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestTimelineRepo_GetByID_NotFound(t *testing.T) {
	repo := NewTreeTimelineRepo(testutil.NewTestTree())

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "timeline 42")
}

func TestTimelineRepo_ListByProject(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)
	repo := NewTreeTimelineRepo(tree)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTimeline(3, "Platform v2", testutil.WithProjectID(1))))

	tls, err := repo.ListByProject(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tls, 2)
	assert.Equal(t, "Platform", tls[0].Name)
	assert.Equal(t, "Platform v2", tls[1].Name)

	none, err := repo.ListByProject(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTimelineRepo_List_ReturnsCopyOfRootSlice(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)
	repo := NewTreeTimelineRepo(tree)

	tls, err := repo.List(context.Background())
	require.NoError(t, err)
	tls[0] = nil

	assert.NotNil(t, tree.Timelines[0], "mutating the returned slice must not touch the tree")
}
