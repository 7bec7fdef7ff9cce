package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAppendsToSprint(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)
	repo := NewTreeTaskRepo(tree)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, 2, testutil.NewTestTask(9, "Retro")))

	sp, task, err := repo.Locate(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, sp.ID)
	assert.Equal(t, 2, task.SprintID)
	assert.Equal(t, []int{3, 9}, taskIDs(sp))
	assert.Equal(t, 9, tree.HighWater(domain.KindTask))
}

func TestTaskRepo_Create_MissingSprint(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)

	err := NewTreeTaskRepo(tree).Create(context.Background(), 99, testutil.NewTestTask(9, "Orphan"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "sprint 99")
}

func TestTaskRepo_ListTraversalOrder(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)

	tasks, err := NewTreeTaskRepo(tree).List(context.Background())
	require.NoError(t, err)

	var ids []int
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, ids)
}

func TestTaskRepo_Delete(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)
	repo := NewTreeTaskRepo(tree)
	ctx := context.Background()

	_, err := repo.Delete(ctx, 1)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []int{2}, taskIDs(tree.Timelines[0].Sprints[0]))
}

func TestSubtaskRepo_CreateLocateDelete(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)
	repo := NewTreeSubtaskRepo(tree)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, 3, testutil.NewTestSubtask(20, "Collect feedback")))

	task, st, err := repo.Locate(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, task.ID)
	assert.Equal(t, 3, st.TaskID)
	assert.Equal(t, 20, tree.HighWater(domain.KindSubtask))

	_, err = repo.Delete(ctx, 20)
	require.NoError(t, err)
	assert.Empty(t, task.Subtasks)
}

func TestSubtaskRepo_Create_MissingTask(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)

	err := NewTreeSubtaskRepo(tree).Create(context.Background(), 99, testutil.NewTestSubtask(20, "Orphan"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirectoryRepo_Lookups(t *testing.T) {
	tree := testutil.NewTestTree(testutil.StandardTree()...)
	repo := NewTreeDirectoryRepo(tree)
	ctx := context.Background()

	depts, err := repo.Departments(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Design", depts[2].Name)

	members, err := repo.Members(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "alice", members[0].Username)

	byID, err := repo.MembersByID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bob Jones", byID[2].FullName)
}

func taskIDs(sp *domain.Sprint) []int {
	ids := make([]int, 0, len(sp.Tasks))
	for _, t := range sp.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
