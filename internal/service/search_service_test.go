package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workItemIDs(items []domain.WorkItem) []int {
	ids := make([]int, 0, len(items))
	for _, w := range items {
		ids = append(ids, w.ID)
	}
	return ids
}

func TestSearchService_SearchTasks_BlankReturnsAll(t *testing.T) {
	svc := setupStandard(t)

	for _, q := range []string{"", "   "} {
		items, err := svc.search.SearchTasks(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, workItemIDs(items))
	}
}

func TestSearchService_SearchTasks_CaseInsensitive(t *testing.T) {
	svc := setupStandard(t)

	items, err := svc.search.SearchTasks(context.Background(), "ALPHA")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Project Alpha Kickoff", items[0].Name)
}

func TestSearchService_SearchTasks_MatchFields(t *testing.T) {
	svc := setupStandard(t)
	ctx := context.Background()

	tests := []struct {
		query string
		want  []int
	}{
		{"milestone", []int{4}},      // description
		{"engineering", []int{1, 2}}, // department name
		{"bob jones", []int{3}},      // member full name
		{"ALICE", []int{1}},          // member username
		{"nothing matches", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			items, err := svc.search.SearchTasks(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, workItemIDs(items))
		})
	}
}

func TestSearchService_SearchTasks_Projection(t *testing.T) {
	svc := setupServices(t, append(testutil.StandardTree(),
		testutil.WithTimelines(testutil.NewTestTimeline(3, "Extra", testutil.WithSprints(
			testutil.NewTestSprint(9, "S", testutil.WithTasks(
				testutil.NewTestTask(10, "Unestimated", testutil.WithHours(0, 5),
					testutil.WithTaskStatus(9), testutil.WithTaskPriority(4)),
			)),
		))))...)

	items, err := svc.search.SearchTasks(context.Background(), "unestimated")
	require.NoError(t, err)
	require.Len(t, items, 1)
	w := items[0]
	assert.InDelta(t, 500.0, w.Progress, 0.001)
	assert.Equal(t, domain.WorkStatusTodo, w.Status, "unknown status falls back")
	assert.Equal(t, domain.PriorityCritical, w.Priority)
	assert.Equal(t, "", w.Department)
	assert.Empty(t, w.Members)
	assert.Equal(t, 9, w.SprintID)

	all, err := svc.search.SearchTasks(context.Background(), "set up ci")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Engineering", all[0].Department)
	assert.InDelta(t, 50.0, all[0].Progress, 0.001)
	assert.True(t, all[0].HasMember(1))
}

func TestSearchService_SearchMembers(t *testing.T) {
	svc := setupStandard(t)
	ctx := context.Background()

	all, err := svc.search.SearchMembers(ctx, " ")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tests := map[string]string{
		"ALI":    "alice", // username
		"d-2002": "bob",   // id number
		"smith":  "alice", // full name
		"junior": "bob",   // grade
		"design": "bob",   // department
	}
	for q, want := range tests {
		found, err := svc.search.SearchMembers(ctx, q)
		require.NoError(t, err)
		require.Len(t, found, 1, q)
		assert.Equal(t, want, found[0].Username, q)
	}
}

func TestSearchService_UnicodeFolding(t *testing.T) {
	svc := setupServices(t, testutil.WithMembers(
		domain.Member{ID: 1, Username: "js01", FullName: "Jürgen Strauß"},
	))

	found, err := svc.search.SearchMembers(context.Background(), "STRAUSS")
	require.NoError(t, err)
	require.Len(t, found, 1, "ß folds to ss")

	found, err = svc.search.SearchMembers(context.Background(), "JÜRGEN")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
