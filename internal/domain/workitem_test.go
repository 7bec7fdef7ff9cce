package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromID(t *testing.T) {
	cases := []struct {
		id   int
		want WorkStatus
	}{
		{1, WorkStatusTodo},
		{2, WorkStatusInProgress},
		{3, WorkStatusReview},
		{4, WorkStatusDone},
		{5, WorkStatusBlocked},
		{0, WorkStatusTodo},
		{6, WorkStatusTodo},
		{-1, WorkStatusTodo},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFromID(tc.id), "id=%d", tc.id)
	}
}

func TestPriorityFromID(t *testing.T) {
	cases := []struct {
		id   int
		want Priority
	}{
		{1, PriorityLow},
		{2, PriorityMedium},
		{3, PriorityHigh},
		{4, PriorityCritical},
		{0, PriorityMedium},
		{99, PriorityMedium},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PriorityFromID(tc.id), "id=%d", tc.id)
	}
}

func TestLabelIDs_RoundTrip(t *testing.T) {
	for id := 1; id <= 5; id++ {
		assert.Equal(t, id, StatusFromID(id).ID())
	}
	for id := 1; id <= 4; id++ {
		assert.Equal(t, id, PriorityFromID(id).ID())
	}
	assert.Equal(t, 0, WorkStatus("unknown").ID())
	assert.Equal(t, 0, Priority("urgent").ID())
}

func TestComputedProgress_GuardsZeroEstimate(t *testing.T) {
	task := &Task{EstimatedHours: 0, ActualHours: 5}
	assert.InDelta(t, 500.0, task.ComputedProgress(), 1e-9)

	unestimated := &Task{ActualHours: 2}
	assert.InDelta(t, 200.0, unestimated.ComputedProgress(), 1e-9, "missing estimate divides by one")

	task = &Task{EstimatedHours: 8, ActualHours: 2}
	assert.InDelta(t, 25.0, task.ComputedProgress(), 1e-9)
}

func TestProjectTask_ResolvesDirectoryEntries(t *testing.T) {
	dept := 2
	assignee := 7
	task := &Task{
		ID:             1,
		SprintID:       3,
		Name:           "Wire API",
		StatusID:       3,
		PriorityID:     4,
		DepartmentID:   &dept,
		AssigneeID:     &assignee,
		EstimatedHours: 10,
		ActualHours:    5,
	}
	departments := map[int]Department{2: {ID: 2, Name: "Engineering"}}
	members := map[int]Member{7: {ID: 7, Username: "jdoe", FullName: "Jane Doe"}}

	w := ProjectTask(task, departments, members)

	assert.Equal(t, 1, w.ID)
	assert.Equal(t, 3, w.SprintID)
	assert.Equal(t, "Engineering", w.Department)
	assert.Equal(t, WorkStatusReview, w.Status)
	assert.Equal(t, PriorityCritical, w.Priority)
	assert.InDelta(t, 50.0, w.Progress, 1e-9)
	assert.True(t, w.HasMember(7))
}

func TestProjectTask_UnknownDirectoryEntries(t *testing.T) {
	dept := 99
	assignee := 42
	task := &Task{ID: 1, StatusID: 9, PriorityID: 0, DepartmentID: &dept, AssigneeID: &assignee}

	w := ProjectTask(task, nil, nil)

	assert.Empty(t, w.Department)
	assert.Empty(t, w.Members)
	assert.NotNil(t, w.Members)
	assert.Equal(t, WorkStatusTodo, w.Status)
	assert.Equal(t, PriorityMedium, w.Priority)
}

func TestTaskRemoveDependency(t *testing.T) {
	task := &Task{Dependencies: []int{1, 2, 3}}
	assert.True(t, task.RemoveDependency(2))
	assert.Equal(t, []int{1, 3}, task.Dependencies)
	assert.False(t, task.RemoveDependency(2))
	assert.True(t, task.DependsOn(3))
}
