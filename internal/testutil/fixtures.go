package testutil

import (
	"time"

	"github.com/alexanderramin/sprintline/internal/domain"
)

// Date returns midnight UTC on the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Timeline options
type TimelineOption func(*domain.Timeline)

func WithProjectID(id int) TimelineOption {
	return func(tl *domain.Timeline) {
		tl.ProjectID = id
	}
}

func WithSprints(sprints ...*domain.Sprint) TimelineOption {
	return func(tl *domain.Timeline) {
		tl.Sprints = append(tl.Sprints, sprints...)
	}
}

func NewTestTimeline(id int, name string, opts ...TimelineOption) *domain.Timeline {
	now := time.Now().UTC()
	tl := &domain.Timeline{
		ID:        id,
		ProjectID: 1,
		Name:      name,
		StartDate: now.AddDate(0, -1, 0),
		EndDate:   now.AddDate(0, 2, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(tl)
	}
	return tl
}

// Sprint options
type SprintOption func(*domain.Sprint)

func WithSprintDates(start, end time.Time) SprintOption {
	return func(s *domain.Sprint) {
		s.SetDates(start, end)
	}
}

func WithSprintDepartment(id int) SprintOption {
	return func(s *domain.Sprint) {
		s.DepartmentID = &id
	}
}

func WithTasks(tasks ...*domain.Task) SprintOption {
	return func(s *domain.Sprint) {
		s.Tasks = append(s.Tasks, tasks...)
	}
}

// WithSprintUpdatedAt backdates the sprint so tests can observe a stamp.
func WithSprintUpdatedAt(at time.Time) SprintOption {
	return func(s *domain.Sprint) {
		s.UpdatedAt = at
	}
}

func NewTestSprint(id int, name string, opts ...SprintOption) *domain.Sprint {
	now := time.Now().UTC()
	s := &domain.Sprint{
		ID:        id,
		Name:      name,
		StatusID:  domain.DefaultStatusID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.SetDates(Date(2024, 1, 1), Date(2024, 1, 15))
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskDates(start, end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.SetDates(start, end)
	}
}

func WithTaskDescription(desc string) TaskOption {
	return func(t *domain.Task) {
		t.Description = desc
	}
}

func WithHours(estimated, actual float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = estimated
		t.ActualHours = actual
	}
}

func WithTaskStatus(id int) TaskOption {
	return func(t *domain.Task) {
		t.StatusID = id
	}
}

func WithTaskPriority(id int) TaskOption {
	return func(t *domain.Task) {
		t.PriorityID = id
	}
}

func WithTaskDepartment(id int) TaskOption {
	return func(t *domain.Task) {
		t.DepartmentID = &id
	}
}

func WithAssignee(id int, name string) TaskOption {
	return func(t *domain.Task) {
		t.AssigneeID = &id
		t.AssigneeName = name
		t.Members = append(t.Members, id)
	}
}

func WithDependencies(ids ...int) TaskOption {
	return func(t *domain.Task) {
		t.Dependencies = append(t.Dependencies, ids...)
	}
}

func WithSubtasks(subtasks ...*domain.Subtask) TaskOption {
	return func(t *domain.Task) {
		t.Subtasks = append(t.Subtasks, subtasks...)
	}
}

// WithTaskUpdatedAt backdates the task so tests can observe a stamp.
func WithTaskUpdatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.UpdatedAt = at
	}
}

func NewTestTask(id int, name string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:           id,
		Name:         name,
		StatusID:     domain.DefaultStatusID,
		PriorityID:   domain.DefaultPriorityID,
		Dependencies: []int{},
		Members:      []int{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	t.SetDates(Date(2024, 1, 2), Date(2024, 1, 5))
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Subtask options
type SubtaskOption func(*domain.Subtask)

func WithSubtaskHours(estimated, actual float64) SubtaskOption {
	return func(s *domain.Subtask) {
		s.EstimatedHours = estimated
		s.ActualHours = actual
	}
}

func WithSubtaskAssignee(id int, name string) SubtaskOption {
	return func(s *domain.Subtask) {
		s.AssigneeID = &id
		s.AssigneeName = name
	}
}

func NewTestSubtask(id int, name string, opts ...SubtaskOption) *domain.Subtask {
	now := time.Now().UTC()
	s := &domain.Subtask{
		ID:        id,
		Name:      name,
		StatusID:  domain.DefaultStatusID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StandardTree builds a two-timeline fixture used across packages:
//
//	TL-1 (project 1): SP-1 [TK-1 (ST-1, ST-2), TK-2 -> TK-1], SP-2 [TK-3]
//	TL-2 (project 2): SP-3 [TK-4 "Project Alpha Kickoff"]
//
// Departments 1 Engineering and 2 Design; members 1 alice and 2 bob.
func StandardTree() []TreeOption {
	return []TreeOption{
		WithDepartments(
			domain.Department{ID: 1, Name: "Engineering"},
			domain.Department{ID: 2, Name: "Design"},
		),
		WithMembers(
			domain.Member{ID: 1, Username: "alice", IDNumber: "E-1001", FullName: "Alice Smith", Grade: "Senior", Department: "Engineering"},
			domain.Member{ID: 2, Username: "bob", IDNumber: "D-2002", FullName: "Bob Jones", Grade: "Junior", Department: "Design"},
		),
		WithTimelines(
			NewTestTimeline(1, "Platform", WithProjectID(1), WithSprints(
				NewTestSprint(1, "Sprint 1", WithTasks(
					NewTestTask(1, "Set up CI",
						WithTaskDepartment(1),
						WithAssignee(1, "Alice Smith"),
						WithHours(8, 4),
						WithSubtasks(NewTestSubtask(1, "Write pipeline"), NewTestSubtask(2, "Add cache")),
					),
					NewTestTask(2, "Ship API", WithDependencies(1), WithTaskDepartment(1)),
				)),
				NewTestSprint(2, "Sprint 2", WithTasks(
					NewTestTask(3, "Design review", WithTaskDepartment(2), WithAssignee(2, "Bob Jones")),
				)),
			)),
			NewTestTimeline(2, "Launch", WithProjectID(2), WithSprints(
				NewTestSprint(3, "Launch Sprint", WithTasks(
					NewTestTask(4, "Project Alpha Kickoff", WithTaskDescription("first milestone")),
				)),
			)),
		),
	}
}
