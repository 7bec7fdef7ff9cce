package domain

import (
	"slices"
	"time"
)

type Task struct {
	ID             int
	SprintID       int
	Name           string
	Description    string
	StartDate      time.Time
	EndDate        time.Time
	Duration       int // days, derived from StartDate/EndDate
	StatusID       int
	PriorityID     int
	DepartmentID   *int
	AssigneeID     *int
	AssigneeName   string
	EstimatedHours float64
	ActualHours    float64
	Dependencies   []int // ids of tasks this task depends on
	Progress       float64
	Subtasks       []*Subtask
	Members        []int // member ids
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (t *Task) TreeID() string {
	return TreeID(KindTask, t.ID)
}

// SetDates replaces both dates and recomputes Duration.
func (t *Task) SetDates(start, end time.Time) {
	t.StartDate = start
	t.EndDate = end
	t.Duration = DurationDays(start, end)
}

func (t *Task) Touch(now time.Time) {
	t.UpdatedAt = now
}

// ComputedProgress returns actual/estimated hours as a percentage. An
// unestimated task divides by one hour.
func (t *Task) ComputedProgress() float64 {
	return t.ActualHours / max(t.EstimatedHours, 1) * 100
}

// DependsOn reports whether taskID is in the dependency list.
func (t *Task) DependsOn(taskID int) bool {
	return slices.Contains(t.Dependencies, taskID)
}

// RemoveDependency drops taskID from the dependency list and reports whether
// it was present.
func (t *Task) RemoveDependency(taskID int) bool {
	before := len(t.Dependencies)
	t.Dependencies = slices.DeleteFunc(t.Dependencies, func(id int) bool { return id == taskID })
	return len(t.Dependencies) != before
}

// SubtaskIndex returns the position of the subtask with the given id, or -1.
func (t *Task) SubtaskIndex(subtaskID int) int {
	for i, st := range t.Subtasks {
		if st.ID == subtaskID {
			return i
		}
	}
	return -1
}

func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	c.DepartmentID = CloneIntPtr(t.DepartmentID)
	c.AssigneeID = CloneIntPtr(t.AssigneeID)
	c.Dependencies = slices.Clone(t.Dependencies)
	c.Members = slices.Clone(t.Members)
	c.Subtasks = make([]*Subtask, len(t.Subtasks))
	for i, st := range t.Subtasks {
		c.Subtasks[i] = st.Clone()
	}
	return &c
}

type Subtask struct {
	ID             int
	TaskID         int
	Name           string
	Description    string
	AssigneeID     *int
	AssigneeName   string
	StatusID       int
	PriorityID     *int
	DepartmentID   *int
	EstimatedHours float64
	ActualHours    float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (s *Subtask) TreeID() string {
	return TreeID(KindSubtask, s.ID)
}

func (s *Subtask) Touch(now time.Time) {
	s.UpdatedAt = now
}

func (s *Subtask) Clone() *Subtask {
	if s == nil {
		return nil
	}
	c := *s
	c.AssigneeID = CloneIntPtr(s.AssigneeID)
	c.PriorityID = CloneIntPtr(s.PriorityID)
	c.DepartmentID = CloneIntPtr(s.DepartmentID)
	return &c
}
