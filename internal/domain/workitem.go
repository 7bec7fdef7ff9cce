package domain

import (
	"slices"
	"time"
)

// WorkItem is the flattened, display-ready projection of a Task used by
// cross-tree search. It is never stored.
type WorkItem struct {
	ID          int
	SprintID    int
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Duration    int
	Department  string
	Status      WorkStatus
	Priority    Priority
	Progress    float64
	Members     []Member
}

// ProjectTask builds the WorkItem for t. departments and members are the
// directory lookups; missing entries resolve to an empty department name and
// no members.
func ProjectTask(t *Task, departments map[int]Department, members map[int]Member) WorkItem {
	w := WorkItem{
		ID:          t.ID,
		SprintID:    t.SprintID,
		Name:        t.Name,
		Description: t.Description,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Duration:    t.Duration,
		Status:      StatusFromID(t.StatusID),
		Priority:    PriorityFromID(t.PriorityID),
		Progress:    t.ComputedProgress(),
		Members:     []Member{},
	}
	if t.DepartmentID != nil {
		w.Department = departments[*t.DepartmentID].Name
	}
	if t.AssigneeID != nil {
		if m, ok := members[*t.AssigneeID]; ok {
			w.Members = append(w.Members, m)
		}
	}
	return w
}

// HasMember reports whether a member with the given id was resolved.
func (w WorkItem) HasMember(id int) bool {
	return slices.ContainsFunc(w.Members, func(m Member) bool { return m.ID == id })
}
