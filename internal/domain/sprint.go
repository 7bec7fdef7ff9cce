package domain

import "time"

type Sprint struct {
	ID           int
	TimelineID   int
	Name         string
	Description  string
	StartDate    time.Time
	EndDate      time.Time
	Duration     int // days, derived from StartDate/EndDate
	StatusID     int
	DepartmentID *int
	Tasks        []*Task
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s *Sprint) TreeID() string {
	return TreeID(KindSprint, s.ID)
}

// SetDates replaces both dates and recomputes Duration.
func (s *Sprint) SetDates(start, end time.Time) {
	s.StartDate = start
	s.EndDate = end
	s.Duration = DurationDays(start, end)
}

func (s *Sprint) Touch(now time.Time) {
	s.UpdatedAt = now
}

// TaskIndex returns the position of the task with the given id, or -1.
func (s *Sprint) TaskIndex(taskID int) int {
	for i, t := range s.Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

func (s *Sprint) Clone() *Sprint {
	if s == nil {
		return nil
	}
	c := *s
	c.DepartmentID = CloneIntPtr(s.DepartmentID)
	c.Tasks = make([]*Task, len(s.Tasks))
	for i, t := range s.Tasks {
		c.Tasks[i] = t.Clone()
	}
	return &c
}
