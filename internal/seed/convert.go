package seed

import (
	"slices"
	"time"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
)

// Convert transforms a validated snapshot into a tree ready for db.OpenDB.
// Call Validate first; Convert assumes every date parses. Missing dates
// default to now, missing codes to the create-time defaults.
func Convert(s *Snapshot, now time.Time) *db.Tree {
	tree := db.NewTree()

	for _, d := range s.Departments {
		tree.Departments = append(tree.Departments, domain.Department{ID: d.ID, Name: d.Name})
	}
	for _, m := range s.Members {
		tree.Members = append(tree.Members, domain.Member{
			ID:         m.ID,
			Username:   m.Username,
			IDNumber:   m.IDNumber,
			FullName:   m.FullName,
			Grade:      m.Grade,
			Department: m.Department,
		})
	}

	tree.Timelines = make([]*domain.Timeline, 0, len(s.Timelines))
	for _, tl := range s.Timelines {
		timeline := &domain.Timeline{
			ID:          tl.ID,
			ProjectID:   tl.ProjectID,
			Name:        tl.Name,
			Description: tl.Description,
			StartDate:   dateOr(tl.StartDate, now),
			EndDate:     dateOr(tl.EndDate, now),
			Sprints:     make([]*domain.Sprint, 0, len(tl.Sprints)),
		}
		for _, sp := range tl.Sprints {
			timeline.Sprints = append(timeline.Sprints, convertSprint(sp, now))
		}
		tree.Timelines = append(tree.Timelines, timeline)
	}

	return tree
}

func convertSprint(sp SprintSeed, now time.Time) *domain.Sprint {
	sprint := &domain.Sprint{
		ID:           sp.ID,
		Name:         sp.Name,
		Description:  sp.Description,
		StatusID:     domain.IntFromPtrWithDefault(domain.DefaultStatusID, sp.StatusID),
		DepartmentID: domain.CloneIntPtr(sp.DepartmentID),
		Tasks:        make([]*domain.Task, 0, len(sp.Tasks)),
	}
	sprint.SetDates(dateOr(sp.StartDate, now), dateOr(sp.EndDate, now))
	for _, t := range sp.Tasks {
		sprint.Tasks = append(sprint.Tasks, convertTask(t, now))
	}
	return sprint
}

func convertTask(t TaskSeed, now time.Time) *domain.Task {
	task := &domain.Task{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		StatusID:       domain.IntFromPtrWithDefault(domain.DefaultStatusID, t.StatusID),
		PriorityID:     domain.IntFromPtrWithDefault(domain.DefaultPriorityID, t.PriorityID),
		DepartmentID:   domain.CloneIntPtr(t.DepartmentID),
		AssigneeID:     domain.CloneIntPtr(t.AssigneeID),
		AssigneeName:   t.AssigneeName,
		EstimatedHours: domain.Float64FromPtrWithDefault(0, t.EstimatedHours),
		ActualHours:    domain.Float64FromPtrWithDefault(0, t.ActualHours),
		Dependencies:   slices.Clone(t.Dependencies),
		Members:        slices.Clone(t.Members),
		Subtasks:       make([]*domain.Subtask, 0, len(t.Subtasks)),
	}
	if task.Dependencies == nil {
		task.Dependencies = []int{}
	}
	if task.Members == nil {
		task.Members = []int{}
	}
	task.Progress = domain.Float64FromPtrWithDefault(task.ComputedProgress(), t.Progress)
	task.SetDates(dateOr(t.StartDate, now), dateOr(t.EndDate, now))

	for _, st := range t.Subtasks {
		task.Subtasks = append(task.Subtasks, &domain.Subtask{
			ID:             st.ID,
			Name:           st.Name,
			Description:    st.Description,
			AssigneeID:     domain.CloneIntPtr(st.AssigneeID),
			AssigneeName:   st.AssigneeName,
			StatusID:       domain.IntFromPtrWithDefault(domain.DefaultStatusID, st.StatusID),
			PriorityID:     domain.CloneIntPtr(st.PriorityID),
			DepartmentID:   domain.CloneIntPtr(st.DepartmentID),
			EstimatedHours: domain.Float64FromPtrWithDefault(0, st.EstimatedHours),
			ActualHours:    domain.Float64FromPtrWithDefault(0, st.ActualHours),
		})
	}
	return task
}

func dateOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return fallback
	}
	return t
}
