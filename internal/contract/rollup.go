package contract

import "github.com/alexanderramin/sprintline/internal/domain"

// TimelineSummary is one timeline with its subtree counts.
type TimelineSummary struct {
	Timeline       *domain.Timeline
	SprintCount    int
	TaskCount      int
	SubtaskCount   int
	EstimatedHours float64
	ActualHours    float64
}

// ProjectRollup groups the timelines of one project.
type ProjectRollup struct {
	ProjectID   int
	Timelines   []TimelineSummary
	SprintCount int
	TaskCount   int
}

// NewTimelineSummary computes the counts for tl.
func NewTimelineSummary(tl *domain.Timeline) TimelineSummary {
	s := TimelineSummary{Timeline: tl}
	s.SprintCount, s.TaskCount, s.SubtaskCount = tl.Counts()
	for _, sp := range tl.Sprints {
		for _, t := range sp.Tasks {
			s.EstimatedHours += t.EstimatedHours
			s.ActualHours += t.ActualHours
		}
	}
	return s
}
