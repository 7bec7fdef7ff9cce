package db

import (
	"time"

	"github.com/alexanderramin/sprintline/internal/domain"
)

// Normalize brings a freshly loaded tree in line with the store invariants:
// child foreign keys point at their containing parent, durations are derived
// from dates, missing timestamps are stamped with now, and the per-kind
// high-water marks cover every id present.
func Normalize(tree *Tree, now time.Time) {
	for _, tl := range tree.Timelines {
		stampMissing(&tl.CreatedAt, &tl.UpdatedAt, now)
		tree.RaiseHighWater(domain.KindTimeline, tl.ID)

		for _, sp := range tl.Sprints {
			sp.TimelineID = tl.ID
			sp.Duration = domain.DurationDays(sp.StartDate, sp.EndDate)
			stampMissing(&sp.CreatedAt, &sp.UpdatedAt, now)
			tree.RaiseHighWater(domain.KindSprint, sp.ID)

			for _, task := range sp.Tasks {
				task.SprintID = sp.ID
				task.Duration = domain.DurationDays(task.StartDate, task.EndDate)
				stampMissing(&task.CreatedAt, &task.UpdatedAt, now)
				tree.RaiseHighWater(domain.KindTask, task.ID)

				for _, st := range task.Subtasks {
					st.TaskID = task.ID
					stampMissing(&st.CreatedAt, &st.UpdatedAt, now)
					tree.RaiseHighWater(domain.KindSubtask, st.ID)
				}
			}
		}
	}
}

func stampMissing(createdAt, updatedAt *time.Time, now time.Time) {
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = *createdAt
	}
}
