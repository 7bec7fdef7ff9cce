package service

import (
	"context"
	"time"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/repository"
)

func now() time.Time {
	return time.Now().UTC()
}

// shiftedDates applies a moveDays directive to the stored dates. It returns
// nil pointers when no directive was given so callers fall back to the
// request's own dates.
func shiftedDates(start, end time.Time, moveDays *int) (*time.Time, *time.Time) {
	if moveDays == nil {
		return nil, nil
	}
	s := domain.ShiftDate(start, *moveDays)
	e := domain.ShiftDate(end, *moveDays)
	return &s, &e
}

// taskIDsUnder collects the ids of every task in the given sprints.
func taskIDsUnder(sprints ...*domain.Sprint) []int {
	var ids []int
	for _, sp := range sprints {
		for _, t := range sp.Tasks {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// countSubtasks sums the subtasks of the given tasks.
func countSubtasks(tasks ...*domain.Task) int {
	n := 0
	for _, t := range tasks {
		n += len(t.Subtasks)
	}
	return n
}

// pruneDependencies removes dangling references to deleted tasks.
func pruneDependencies(ctx context.Context, tx *db.Tree, removed []int) int {
	return repository.NewTreeDependencyRepo(tx).Prune(ctx, removed)
}
