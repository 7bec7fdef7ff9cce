package repository

import (
	"slices"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
)

// The find helpers walk Timelines -> Sprints -> Tasks -> Subtasks in storage
// order and return the first match. Ids are unique per kind, so "first"
// only matters if that invariant has been broken by a bad seed.

func findTimeline(tree *db.Tree, id int) *domain.Timeline {
	for _, tl := range tree.Timelines {
		if tl.ID == id {
			return tl
		}
	}
	return nil
}

func findSprint(tree *db.Tree, id int) (*domain.Timeline, *domain.Sprint) {
	for _, tl := range tree.Timelines {
		for _, sp := range tl.Sprints {
			if sp.ID == id {
				return tl, sp
			}
		}
	}
	return nil, nil
}

func findTask(tree *db.Tree, id int) (*domain.Sprint, *domain.Task) {
	for _, tl := range tree.Timelines {
		for _, sp := range tl.Sprints {
			for _, t := range sp.Tasks {
				if t.ID == id {
					return sp, t
				}
			}
		}
	}
	return nil, nil
}

func findSubtask(tree *db.Tree, id int) (*domain.Task, *domain.Subtask) {
	for _, tl := range tree.Timelines {
		for _, sp := range tl.Sprints {
			for _, t := range sp.Tasks {
				for _, st := range t.Subtasks {
					if st.ID == id {
						return t, st
					}
				}
			}
		}
	}
	return nil, nil
}

// eachTask visits every task in traversal order.
func eachTask(tree *db.Tree, fn func(t *domain.Task)) {
	for _, tl := range tree.Timelines {
		for _, sp := range tl.Sprints {
			for _, t := range sp.Tasks {
				fn(t)
			}
		}
	}
}

// removeByID deletes the first element whose id matches, preserving order.
func removeByID[T any](items []T, idOf func(T) int, id int) ([]T, T, bool) {
	var zero T
	for i, item := range items {
		if idOf(item) == id {
			return slices.Delete(items, i, i+1), item, true
		}
	}
	return items, zero, false
}
