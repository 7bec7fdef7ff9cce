package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
)

// ErrInvalidDependency is returned for self, duplicate or cyclic edges.
var ErrInvalidDependency = errors.New("invalid dependency")

// TreeDependencyRepo manages the task dependency lists. An edge A -> B is
// stored as B's id in A.Dependencies and means A depends on B.
type TreeDependencyRepo struct {
	tree *db.Tree
}

// NewTreeDependencyRepo creates a new TreeDependencyRepo.
func NewTreeDependencyRepo(tx *db.Tree) *TreeDependencyRepo {
	return &TreeDependencyRepo{tree: tx}
}

func (r *TreeDependencyRepo) Add(ctx context.Context, taskID, dependsOnID int) error {
	if taskID == dependsOnID {
		return fmt.Errorf("task %d depends on itself: %w", taskID, ErrInvalidDependency)
	}
	_, task := findTask(r.tree, taskID)
	if task == nil {
		return fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	if _, pred := findTask(r.tree, dependsOnID); pred == nil {
		return fmt.Errorf("task %d: %w", dependsOnID, ErrNotFound)
	}
	if task.DependsOn(dependsOnID) {
		return fmt.Errorf("task %d already depends on %d: %w", taskID, dependsOnID, ErrInvalidDependency)
	}
	if r.reaches(dependsOnID, taskID) {
		return fmt.Errorf("task %d -> %d would create a cycle: %w", taskID, dependsOnID, ErrInvalidDependency)
	}
	task.Dependencies = append(task.Dependencies, dependsOnID)
	return nil
}

func (r *TreeDependencyRepo) Remove(ctx context.Context, taskID, dependsOnID int) error {
	_, task := findTask(r.tree, taskID)
	if task == nil {
		return fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	if !task.RemoveDependency(dependsOnID) {
		return fmt.Errorf("dependency %d -> %d: %w", taskID, dependsOnID, ErrNotFound)
	}
	return nil
}

// ListPredecessors returns the ids taskID depends on.
func (r *TreeDependencyRepo) ListPredecessors(ctx context.Context, taskID int) ([]int, error) {
	_, task := findTask(r.tree, taskID)
	if task == nil {
		return nil, fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	return slices.Clone(task.Dependencies), nil
}

// ListSuccessors returns the ids of tasks that depend on taskID, in traversal
// order.
func (r *TreeDependencyRepo) ListSuccessors(ctx context.Context, taskID int) ([]int, error) {
	if _, task := findTask(r.tree, taskID); task == nil {
		return nil, fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	var out []int
	eachTask(r.tree, func(t *domain.Task) {
		if t.DependsOn(taskID) {
			out = append(out, t.ID)
		}
	})
	return out, nil
}

// Prune drops every reference to the removed ids from the remaining tasks and
// returns how many references were dropped.
func (r *TreeDependencyRepo) Prune(ctx context.Context, removed []int) int {
	if len(removed) == 0 {
		return 0
	}
	dropped := 0
	eachTask(r.tree, func(t *domain.Task) {
		before := len(t.Dependencies)
		t.Dependencies = slices.DeleteFunc(t.Dependencies, func(id int) bool {
			return slices.Contains(removed, id)
		})
		dropped += before - len(t.Dependencies)
	})
	return dropped
}

// reaches reports whether to is reachable from from by following
// dependency edges.
func (r *TreeDependencyRepo) reaches(from, to int) bool {
	deps := make(map[int][]int)
	eachTask(r.tree, func(t *domain.Task) {
		deps[t.ID] = t.Dependencies
	})
	seen := map[int]bool{}
	stack := []int{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == to {
			return true
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		stack = append(stack, deps[id]...)
	}
	return false
}
