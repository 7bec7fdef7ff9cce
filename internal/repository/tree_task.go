package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
)

// TreeTaskRepo implements TaskRepo. Lookups walk timelines then sprints in
// storage order and return the first task with a matching id.
type TreeTaskRepo struct {
	tree *db.Tree
}

// NewTreeTaskRepo creates a new TreeTaskRepo.
func NewTreeTaskRepo(tx *db.Tree) *TreeTaskRepo {
	return &TreeTaskRepo{tree: tx}
}

func (r *TreeTaskRepo) Create(ctx context.Context, sprintID int, t *domain.Task) error {
	_, sp := findSprint(r.tree, sprintID)
	if sp == nil {
		return fmt.Errorf("sprint %d: %w", sprintID, ErrNotFound)
	}
	if _, dup := findTask(r.tree, t.ID); dup != nil {
		return fmt.Errorf("inserting task %d: duplicate id", t.ID)
	}
	t.SprintID = sp.ID
	sp.Tasks = append(sp.Tasks, t)
	r.tree.RaiseHighWater(domain.KindTask, t.ID)
	return nil
}

func (r *TreeTaskRepo) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	_, t, err := r.Locate(ctx, id)
	return t, err
}

// Locate returns the task together with the sprint that holds it.
func (r *TreeTaskRepo) Locate(ctx context.Context, id int) (*domain.Sprint, *domain.Task, error) {
	sp, t := findTask(r.tree, id)
	if t == nil {
		return nil, nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return sp, t, nil
}

// List returns every task in traversal order.
func (r *TreeTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	var out []*domain.Task
	eachTask(r.tree, func(t *domain.Task) {
		out = append(out, t)
	})
	return out, nil
}

// Delete removes the task from its sprint together with its subtasks.
// Dependency references to it are left for the caller to prune.
func (r *TreeTaskRepo) Delete(ctx context.Context, id int) (*domain.Task, error) {
	sp, t := findTask(r.tree, id)
	if t == nil {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	sp.Tasks, _, _ = removeByID(sp.Tasks, func(t *domain.Task) int { return t.ID }, id)
	return t, nil
}
