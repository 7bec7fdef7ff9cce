package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
)

// TreeSubtaskRepo implements SubtaskRepo.
type TreeSubtaskRepo struct {
	tree *db.Tree
}

// NewTreeSubtaskRepo creates a new TreeSubtaskRepo.
func NewTreeSubtaskRepo(tx *db.Tree) *TreeSubtaskRepo {
	return &TreeSubtaskRepo{tree: tx}
}

func (r *TreeSubtaskRepo) Create(ctx context.Context, taskID int, st *domain.Subtask) error {
	_, t := findTask(r.tree, taskID)
	if t == nil {
		return fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	if _, dup := findSubtask(r.tree, st.ID); dup != nil {
		return fmt.Errorf("inserting subtask %d: duplicate id", st.ID)
	}
	st.TaskID = t.ID
	t.Subtasks = append(t.Subtasks, st)
	r.tree.RaiseHighWater(domain.KindSubtask, st.ID)
	return nil
}

func (r *TreeSubtaskRepo) GetByID(ctx context.Context, id int) (*domain.Subtask, error) {
	_, st, err := r.Locate(ctx, id)
	return st, err
}

// Locate returns the subtask together with the task that holds it.
func (r *TreeSubtaskRepo) Locate(ctx context.Context, id int) (*domain.Task, *domain.Subtask, error) {
	t, st := findSubtask(r.tree, id)
	if st == nil {
		return nil, nil, fmt.Errorf("subtask %d: %w", id, ErrNotFound)
	}
	return t, st, nil
}

func (r *TreeSubtaskRepo) Delete(ctx context.Context, id int) (*domain.Subtask, error) {
	t, st := findSubtask(r.tree, id)
	if st == nil {
		return nil, fmt.Errorf("subtask %d: %w", id, ErrNotFound)
	}
	t.Subtasks, _, _ = removeByID(t.Subtasks, func(s *domain.Subtask) int { return s.ID }, id)
	return st, nil
}
