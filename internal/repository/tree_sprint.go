package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
)

// TreeSprintRepo implements SprintRepo. Lookups scan timelines in storage
// order and return the first sprint with a matching id.
type TreeSprintRepo struct {
	tree *db.Tree
}

// NewTreeSprintRepo creates a new TreeSprintRepo.
func NewTreeSprintRepo(tx *db.Tree) *TreeSprintRepo {
	return &TreeSprintRepo{tree: tx}
}

// Create appends s to the timeline's sprint list and points its foreign key
// at the timeline.
func (r *TreeSprintRepo) Create(ctx context.Context, timelineID int, s *domain.Sprint) error {
	tl := findTimeline(r.tree, timelineID)
	if tl == nil {
		return fmt.Errorf("timeline %d: %w", timelineID, ErrNotFound)
	}
	if _, dup := findSprint(r.tree, s.ID); dup != nil {
		return fmt.Errorf("inserting sprint %d: duplicate id", s.ID)
	}
	s.TimelineID = tl.ID
	tl.Sprints = append(tl.Sprints, s)
	r.tree.RaiseHighWater(domain.KindSprint, s.ID)
	return nil
}

func (r *TreeSprintRepo) GetByID(ctx context.Context, id int) (*domain.Sprint, error) {
	_, sp, err := r.Locate(ctx, id)
	return sp, err
}

// Locate returns the sprint together with the timeline that holds it.
func (r *TreeSprintRepo) Locate(ctx context.Context, id int) (*domain.Timeline, *domain.Sprint, error) {
	tl, sp := findSprint(r.tree, id)
	if sp == nil {
		return nil, nil, fmt.Errorf("sprint %d: %w", id, ErrNotFound)
	}
	return tl, sp, nil
}

// Delete removes the sprint from its timeline. Its tasks and subtasks go
// with it.
func (r *TreeSprintRepo) Delete(ctx context.Context, id int) (*domain.Sprint, error) {
	tl, sp := findSprint(r.tree, id)
	if sp == nil {
		return nil, fmt.Errorf("sprint %d: %w", id, ErrNotFound)
	}
	tl.Sprints, _, _ = removeByID(tl.Sprints, func(s *domain.Sprint) int { return s.ID }, id)
	return sp, nil
}
