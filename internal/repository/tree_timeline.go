package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
)

// TreeTimelineRepo implements TimelineRepo over the root collection of a tree.
type TreeTimelineRepo struct {
	tree *db.Tree
}

// NewTreeTimelineRepo creates a new TreeTimelineRepo.
func NewTreeTimelineRepo(tx *db.Tree) *TreeTimelineRepo {
	return &TreeTimelineRepo{tree: tx}
}

func (r *TreeTimelineRepo) Create(ctx context.Context, tl *domain.Timeline) error {
	if findTimeline(r.tree, tl.ID) != nil {
		return fmt.Errorf("inserting timeline %d: duplicate id", tl.ID)
	}
	for _, sp := range tl.Sprints {
		sp.TimelineID = tl.ID
	}
	r.tree.Timelines = append(r.tree.Timelines, tl)
	r.tree.RaiseHighWater(domain.KindTimeline, tl.ID)
	return nil
}

func (r *TreeTimelineRepo) GetByID(ctx context.Context, id int) (*domain.Timeline, error) {
	tl := findTimeline(r.tree, id)
	if tl == nil {
		return nil, fmt.Errorf("timeline %d: %w", id, ErrNotFound)
	}
	return tl, nil
}

func (r *TreeTimelineRepo) List(ctx context.Context) ([]*domain.Timeline, error) {
	return slices.Clone(r.tree.Timelines), nil
}

func (r *TreeTimelineRepo) ListByProject(ctx context.Context, projectID int) ([]*domain.Timeline, error) {
	var out []*domain.Timeline
	for _, tl := range r.tree.Timelines {
		if tl.ProjectID == projectID {
			out = append(out, tl)
		}
	}
	return out, nil
}

// Delete removes the timeline and, with it, its whole subtree.
func (r *TreeTimelineRepo) Delete(ctx context.Context, id int) (*domain.Timeline, error) {
	rest, removed, ok := removeByID(r.tree.Timelines, func(tl *domain.Timeline) int { return tl.ID }, id)
	if !ok {
		return nil, fmt.Errorf("timeline %d: %w", id, ErrNotFound)
	}
	r.tree.Timelines = rest
	return removed, nil
}
