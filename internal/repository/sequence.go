package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
)

// TreeSequenceRepo allocates store-wide ids per entity kind.
type TreeSequenceRepo struct {
	tree *db.Tree
}

// NewTreeSequenceRepo creates a new TreeSequenceRepo.
func NewTreeSequenceRepo(tx *db.Tree) *TreeSequenceRepo {
	return &TreeSequenceRepo{tree: tx}
}

// NextID returns one more than the largest id of kind present anywhere in the
// tree, or ever inserted, whichever is larger. The result is only reserved
// once the entity is inserted, so allocation and insert must share a tx.
func (r *TreeSequenceRepo) NextID(ctx context.Context, kind domain.EntityKind) (int, error) {
	maxID := 0
	bump := func(id int) {
		if id > maxID {
			maxID = id
		}
	}
	for _, tl := range r.tree.Timelines {
		if kind == domain.KindTimeline {
			bump(tl.ID)
			continue
		}
		for _, sp := range tl.Sprints {
			if kind == domain.KindSprint {
				bump(sp.ID)
				continue
			}
			for _, t := range sp.Tasks {
				if kind == domain.KindTask {
					bump(t.ID)
					continue
				}
				for _, st := range t.Subtasks {
					bump(st.ID)
				}
			}
		}
	}
	switch kind {
	case domain.KindTimeline, domain.KindSprint, domain.KindTask, domain.KindSubtask:
	default:
		return 0, fmt.Errorf("allocating id: unknown entity kind %q", kind)
	}
	return max(maxID, r.tree.HighWater(kind)) + 1, nil
}
