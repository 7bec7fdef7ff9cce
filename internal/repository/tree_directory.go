package repository

import (
	"context"
	"slices"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
)

// TreeDirectoryRepo exposes the read-only department and member directories
// loaded with the seed.
type TreeDirectoryRepo struct {
	tree *db.Tree
}

// NewTreeDirectoryRepo creates a new TreeDirectoryRepo.
func NewTreeDirectoryRepo(tx *db.Tree) *TreeDirectoryRepo {
	return &TreeDirectoryRepo{tree: tx}
}

func (r *TreeDirectoryRepo) Departments(ctx context.Context) (map[int]domain.Department, error) {
	out := make(map[int]domain.Department, len(r.tree.Departments))
	for _, d := range r.tree.Departments {
		out[d.ID] = d
	}
	return out, nil
}

// Members returns the roster in seed order.
func (r *TreeDirectoryRepo) Members(ctx context.Context) ([]domain.Member, error) {
	return slices.Clone(r.tree.Members), nil
}

func (r *TreeDirectoryRepo) MembersByID(ctx context.Context) (map[int]domain.Member, error) {
	out := make(map[int]domain.Member, len(r.tree.Members))
	for _, m := range r.tree.Members {
		out[m.ID] = m
	}
	return out, nil
}
