package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
)

// TreeOption configures the seed handed to NewTestDB.
type TreeOption func(*db.Tree)

func WithTimelines(tls ...*domain.Timeline) TreeOption {
	return func(t *db.Tree) {
		t.Timelines = append(t.Timelines, tls...)
	}
}

func WithDepartments(ds ...domain.Department) TreeOption {
	return func(t *db.Tree) {
		t.Departments = append(t.Departments, ds...)
	}
}

func WithMembers(ms ...domain.Member) TreeOption {
	return func(t *db.Tree) {
		t.Members = append(t.Members, ms...)
	}
}

// NewTestDB opens an in-memory store seeded from opts. Each call returns an
// isolated store.
func NewTestDB(t *testing.T, opts ...TreeOption) *db.DB {
	t.Helper()
	seed := db.NewTree()
	for _, opt := range opts {
		opt(seed)
	}
	return db.OpenDB(seed)
}

// NewTestTree builds a normalized tree for repository tests that work on a
// *db.Tree directly.
func NewTestTree(opts ...TreeOption) *db.Tree {
	tree := db.NewTree()
	for _, opt := range opts {
		opt(tree)
	}
	db.Normalize(tree, time.Now().UTC())
	return tree
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *db.DB) db.UnitOfWork {
	return db.NewMemoryUnitOfWork(database)
}
