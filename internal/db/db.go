package db

import (
	"sync"
	"time"
)

// DB owns the process-wide tree. All access goes through a UnitOfWork, which
// holds mu for the whole callback so id allocation, insertion and moves are
// atomic with respect to each other.
type DB struct {
	mu   sync.RWMutex
	tree *Tree
}

// OpenDB builds a store from a seed snapshot. The seed is copied and
// normalized; later changes to seed do not leak into the store.
// A nil seed opens an empty store.
func OpenDB(seed *Tree) *DB {
	tree := NewTree()
	if seed != nil {
		tree = seed.Clone()
	}
	Normalize(tree, time.Now().UTC())
	return &DB{tree: tree}
}

// Snapshot returns a deep copy of the current tree.
func (d *DB) Snapshot() *Tree {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tree.Clone()
}
