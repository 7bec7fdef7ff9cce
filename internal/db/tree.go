package db

import (
	"slices"

	"github.com/alexanderramin/sprintline/internal/domain"
)

// Tree is the whole in-memory store: the timeline hierarchy plus the
// read-only directories used during projection. Repositories operate on a
// *Tree handed to them by a UnitOfWork; a Tree must never be touched outside
// one.
type Tree struct {
	Timelines   []*domain.Timeline
	Departments []domain.Department
	Members     []domain.Member

	// highWater is the largest id ever inserted per kind, deletions included.
	highWater map[domain.EntityKind]int
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{highWater: make(map[domain.EntityKind]int)}
}

// HighWater returns the largest id ever inserted for kind.
func (t *Tree) HighWater(kind domain.EntityKind) int {
	return t.highWater[kind]
}

// RaiseHighWater records id as inserted for kind.
func (t *Tree) RaiseHighWater(kind domain.EntityKind, id int) {
	if t.highWater == nil {
		t.highWater = make(map[domain.EntityKind]int)
	}
	if id > t.highWater[kind] {
		t.highWater[kind] = id
	}
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		Timelines:   make([]*domain.Timeline, len(t.Timelines)),
		Departments: slices.Clone(t.Departments),
		Members:     slices.Clone(t.Members),
		highWater:   make(map[domain.EntityKind]int, len(t.highWater)),
	}
	for i, tl := range t.Timelines {
		c.Timelines[i] = tl.Clone()
	}
	for k, v := range t.highWater {
		c.highWater[k] = v
	}
	return c
}
