package db

import (
	"context"
	"fmt"
)

// UnitOfWork manages exclusive access to the tree. WithinTx callbacks run
// under the write lock and are rolled back to a snapshot when they return an
// error or panic; WithinRead callbacks share the read lock and must not
// mutate the tree. Callers build tx-scoped repositories from the *Tree.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx *Tree) error) error
	WithinRead(ctx context.Context, fn func(ctx context.Context, tx *Tree) error) error
}

// MemoryUnitOfWork implements UnitOfWork over a DB.
type MemoryUnitOfWork struct {
	db *DB
}

// NewMemoryUnitOfWork creates a UnitOfWork backed by the given DB.
func NewMemoryUnitOfWork(db *DB) *MemoryUnitOfWork {
	return &MemoryUnitOfWork{db: db}
}

func (u *MemoryUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *Tree) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	u.db.mu.Lock()
	defer u.db.mu.Unlock()

	snapshot := u.db.tree.Clone()

	defer func() {
		if p := recover(); p != nil {
			u.db.tree = snapshot
			panic(p)
		}
	}()

	if err := fn(ctx, u.db.tree); err != nil {
		u.db.tree = snapshot
		return err
	}
	return nil
}

func (u *MemoryUnitOfWork) WithinRead(ctx context.Context, fn func(ctx context.Context, tx *Tree) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("beginning read: %w", err)
	}

	u.db.mu.RLock()
	defer u.db.mu.RUnlock()

	return fn(ctx, u.db.tree)
}
