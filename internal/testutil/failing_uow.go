package testutil

import (
	"context"

	"github.com/alexanderramin/sprintline/internal/db"
)

// FailAfterFnUoW runs the callback inside the wrapped UnitOfWork and then
// returns Err, forcing a rollback after every write has been applied. Reads
// pass through. This exercises rollback of multi-step mutations.
type FailAfterFnUoW struct {
	Inner db.UnitOfWork
	Err   error
}

func (u *FailAfterFnUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *db.Tree) error) error {
	return u.Inner.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		if err := fn(ctx, tx); err != nil {
			return err
		}
		return u.Err
	})
}

func (u *FailAfterFnUoW) WithinRead(ctx context.Context, fn func(ctx context.Context, tx *db.Tree) error) error {
	return u.Inner.WithinRead(ctx, fn)
}
