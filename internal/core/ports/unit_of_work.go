package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes the reads and writes of one command. Nothing written
// through OrderRepository is visible to others before Commit.
//
// Commit and Rollback fail when Begin was not called. Calling Rollback after a
// successful Commit is harmless, so handlers defer it unconditionally.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the open transaction, or works directly on
	// the store when none is open.
	OrderRepository() OrderRepository
}
