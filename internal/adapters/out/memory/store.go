// Package memory provides in-process implementations of the canteen ports.
// It backs local runs without PostgreSQL or Redis and the application tests.
//
// Units of work are serialized: Begin waits for the previous unit of work to
// finish, works on a private copy of the data and Commit swaps that copy in.
// This gives the same guarantees the PostgreSQL adapter gets from row locks,
// at the cost of no write concurrency.
package memory

import (
	"context"
	"errors"
	"maps"
	"sync"
	"sync/atomic"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"

	"github.com/google/uuid"
)

var ErrNoTransaction = errors.New("memory: no active transaction")

type state struct {
	orders      map[uuid.UUID]order.Snapshot
	pickupCodes map[string]struct{}
}

func newState() *state {
	return &state{
		orders:      make(map[uuid.UUID]order.Snapshot),
		pickupCodes: make(map[string]struct{}),
	}
}

func (s *state) clone() *state {
	return &state{
		orders:      maps.Clone(s.orders),
		pickupCodes: maps.Clone(s.pickupCodes),
	}
}

// Store holds orders and the pickup code ledger.
type Store struct {
	txSem    chan struct{}
	mu       sync.RWMutex
	state    *state
	queueSeq atomic.Int64
}

func NewStore() *Store {
	return &Store{
		txSem: make(chan struct{}, 1),
		state: newState(),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.txSem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.txSem
}

// OrderRepository returns a repository that works outside any unit of work.
// Writes through it still wait for running units of work to finish.
func (s *Store) OrderRepository() *OrderRepository {
	return &OrderRepository{store: s}
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is a serialized transaction over a Store.
type UnitOfWork struct {
	store *Store
	tx    *state
}

// Begin blocks until no other unit of work is active or ctx is done.
// Calling Begin twice is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}

	if err := u.store.acquire(ctx); err != nil {
		return err
	}

	u.store.mu.RLock()
	u.tx = u.store.state.clone()
	u.store.mu.RUnlock()
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}

	u.store.mu.Lock()
	u.store.state = u.tx
	u.store.mu.Unlock()

	u.tx = nil
	u.store.release()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}

	u.tx = nil
	u.store.release()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: u.store, tx: u.tx}
}
