package memory

import (
	"context"
	"sort"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over a Store.
type OrderRepository struct {
	store *Store
	tx    *state
}

func (r *OrderRepository) view(fn func(s *state) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return fn(r.store.state)
}

func (r *OrderRepository) update(ctx context.Context, fn func(s *state) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}

	if err := r.store.acquire(ctx); err != nil {
		return err
	}
	defer r.store.release()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(r.store.state)
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snapshot := aggregate.Snapshot()
	return r.update(ctx, func(s *state) error {
		if _, taken := s.pickupCodes[snapshot.PickupCode]; taken {
			return errs.NewConflictError("pickup code")
		}
		if _, exists := s.orders[snapshot.ID.Bytes()]; exists {
			return errs.NewConflictError("order")
		}
		for _, existing := range s.orders {
			if existing.Status.IsActive() && existing.QueueNumber == snapshot.QueueNumber {
				return errs.NewConflictError("queue number")
			}
		}

		s.orders[snapshot.ID.Bytes()] = snapshot
		s.pickupCodes[snapshot.PickupCode] = struct{}{}
		return nil
	})
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snapshot := aggregate.Snapshot()
	return r.update(ctx, func(s *state) error {
		if _, exists := s.orders[snapshot.ID.Bytes()]; !exists {
			return errs.NewObjectNotFoundError("order", snapshot.ID.String())
		}
		s.orders[snapshot.ID.Bytes()] = snapshot
		return nil
	})
}

func (r *OrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.update(ctx, func(s *state) error {
		if _, exists := s.orders[id.Bytes()]; !exists {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		delete(s.orders, id.Bytes())
		return nil
	})
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var result *order.Order
	err := r.view(func(s *state) error {
		snapshot, ok := s.orders[id.Bytes()]
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}

		var restoreErr error
		result, restoreErr = order.RestoreOrder(snapshot)
		return restoreErr
	})
	return result, err
}

// GetForUpdate needs no extra locking: units of work already run one at a time.
func (r *OrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r *OrderRepository) GetByPickupCode(_ context.Context, code string) (*order.Order, error) {
	orders, err := r.filter(func(s order.Snapshot) bool { return s.PickupCode == code })
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("pickup code", code)
	}
	return orders[0], nil
}

func (r *OrderRepository) PickupCodeExists(_ context.Context, code string) (bool, error) {
	var exists bool
	err := r.view(func(s *state) error {
		_, exists = s.pickupCodes[code]
		return nil
	})
	return exists, err
}

func (r *OrderRepository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	orders, err := r.filter(func(s order.Snapshot) bool { return s.Status.IsActive() })
	if err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].QueueNumber() < orders[j].QueueNumber()
	})
	return orders, nil
}

func (r *OrderRepository) GetAllByUserID(_ context.Context, userID string) ([]*order.Order, error) {
	orders, err := r.filter(func(s order.Snapshot) bool { return s.UserID == userID })
	if err != nil {
		return nil, err
	}

	sortNewestFirst(orders)
	return orders, nil
}

func (r *OrderRepository) GetAllByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	orders, err := r.filter(func(s order.Snapshot) bool { return s.Status == status })
	if err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].UpdatedAt().Equal(orders[j].UpdatedAt()) {
			return orders[i].UpdatedAt().After(orders[j].UpdatedAt())
		}
		return orders[i].QueueNumber() > orders[j].QueueNumber()
	})
	return orders, nil
}

func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	orders, err := r.filter(func(order.Snapshot) bool { return true })
	if err != nil {
		return nil, err
	}

	sortNewestFirst(orders)
	return orders, nil
}

func (r *OrderRepository) NextQueueNumber(_ context.Context) (int, error) {
	return int(r.store.queueSeq.Add(1)), nil
}

func (r *OrderRepository) filter(match func(order.Snapshot) bool) ([]*order.Order, error) {
	var result []*order.Order
	err := r.view(func(s *state) error {
		result = make([]*order.Order, 0, len(s.orders))
		for _, snapshot := range s.orders {
			if !match(snapshot) {
				continue
			}
			o, err := order.RestoreOrder(snapshot)
			if err != nil {
				return err
			}
			result = append(result, o)
		}
		return nil
	})
	return result, err
}

func sortNewestFirst(orders []*order.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt().Equal(orders[j].CreatedAt()) {
			return orders[i].CreatedAt().After(orders[j].CreatedAt())
		}
		return orders[i].QueueNumber() > orders[j].QueueNumber()
	})
}
