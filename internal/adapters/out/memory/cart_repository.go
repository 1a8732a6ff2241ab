package memory

import (
	"context"
	"sync"

	"canteen/internal/core/domain/model/cart"
)

// CartRepository implements ports.CartRepository in process memory.
type CartRepository struct {
	mu    sync.Mutex
	carts map[string]map[string]int
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]map[string]int)}
}

func (r *CartRepository) Get(_ context.Context, userID string) (cart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]cart.Line, 0, len(r.carts[userID]))
	for name, qty := range r.carts[userID] {
		lines = append(lines, cart.Line{DishName: name, Quantity: qty})
	}
	return cart.NewCart(userID, lines)
}

func (r *CartRepository) SetItem(_ context.Context, userID, dishName string, quantity int) error {
	if err := cart.ValidateLine(dishName, quantity); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.carts[userID] == nil {
		r.carts[userID] = make(map[string]int)
	}
	r.carts[userID][dishName] = quantity
	return nil
}

func (r *CartRepository) RemoveItem(_ context.Context, userID, dishName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts[userID], dishName)
	return nil
}

func (r *CartRepository) Clear(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
