package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"canteen/internal/core/domain/model/dish"
	"canteen/internal/pkg/errs"
)

// Catalog implements ports.Catalog with a map keyed by dish name. Dishes are
// copied in and out so callers never share state with the map.
type Catalog struct {
	mu     sync.RWMutex
	dishes map[string]dish.Dish
}

func NewCatalog() *Catalog {
	return &Catalog{dishes: make(map[string]dish.Dish)}
}

func (c *Catalog) Add(_ context.Context, d *dish.Dish) error {
	if err := d.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.dishes[d.Name()]; exists {
		return errs.NewConflictError("dish name")
	}
	c.dishes[d.Name()] = *d
	return nil
}

func (c *Catalog) Update(_ context.Context, d *dish.Dish) error {
	if err := d.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.dishes[d.Name()]; !exists {
		return errs.NewObjectNotFoundError("dish", d.Name())
	}
	c.dishes[d.Name()] = *d
	return nil
}

func (c *Catalog) Delete(_ context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	name = strings.TrimSpace(name)
	if _, exists := c.dishes[name]; !exists {
		return errs.NewObjectNotFoundError("dish", name)
	}
	delete(c.dishes, name)
	return nil
}

func (c *Catalog) GetByName(_ context.Context, name string) (*dish.Dish, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.dishes[strings.TrimSpace(name)]
	if !ok {
		return nil, errs.NewObjectNotFoundError("dish", name)
	}
	return &d, nil
}

func (c *Catalog) List(_ context.Context) ([]*dish.Dish, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*dish.Dish, 0, len(c.dishes))
	for _, d := range c.dishes {
		result = append(result, &d)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}
