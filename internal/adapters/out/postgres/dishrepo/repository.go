// Package dishrepo stores the dish catalog in PostgreSQL.
package dishrepo

import (
	"context"
	"errors"
	"strings"

	"canteen/internal/core/domain/model/dish"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// DishDTO is a catalog row keyed by the dish name.
type DishDTO struct {
	Name             string `gorm:"size:255;primaryKey"`
	DishType         string `gorm:"size:64;not null"`
	PriceCents       int64  `gorm:"not null"`
	EstimatedMinutes int    `gorm:"not null"`
	Available        bool   `gorm:"not null"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

// GormCatalog implements ports.Catalog using GORM.
type GormCatalog struct {
	db *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

func (c *GormCatalog) Add(ctx context.Context, d *dish.Dish) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := DishDTO{
		Name:             d.Name(),
		DishType:         d.DishType(),
		PriceCents:       d.Price().Cents(),
		EstimatedMinutes: d.EstimatedMinutes(),
		Available:        d.IsAvailable(),
	}
	if err := c.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("dish name", err)
		}
		return err
	}
	return nil
}

// Update rewrites every column but the name.
func (c *GormCatalog) Update(ctx context.Context, d *dish.Dish) error {
	if err := d.Validate(); err != nil {
		return err
	}

	result := c.db.WithContext(ctx).
		Model(&DishDTO{}).
		Where("name = ?", d.Name()).
		Updates(map[string]any{
			"dish_type":         d.DishType(),
			"price_cents":       d.Price().Cents(),
			"estimated_minutes": d.EstimatedMinutes(),
			"available":         d.IsAvailable(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", d.Name())
	}
	return nil
}

func (c *GormCatalog) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	result := c.db.WithContext(ctx).Where("name = ?", name).Delete(&DishDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", name)
	}
	return nil
}

func (c *GormCatalog) GetByName(ctx context.Context, name string) (*dish.Dish, error) {
	var dto DishDTO
	if err := c.db.WithContext(ctx).First(&dto, "name = ?", strings.TrimSpace(name)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", name)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (c *GormCatalog) List(ctx context.Context) ([]*dish.Dish, error) {
	var dtos []DishDTO
	if err := c.db.WithContext(ctx).Order("name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	dishes := make([]*dish.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}
	return dish.NewDish(dto.Name, dto.DishType, price, dto.EstimatedMinutes, dto.Available)
}
