// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored in the orders table with its lines in order_items; every
// pickup code ever handed out is kept in pickup_codes, which outlives the order.
package orderrepo

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by its symbolic name so that the partial unique index on
// active queue numbers can be written against readable values.
type OrderDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID             string         `gorm:"size:128;not null;index"`
	PickupCode         string         `gorm:"size:6;not null;uniqueIndex"`
	Status             string         `gorm:"size:16;not null;index"`
	QueueNumber        int            `gorm:"not null"`
	Notes              string         `gorm:"type:text"`
	TotalPriceCents    int64          `gorm:"not null"`
	TotalEstimatedTime int            `gorm:"not null"`
	CreatedAt          time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt          time.Time      `gorm:"not null;autoUpdateTime:false"`
	Items              []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Position keeps the lines in the order the
// customer listed them.
type OrderItemDTO struct {
	ID               uint      `gorm:"primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Position         int       `gorm:"not null"`
	DishName         string    `gorm:"size:255;not null"`
	DishType         string    `gorm:"size:64;not null"`
	UnitPriceCents   int64     `gorm:"not null"`
	Quantity         int       `gorm:"not null"`
	EstimatedMinutes int       `gorm:"not null"`
	Notes            string    `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// PickupCodeDTO reserves a pickup code forever.
type PickupCodeDTO struct {
	Code      string    `gorm:"size:6;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (PickupCodeDTO) TableName() string {
	return "pickup_codes"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()

	return OrderDTO{
		ID:                 id,
		UserID:             aggregate.UserID(),
		PickupCode:         aggregate.PickupCode(),
		Status:             aggregate.Status().String(),
		QueueNumber:        aggregate.QueueNumber(),
		Notes:              aggregate.Notes(),
		TotalPriceCents:    aggregate.TotalPrice().Cents(),
		TotalEstimatedTime: aggregate.TotalEstimatedTime(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		Items:              itemsFromDomain(id, aggregate.Items()),
	}
}

func itemsFromDomain(orderID uuid.UUID, items []order.Item) []OrderItemDTO {
	dtos := make([]OrderItemDTO, 0, len(items))
	for idx, item := range items {
		dtos = append(dtos, OrderItemDTO{
			OrderID:          orderID,
			Position:         idx,
			DishName:         item.DishName(),
			DishType:         item.DishType(),
			UnitPriceCents:   item.UnitPrice().Cents(),
			Quantity:         item.Quantity(),
			EstimatedMinutes: item.EstimatedMinutes(),
			Notes:            item.Notes(),
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate through RestoreOrder. Totals are recomputed
// from the lines, so the stored totals only serve reporting queries.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(
			itemDTO.DishName,
			itemDTO.DishType,
			price,
			itemDTO.Quantity,
			itemDTO.EstimatedMinutes,
			itemDTO.Notes,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:          id,
		UserID:      dto.UserID,
		PickupCode:  dto.PickupCode,
		Status:      status,
		QueueNumber: dto.QueueNumber,
		Notes:       dto.Notes,
		Items:       items,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}
