package http

import (
	"time"

	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/dish"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"
	"canteen/internal/pkg/errs"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ItemRequest struct {
	DishName      string   `json:"dishName"`
	DishType      string   `json:"dishType"`
	UnitPrice     *float64 `json:"unitPrice"`
	Quantity      int      `json:"quantity"`
	EstimatedTime int      `json:"estimatedTime"`
	ItemNotes     string   `json:"itemNotes"`
}

type CreateOrderRequest struct {
	UserID string        `json:"userId"`
	Notes  string        `json:"notes"`
	Items  []ItemRequest `json:"items"`
}

type UpdateOrderRequest struct {
	Notes string        `json:"notes"`
	Items []ItemRequest `json:"items"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

type AddDishRequest struct {
	Name          string  `json:"name"`
	DishType      string  `json:"dishType"`
	Price         float64 `json:"price"`
	EstimatedTime int     `json:"estimatedTime"`
	Available     *bool   `json:"available"`
}

type UpdateDishRequest struct {
	DishType      string  `json:"dishType"`
	Price         float64 `json:"price"`
	EstimatedTime int     `json:"estimatedTime"`
	Available     *bool   `json:"available"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available"`
}

type SetCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type ItemResponse struct {
	DishName      string  `json:"dishName"`
	DishType      string  `json:"dishType"`
	UnitPrice     float64 `json:"unitPrice"`
	Quantity      int     `json:"quantity"`
	Subtotal      float64 `json:"subtotal"`
	EstimatedTime int     `json:"estimatedTime"`
	ItemNotes     string  `json:"itemNotes,omitempty"`
}

type OrderResponse struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"userId"`
	PickupCode         string         `json:"pickupCode"`
	OrderStatus        string         `json:"orderStatus"`
	StatusDisplayName  string         `json:"statusDisplayName"`
	NextStatuses       []string       `json:"nextStatuses"`
	QueueNumber        int            `json:"queueNumber"`
	Notes              string         `json:"notes,omitempty"`
	Items              []ItemResponse `json:"items"`
	TotalPrice         float64        `json:"totalPrice"`
	TotalEstimatedTime int            `json:"totalEstimatedTime"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

type QueuePositionResponse struct {
	HasActiveOrder bool   `json:"hasActiveOrder"`
	OrdersAhead    int    `json:"ordersAhead"`
	QueueNumber    int    `json:"queueNumber"`
	OrderStatus    string `json:"orderStatus,omitempty"`
}

type QueueStatisticsResponse struct {
	PendingCount    int     `json:"pendingCount"`
	ConfirmedCount  int     `json:"confirmedCount"`
	PreparingCount  int     `json:"preparingCount"`
	ReadyCount      int     `json:"readyCount"`
	TotalInQueue    int     `json:"totalInQueue"`
	AverageWaitTime float64 `json:"averageWaitTime"`
}

type DishResponse struct {
	Name          string  `json:"name"`
	DishType      string  `json:"dishType"`
	Price         float64 `json:"price"`
	EstimatedTime int     `json:"estimatedTime"`
	Available     bool    `json:"available"`
}

type CartLineResponse struct {
	DishName string `json:"dishName"`
	Quantity int    `json:"quantity"`
}

type CartResponse struct {
	UserID        string             `json:"userId"`
	Items         []CartLineResponse `json:"items"`
	TotalQuantity int                `json:"totalQuantity"`
}

func toItems(requests []ItemRequest) ([]order.Item, error) {
	items := make([]order.Item, 0, len(requests))
	for _, r := range requests {
		if r.UnitPrice == nil {
			return nil, errs.NewValueIsRequiredError("unit price")
		}
		price, err := kernel.MoneyFromFloat(*r.UnitPrice)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(r.DishName, r.DishType, price, r.Quantity, r.EstimatedTime, r.ItemNotes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{
			DishName:      item.DishName(),
			DishType:      item.DishType(),
			UnitPrice:     item.UnitPrice().Float64(),
			Quantity:      item.Quantity(),
			Subtotal:      item.Subtotal().Float64(),
			EstimatedTime: item.EstimatedMinutes(),
			ItemNotes:     item.Notes(),
		})
	}

	next := order.NextPossible(o.Status())
	nextNames := make([]string, 0, len(next))
	for _, s := range next {
		nextNames = append(nextNames, s.String())
	}

	return OrderResponse{
		ID:                 o.ID().String(),
		UserID:             o.UserID(),
		PickupCode:         o.PickupCode(),
		OrderStatus:        o.Status().String(),
		StatusDisplayName:  o.Status().DisplayName(),
		NextStatuses:       nextNames,
		QueueNumber:        o.QueueNumber(),
		Notes:              o.Notes(),
		Items:              items,
		TotalPrice:         o.TotalPrice().Float64(),
		TotalEstimatedTime: o.TotalEstimatedTime(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}

func toQueuePositionResponse(p services.QueuePosition) QueuePositionResponse {
	response := QueuePositionResponse{
		HasActiveOrder: p.HasActiveOrder,
		OrdersAhead:    p.OrdersAhead,
		QueueNumber:    p.QueueNumber,
	}
	if p.HasActiveOrder {
		response.OrderStatus = p.Status.String()
	}
	return response
}

func toQueueStatisticsResponse(s services.QueueStatistics) QueueStatisticsResponse {
	return QueueStatisticsResponse{
		PendingCount:    s.PendingCount,
		ConfirmedCount:  s.ConfirmedCount,
		PreparingCount:  s.PreparingCount,
		ReadyCount:      s.ReadyCount,
		TotalInQueue:    s.TotalInQueue,
		AverageWaitTime: s.AverageWaitTime,
	}
}

func toDishResponse(d *dish.Dish) DishResponse {
	return DishResponse{
		Name:          d.Name(),
		DishType:      d.DishType(),
		Price:         d.Price().Float64(),
		EstimatedTime: d.EstimatedMinutes(),
		Available:     d.IsAvailable(),
	}
}

func toCartResponse(c cart.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(c.Lines()))
	for _, l := range c.Lines() {
		lines = append(lines, CartLineResponse{DishName: l.DishName, Quantity: l.Quantity})
	}
	return CartResponse{
		UserID:        c.UserID(),
		Items:         lines,
		TotalQuantity: c.TotalQuantity(),
	}
}
