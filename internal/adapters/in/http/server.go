package http

import (
	"net/http"
	"strconv"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the HTTP API calls into.
type Handlers struct {
	// Command handlers
	CreateOrder  commands.CreateOrderCommandHandler
	UpdateOrder  commands.UpdateOrderCommandHandler
	DeleteOrder  commands.DeleteOrderCommandHandler
	ChangeStatus commands.ChangeOrderStatusCommandHandler
	AddDish      commands.AddDishCommandHandler
	UpdateDish   commands.UpdateDishCommandHandler
	SetDishAvail commands.SetDishAvailabilityCommandHandler
	DeleteDish   commands.DeleteDishCommandHandler
	ChangeCart   commands.ChangeCartCommandHandler
	Checkout     commands.CheckoutCartCommandHandler

	// Query handlers
	GetOrder      queries.GetOrderQueryHandler
	GetOrders     queries.GetOrdersQueryHandler
	GetUserOrders queries.GetUserOrdersQueryHandler
	GetQueue      queries.GetQueueQueryHandler
	GetPosition   queries.GetQueuePositionQueryHandler
	GetStatistics queries.GetQueueStatisticsQueryHandler
	ListDishes    queries.ListDishesQueryHandler
	GetDish       queries.GetDishQueryHandler
	GetCart       queries.GetCartQueryHandler
}

// Server maps the /api/v1 routes onto the application use cases. Handler
// errors are returned to echo untouched; ErrorHandler turns them into
// responses.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// Register mounts the API under /api/v1.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/pickup/:code", s.GetOrderByPickupCode)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PATCH("/orders/:id/status", s.ChangeStatus)
	api.POST("/orders/:id/:action", s.ApplyAction)

	api.GET("/queue", s.GetQueue)
	api.GET("/queue/statistics", s.GetQueueStatistics)

	api.GET("/users/:userId/orders", s.GetUserOrders)
	api.GET("/users/:userId/queue-position", s.GetQueuePosition)
	api.GET("/users/:userId/cart", s.GetCart)
	api.DELETE("/users/:userId/cart", s.ClearCart)
	api.PUT("/users/:userId/cart/items/:dishName", s.SetCartItem)
	api.DELETE("/users/:userId/cart/items/:dishName", s.RemoveCartItem)
	api.POST("/users/:userId/cart/checkout", s.Checkout)

	api.GET("/dishes", s.ListDishes)
	api.POST("/dishes", s.AddDish)
	api.GET("/dishes/:name", s.GetDish)
	api.PUT("/dishes/:name", s.UpdateDish)
	api.DELETE("/dishes/:name", s.DeleteDish)
	api.PATCH("/dishes/:name/availability", s.SetDishAvailability)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	items, err := toItems(req.Items)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(req.UserID, req.Notes, items)
	if err != nil {
		return err
	}

	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrders handles GET /api/v1/orders with an optional ?status= filter.
func (s *Server) GetOrders(c echo.Context) error {
	query := queries.NewGetAllOrdersQuery()
	if raw := c.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return err
		}
		if query, err = queries.NewGetOrdersByStatusQuery(status); err != nil {
			return err
		}
	}

	orders, err := s.h.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	return s.respondWithOrder(c, query)
}

// GetOrderByPickupCode handles GET /api/v1/orders/pickup/:code.
func (s *Server) GetOrderByPickupCode(c echo.Context) error {
	query, err := queries.NewGetOrderByPickupCodeQuery(c.Param("code"))
	if err != nil {
		return err
	}

	return s.respondWithOrder(c, query)
}

func (s *Server) respondWithOrder(c echo.Context, query queries.GetOrderQuery) error {
	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// UpdateOrder handles PUT /api/v1/orders/:id. Only PENDING orders accept it.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return err
	}

	var req UpdateOrderRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	items, err := toItems(req.Items)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.Notes, items)
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeStatus handles PATCH /api/v1/orders/:id/status with an explicit target status.
func (s *Server) ChangeStatus(c echo.Context) error {
	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	return s.changeStatus(c, target, req.Notes)
}

// ApplyAction handles POST /api/v1/orders/:id/{confirm,start,ready,complete,cancel}.
func (s *Server) ApplyAction(c echo.Context) error {
	target, err := commands.TargetForAction(c.Param("action"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	var req NotesRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	return s.changeStatus(c, target, req.Notes)
}

func (s *Server) changeStatus(c echo.Context, target order.Status, notes string) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, target, notes)
	if err != nil {
		return err
	}

	updated, err := s.h.ChangeStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(updated))
}

// GetQueue handles GET /api/v1/queue.
func (s *Server) GetQueue(c echo.Context) error {
	orders, err := s.h.GetQueue.Handle(c.Request().Context(), queries.NewGetQueueQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetQueueStatistics handles GET /api/v1/queue/statistics.
func (s *Server) GetQueueStatistics(c echo.Context) error {
	stats, err := s.h.GetStatistics.Handle(c.Request().Context(), queries.NewGetQueueStatisticsQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toQueueStatisticsResponse(stats))
}

// GetUserOrders handles GET /api/v1/users/:userId/orders?scope=all|active|history.
func (s *Server) GetUserOrders(c echo.Context) error {
	scope, err := queries.ParseUserOrdersScope(c.QueryParam("scope"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserOrdersQuery(c.Param("userId"), scope)
	if err != nil {
		return err
	}

	orders, err := s.h.GetUserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetQueuePosition handles GET /api/v1/users/:userId/queue-position.
func (s *Server) GetQueuePosition(c echo.Context) error {
	query, err := queries.NewGetQueuePositionQuery(c.Param("userId"))
	if err != nil {
		return err
	}

	position, err := s.h.GetPosition.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toQueuePositionResponse(position))
}

// ListDishes handles GET /api/v1/dishes?available=true&type=Soup.
func (s *Server) ListDishes(c echo.Context) error {
	availableOnly := false
	if raw := c.QueryParam("available"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "available must be a boolean")
		}
		availableOnly = parsed
	}

	query := queries.NewListDishesQuery(availableOnly)
	if dishType := c.QueryParam("type"); dishType != "" {
		var err error
		if query, err = queries.NewListDishesByTypeQuery(dishType, availableOnly); err != nil {
			return err
		}
	}

	dishes, err := s.h.ListDishes.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]DishResponse, 0, len(dishes))
	for _, d := range dishes {
		response = append(response, toDishResponse(d))
	}
	return c.JSON(http.StatusOK, response)
}

// AddDish handles POST /api/v1/dishes. Dishes are available unless the body says otherwise.
func (s *Server) AddDish(c echo.Context) error {
	var req AddDishRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	price, err := kernel.MoneyFromFloat(req.Price)
	if err != nil {
		return err
	}

	available := req.Available == nil || *req.Available
	cmd, err := commands.NewAddDishCommand(req.Name, req.DishType, price, req.EstimatedTime, available)
	if err != nil {
		return err
	}

	d, err := s.h.AddDish.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toDishResponse(d))
}

// GetDish handles GET /api/v1/dishes/:name.
func (s *Server) GetDish(c echo.Context) error {
	query, err := queries.NewGetDishQuery(c.Param("name"))
	if err != nil {
		return err
	}

	d, err := s.h.GetDish.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDishResponse(d))
}

// UpdateDish handles PUT /api/v1/dishes/:name. Availability is kept when the
// body leaves it out.
func (s *Server) UpdateDish(c echo.Context) error {
	var req UpdateDishRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	price, err := kernel.MoneyFromFloat(req.Price)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDishCommand(c.Param("name"), req.DishType, price, req.EstimatedTime, req.Available)
	if err != nil {
		return err
	}

	d, err := s.h.UpdateDish.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDishResponse(d))
}

// SetDishAvailability handles PATCH /api/v1/dishes/:name/availability.
func (s *Server) SetDishAvailability(c echo.Context) error {
	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Available == nil {
		return errs.NewValueIsRequiredError("available")
	}

	cmd, err := commands.NewSetDishAvailabilityCommand(c.Param("name"), *req.Available)
	if err != nil {
		return err
	}

	d, err := s.h.SetDishAvail.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDishResponse(d))
}

// DeleteDish handles DELETE /api/v1/dishes/:name.
func (s *Server) DeleteDish(c echo.Context) error {
	cmd, err := commands.NewDeleteDishCommand(c.Param("name"))
	if err != nil {
		return err
	}

	if err = s.h.DeleteDish.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/v1/users/:userId/cart.
func (s *Server) GetCart(c echo.Context) error {
	query, err := queries.NewGetCartQuery(c.Param("userId"))
	if err != nil {
		return err
	}

	current, err := s.h.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCartResponse(current))
}

// SetCartItem handles PUT /api/v1/users/:userId/cart/items/:dishName.
func (s *Server) SetCartItem(c echo.Context) error {
	var req SetCartItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewSetCartItemCommand(c.Param("userId"), c.Param("dishName"), req.Quantity)
	if err != nil {
		return err
	}

	return s.changeCart(c, cmd)
}

// RemoveCartItem handles DELETE /api/v1/users/:userId/cart/items/:dishName.
func (s *Server) RemoveCartItem(c echo.Context) error {
	cmd, err := commands.NewRemoveCartItemCommand(c.Param("userId"), c.Param("dishName"))
	if err != nil {
		return err
	}

	return s.changeCart(c, cmd)
}

// ClearCart handles DELETE /api/v1/users/:userId/cart.
func (s *Server) ClearCart(c echo.Context) error {
	cmd, err := commands.NewClearCartCommand(c.Param("userId"))
	if err != nil {
		return err
	}

	return s.changeCart(c, cmd)
}

func (s *Server) changeCart(c echo.Context, cmd commands.ChangeCartCommand) error {
	updated, err := s.h.ChangeCart.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCartResponse(updated))
}

// Checkout handles POST /api/v1/users/:userId/cart/checkout.
func (s *Server) Checkout(c echo.Context) error {
	var req NotesRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCheckoutCartCommand(c.Param("userId"), req.Notes)
	if err != nil {
		return err
	}

	created, err := s.h.Checkout.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(created))
}
