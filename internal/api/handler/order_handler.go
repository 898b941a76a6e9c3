package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hotel-system/internal/api/metrics"
	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for service orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type createOrderRequest struct {
	BookingID   string  `json:"booking_id" validate:"required"`
	ServiceID   string  `json:"service_id" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}

type updateOrderRequest struct {
	Quantity    *int     `json:"quantity" validate:"omitempty,gt=0"`
	TotalAmount *float64 `json:"total_amount" validate:"omitempty,gt=0"`
	Status      *string  `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}

// Create places a service order. The claimed total_amount must agree with
// the catalog price times quantity or the order is rejected with 400.
//
// @Summary      Place a service order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  domain.ServiceOrder
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /service_orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		BookingID:   req.BookingID,
		ServiceID:   req.ServiceID,
		Quantity:    req.Quantity,
		TotalAmount: req.TotalAmount,
		Status:      domain.OrderStatus(req.Status),
	})
	if err != nil {
		var mismatch *domain.AmountMismatchError
		if errors.As(err, &mismatch) {
			metrics.OrderAmountMismatchTotal.Inc()
		}
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}

// Get returns a service order by id.
//
// @Summary      Get a service order
// @Tags         service-orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.ServiceOrder
// @Failure      404  {object}  map[string]string
// @Router       /service_orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// List returns a page of service orders, optionally filtered.
//
// @Summary      List service orders
// @Tags         service-orders
// @Produce      json
// @Security     BearerAuth
// @Param        booking_id  query     string  false  "Filter by booking"
// @Param        status      query     string  false  "Filter by order status"
// @Param        page        query     int     false  "Page number (1-based)"
// @Param        limit       query     int     false  "Page size (max 100)"
// @Success      200         {object}  listResponse[domain.ServiceOrder]
// @Router       /service_orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	orders, total, err := h.service.List(c.Request().Context(), ports.ListOrdersFilter{
		BookingID: c.QueryParam("booking_id"),
		Status:    c.QueryParam("status"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[*domain.ServiceOrder]{Items: orders, Total: total})
}

// Update applies a partial update to a service order. A quantity or total
// change is re-validated against the current catalog price.
//
// @Summary      Update a service order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Order id"
// @Param        body  body      updateOrderRequest  true  "Fields to change"
// @Success      200   {object}  domain.ServiceOrder
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /service_orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateOrderInput{
		Quantity:    req.Quantity,
		TotalAmount: req.TotalAmount,
	}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		input.Status = &status
	}

	order, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Delete removes a service order.
//
// @Summary      Delete a service order
// @Tags         service-orders
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /service_orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
