package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hotel-system/internal/api/metrics"
	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createPaymentRequest struct {
	BookingID     string  `json:"booking_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	TransactionID string  `json:"transaction_id"`
}

// Create records a payment against a booking. A transaction_id that was
// already recorded is rejected with 409.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaymentRequest  true  "Payment details"
// @Success      201   {object}  domain.Payment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.service.Create(c.Request().Context(), ports.CreatePaymentInput{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.WithLabelValues(payment.PaymentMethod).Inc()
	return c.JSON(http.StatusCreated, payment)
}

// Get returns a payment by id.
//
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  domain.Payment
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	payment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// List returns a page of payments, optionally filtered by booking.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        booking_id  query     string  false  "Filter by booking"
// @Param        page        query     int     false  "Page number (1-based)"
// @Param        limit       query     int     false  "Page size (max 100)"
// @Success      200         {object}  listResponse[domain.Payment]
// @Router       /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	payments, total, err := h.service.List(c.Request().Context(), ports.ListPaymentsFilter{
		BookingID: c.QueryParam("booking_id"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[*domain.Payment]{Items: payments, Total: total})
}

// Delete removes a payment record.
//
// @Summary      Delete a payment
// @Tags         payments
// @Security     BearerAuth
// @Param        id  path  string  true  "Payment id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
