package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hotel-system/internal/api/metrics"
	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type createBookingRequest struct {
	GuestID       string    `json:"guest_id" validate:"required"`
	RoomID        string    `json:"room_id" validate:"required"`
	CheckInDate   time.Time `json:"check_in_date" validate:"required"`
	CheckOutDate  time.Time `json:"check_out_date" validate:"required"`
	NumGuests     int       `json:"num_guests" validate:"required,gt=0"`
	TotalPrice    float64   `json:"total_price" validate:"gte=0"`
	BookingStatus string    `json:"booking_status" validate:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
	PaymentStatus string    `json:"payment_status" validate:"omitempty,oneof=pending paid refunded"`
}

type updateBookingRequest struct {
	GuestID       *string    `json:"guest_id"`
	RoomID        *string    `json:"room_id"`
	CheckInDate   *time.Time `json:"check_in_date"`
	CheckOutDate  *time.Time `json:"check_out_date"`
	NumGuests     *int       `json:"num_guests" validate:"omitempty,gt=0"`
	TotalPrice    *float64   `json:"total_price" validate:"omitempty,gte=0"`
	BookingStatus *string    `json:"booking_status" validate:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
	PaymentStatus *string    `json:"payment_status" validate:"omitempty,oneof=pending paid refunded"`
}

// Create books a room for a guest.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		GuestID:       req.GuestID,
		RoomID:        req.RoomID,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		NumGuests:     req.NumGuests,
		TotalPrice:    req.TotalPrice,
		BookingStatus: domain.BookingStatus(req.BookingStatus),
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, booking)
}

// Get returns a booking by id.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      404  {object}  map[string]string
// @Router       /bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	booking, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// List returns a page of bookings, optionally filtered.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        status    query     string  false  "Filter by booking status"
// @Param        guest_id  query     string  false  "Filter by guest"
// @Param        room_id   query     string  false  "Filter by room"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  listResponse[domain.Booking]
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	bookings, total, err := h.service.List(c.Request().Context(), ports.ListBookingsFilter{
		Status:  c.QueryParam("status"),
		GuestID: c.QueryParam("guest_id"),
		RoomID:  c.QueryParam("room_id"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[*domain.Booking]{Items: bookings, Total: total})
}

// Update applies a partial update to a booking.
//
// @Summary      Update a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Booking id"
// @Param        body  body      updateBookingRequest  true  "Fields to change"
// @Success      200   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /bookings/{id} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateBookingInput{
		GuestID:      req.GuestID,
		RoomID:       req.RoomID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		NumGuests:    req.NumGuests,
		TotalPrice:   req.TotalPrice,
	}
	if req.BookingStatus != nil {
		status := domain.BookingStatus(*req.BookingStatus)
		input.BookingStatus = &status
	}
	if req.PaymentStatus != nil {
		status := domain.PaymentStatus(*req.PaymentStatus)
		input.PaymentStatus = &status
	}

	booking, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Delete removes a booking.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
