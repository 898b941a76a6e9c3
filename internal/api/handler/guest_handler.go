package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// GuestHandler handles HTTP requests for guest records.
type GuestHandler struct {
	service ports.GuestService
}

func NewGuestHandler(service ports.GuestService) *GuestHandler {
	return &GuestHandler{service: service}
}

type guestRequest struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	PhoneNumber      string `json:"phone_number"`
	Address          string `json:"address"`
	IDDocumentType   string `json:"id_document_type"`
	IDDocumentNumber string `json:"id_document_number"`
}

func (r guestRequest) toDomain() *domain.Guest {
	return &domain.Guest{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		PhoneNumber:      r.PhoneNumber,
		Address:          r.Address,
		IDDocumentType:   r.IDDocumentType,
		IDDocumentNumber: r.IDDocumentNumber,
	}
}

// Create registers a guest.
//
// @Summary      Create a guest
// @Tags         guests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      guestRequest  true  "Guest details"
// @Success      201   {object}  domain.Guest
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /guests [post]
func (h *GuestHandler) Create(c echo.Context) error {
	var req guestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	guest, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, guest)
}

// Get returns a guest by id.
//
// @Summary      Get a guest
// @Tags         guests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Guest id"
// @Success      200  {object}  domain.Guest
// @Failure      404  {object}  map[string]string
// @Router       /guests/{id} [get]
func (h *GuestHandler) Get(c echo.Context) error {
	guest, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guest)
}

// List returns a page of guests.
//
// @Summary      List guests
// @Tags         guests
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listResponse[domain.Guest]
// @Router       /guests [get]
func (h *GuestHandler) List(c echo.Context) error {
	guests, total, err := h.service.List(c.Request().Context(), pageFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[*domain.Guest]{Items: guests, Total: total})
}

// Update replaces all mutable fields of a guest.
//
// @Summary      Update a guest
// @Tags         guests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Guest id"
// @Param        body  body      guestRequest  true  "Guest details"
// @Success      200   {object}  domain.Guest
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /guests/{id} [put]
func (h *GuestHandler) Update(c echo.Context) error {
	var req guestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	guest, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guest)
}

// Delete removes a guest record.
//
// @Summary      Delete a guest
// @Tags         guests
// @Security     BearerAuth
// @Param        id  path  string  true  "Guest id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /guests/{id} [delete]
func (h *GuestHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
