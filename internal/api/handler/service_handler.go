package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// ServiceHandler handles HTTP requests for the hotel service catalog.
type ServiceHandler struct {
	service ports.CatalogService
}

func NewServiceHandler(service ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{service: service}
}

type serviceRequest struct {
	ServiceName string  `json:"service_name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Description string  `json:"description"`
}

// Create adds a catalog entry.
//
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.service.Create(c.Request().Context(), &domain.Service{
		ServiceName: req.ServiceName,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// Get returns a catalog entry by id.
//
// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  map[string]string
// @Router       /services/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	svc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// List returns a page of catalog entries.
//
// @Summary      List services
// @Tags         services
// @Produce      json
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listResponse[domain.Service]
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	services, total, err := h.service.List(c.Request().Context(), pageFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[*domain.Service]{Items: services, Total: total})
}

// Update replaces all mutable fields of a catalog entry.
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Service id"
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      200   {object}  domain.Service
// @Failure      404   {object}  map[string]string
// @Router       /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.service.Update(c.Request().Context(), c.Param("id"), &domain.Service{
		ServiceName: req.ServiceName,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete removes a catalog entry.
//
// @Summary      Delete a service
// @Tags         services
// @Security     BearerAuth
// @Param        id  path  string  true  "Service id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
