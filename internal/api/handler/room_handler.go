package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// RoomTypeHandler handles HTTP requests for room categories.
type RoomTypeHandler struct {
	service ports.RoomTypeService
}

func NewRoomTypeHandler(service ports.RoomTypeService) *RoomTypeHandler {
	return &RoomTypeHandler{service: service}
}

type roomTypeRequest struct {
	TypeName    string `json:"type_name" validate:"required"`
	Capacity    int    `json:"capacity" validate:"required,gt=0"`
	BasePrice   int    `json:"base_price" validate:"required,gte=0"`
	Description string `json:"description"`
}

// Create adds a room category.
//
// @Summary      Create a room type
// @Tags         room-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roomTypeRequest  true  "Room type details"
// @Success      201   {object}  domain.RoomType
// @Failure      400   {object}  map[string]string
// @Router       /room_types [post]
func (h *RoomTypeHandler) Create(c echo.Context) error {
	var req roomTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rt, err := h.service.Create(c.Request().Context(), &domain.RoomType{
		TypeName:    req.TypeName,
		Capacity:    req.Capacity,
		BasePrice:   req.BasePrice,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rt)
}

// Get returns a room type by id.
//
// @Summary      Get a room type
// @Tags         room-types
// @Produce      json
// @Param        id   path      string  true  "Room type id"
// @Success      200  {object}  domain.RoomType
// @Failure      404  {object}  map[string]string
// @Router       /room_types/{id} [get]
func (h *RoomTypeHandler) Get(c echo.Context) error {
	rt, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rt)
}

// List returns a page of room types.
//
// @Summary      List room types
// @Tags         room-types
// @Produce      json
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listResponse[domain.RoomType]
// @Router       /room_types [get]
func (h *RoomTypeHandler) List(c echo.Context) error {
	types, total, err := h.service.List(c.Request().Context(), pageFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[*domain.RoomType]{Items: types, Total: total})
}

// Update replaces all mutable fields of a room type.
//
// @Summary      Update a room type
// @Tags         room-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Room type id"
// @Param        body  body      roomTypeRequest  true  "Room type details"
// @Success      200   {object}  domain.RoomType
// @Failure      404   {object}  map[string]string
// @Router       /room_types/{id} [put]
func (h *RoomTypeHandler) Update(c echo.Context) error {
	var req roomTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rt, err := h.service.Update(c.Request().Context(), c.Param("id"), &domain.RoomType{
		TypeName:    req.TypeName,
		Capacity:    req.Capacity,
		BasePrice:   req.BasePrice,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rt)
}

// Delete removes a room type.
//
// @Summary      Delete a room type
// @Tags         room-types
// @Security     BearerAuth
// @Param        id  path  string  true  "Room type id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /room_types/{id} [delete]
func (h *RoomTypeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RoomHandler handles HTTP requests for physical rooms.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

type createRoomRequest struct {
	RoomNumber  string `json:"room_number" validate:"required"`
	RoomTypeID  string `json:"room_type_id" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=available occupied cleaning maintenance"`
	Floor       int    `json:"floor"`
	Description string `json:"description"`
}

type updateRoomRequest struct {
	RoomNumber  *string `json:"room_number"`
	RoomTypeID  *string `json:"room_type_id"`
	Status      *string `json:"status" validate:"omitempty,oneof=available occupied cleaning maintenance"`
	Floor       *int    `json:"floor"`
	Description *string `json:"description"`
}

// Create adds a room.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  domain.Room
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.Create(c.Request().Context(), &domain.Room{
		RoomNumber:  req.RoomNumber,
		RoomTypeID:  req.RoomTypeID,
		Status:      domain.RoomStatus(req.Status),
		Floor:       req.Floor,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

// Get returns a room by id.
//
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  map[string]string
// @Router       /rooms/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// List returns a page of rooms, optionally filtered by status or room type.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Param        status        query     string  false  "Filter by status"
// @Param        room_type_id  query     string  false  "Filter by room type"
// @Param        page          query     int     false  "Page number (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Success      200           {object}  listResponse[domain.Room]
// @Router       /rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	rooms, total, err := h.service.List(c.Request().Context(), ports.ListRoomsFilter{
		Status:     c.QueryParam("status"),
		RoomTypeID: c.QueryParam("room_type_id"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[*domain.Room]{Items: rooms, Total: total})
}

// Update applies a partial update to a room.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Room id"
// @Param        body  body      updateRoomRequest  true  "Fields to change"
// @Success      200   {object}  domain.Room
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /rooms/{id} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateRoomInput{
		RoomNumber:  req.RoomNumber,
		RoomTypeID:  req.RoomTypeID,
		Floor:       req.Floor,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.RoomStatus(*req.Status)
		input.Status = &status
	}

	room, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Delete removes a room.
//
// @Summary      Delete a room
// @Tags         rooms
// @Security     BearerAuth
// @Param        id  path  string  true  "Room id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
