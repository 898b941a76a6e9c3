package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// HousekeepingHandler handles HTTP requests for housekeeping tasks.
type HousekeepingHandler struct {
	service ports.HousekeepingService
}

func NewHousekeepingHandler(service ports.HousekeepingService) *HousekeepingHandler {
	return &HousekeepingHandler{service: service}
}

type createTaskRequest struct {
	RoomID           string    `json:"room_id" validate:"required"`
	AssignedToUserID string    `json:"assigned_to_user_id"`
	Status           string    `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority         string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate          time.Time `json:"due_date"`
	Notes            string    `json:"notes"`
}

type updateTaskRequest struct {
	RoomID           *string    `json:"room_id"`
	AssignedToUserID *string    `json:"assigned_to_user_id"`
	Status           *string    `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority         *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate          *time.Time `json:"due_date"`
	Notes            *string    `json:"notes"`
}

// Create opens a housekeeping task. An assignee, when given, must hold the
// housekeeping or admin role.
//
// @Summary      Create a housekeeping task
// @Tags         housekeeping
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.HousekeepingTask
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /housekeeping_tasks [post]
func (h *HousekeepingHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		RoomID:           req.RoomID,
		AssignedToUserID: req.AssignedToUserID,
		Status:           domain.TaskStatus(req.Status),
		Priority:         domain.TaskPriority(req.Priority),
		DueDate:          req.DueDate,
		Notes:            req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// Get returns a housekeeping task by id.
//
// @Summary      Get a housekeeping task
// @Tags         housekeeping
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  domain.HousekeepingTask
// @Failure      404  {object}  map[string]string
// @Router       /housekeeping_tasks/{id} [get]
func (h *HousekeepingHandler) Get(c echo.Context) error {
	task, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// List returns a page of housekeeping tasks, optionally filtered.
//
// @Summary      List housekeeping tasks
// @Tags         housekeeping
// @Produce      json
// @Security     BearerAuth
// @Param        room_id              query     string  false  "Filter by room"
// @Param        status               query     string  false  "Filter by task status"
// @Param        assigned_to_user_id  query     string  false  "Filter by assignee"
// @Param        page                 query     int     false  "Page number (1-based)"
// @Param        limit                query     int     false  "Page size (max 100)"
// @Success      200                  {object}  listResponse[domain.HousekeepingTask]
// @Router       /housekeeping_tasks [get]
func (h *HousekeepingHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	tasks, total, err := h.service.List(c.Request().Context(), ports.ListTasksFilter{
		RoomID:           c.QueryParam("room_id"),
		Status:           c.QueryParam("status"),
		AssignedToUserID: c.QueryParam("assigned_to_user_id"),
		Page:             page,
		Limit:            limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[*domain.HousekeepingTask]{Items: tasks, Total: total})
}

// Update applies a partial update to a housekeeping task.
//
// @Summary      Update a housekeeping task
// @Tags         housekeeping
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  domain.HousekeepingTask
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /housekeeping_tasks/{id} [put]
func (h *HousekeepingHandler) Update(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateTaskInput{
		RoomID:           req.RoomID,
		AssignedToUserID: req.AssignedToUserID,
		DueDate:          req.DueDate,
		Notes:            req.Notes,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	task, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete removes a housekeeping task.
//
// @Summary      Delete a housekeeping task
// @Tags         housekeeping
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /housekeeping_tasks/{id} [delete]
func (h *HousekeepingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
