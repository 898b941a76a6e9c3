package ports

import (
	"context"
	"time"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
)

// ListTasksFilter carries query parameters for listing housekeeping tasks.
type ListTasksFilter struct {
	RoomID           string // optional: filter by room
	Status           string // optional: filter by task status
	AssignedToUserID string // optional: filter by assignee
	Page             int
	Limit            int
}

// HousekeepingRepository defines persistence operations for tasks.
type HousekeepingRepository interface {
	Create(ctx context.Context, task *domain.HousekeepingTask) (*domain.HousekeepingTask, error)
	FindByID(ctx context.Context, id string) (*domain.HousekeepingTask, error)
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.HousekeepingTask, int64, error)
	Update(ctx context.Context, task *domain.HousekeepingTask) error
	Delete(ctx context.Context, id string) error
}

// CreateTaskInput carries all data needed to open a housekeeping task.
type CreateTaskInput struct {
	RoomID           string
	AssignedToUserID string
	Status           domain.TaskStatus
	Priority         domain.TaskPriority
	DueDate          time.Time
	Notes            string
}

// UpdateTaskInput carries a partial update; nil fields are unchanged.
type UpdateTaskInput struct {
	RoomID           *string
	AssignedToUserID *string
	Status           *domain.TaskStatus
	Priority         *domain.TaskPriority
	DueDate          *time.Time
	Notes            *string
}

type HousekeepingService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.HousekeepingTask, error)
	Get(ctx context.Context, id string) (*domain.HousekeepingTask, error)
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.HousekeepingTask, int64, error)
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.HousekeepingTask, error)
	Delete(ctx context.Context, id string) error
}
