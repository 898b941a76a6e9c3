package ports

import (
	"context"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
)

// RoomTypeRepository defines persistence operations for room categories.
type RoomTypeRepository interface {
	Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error)
	FindByID(ctx context.Context, id string) (*domain.RoomType, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.RoomType, int64, error)
	Update(ctx context.Context, rt *domain.RoomType) error
	Delete(ctx context.Context, id string) error
}

type RoomTypeService interface {
	Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error)
	Get(ctx context.Context, id string) (*domain.RoomType, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.RoomType, int64, error)
	// Update replaces all mutable fields (full-document update).
	Update(ctx context.Context, id string, rt *domain.RoomType) (*domain.RoomType, error)
	Delete(ctx context.Context, id string) error
}

// ListRoomsFilter carries query parameters for listing rooms.
type ListRoomsFilter struct {
	Status     string // optional: filter by room status
	RoomTypeID string // optional: filter by room type
	Page       int
	Limit      int
}

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	FindByNumber(ctx context.Context, roomNumber string) (*domain.Room, error)
	List(ctx context.Context, filter ListRoomsFilter) ([]*domain.Room, int64, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
}

// UpdateRoomInput carries a partial room update; nil fields are unchanged.
type UpdateRoomInput struct {
	RoomNumber  *string
	RoomTypeID  *string
	Status      *domain.RoomStatus
	Floor       *int
	Description *string
}

type RoomService interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Get(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context, filter ListRoomsFilter) ([]*domain.Room, int64, error)
	Update(ctx context.Context, id string, input UpdateRoomInput) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
}
