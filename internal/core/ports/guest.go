package ports

import (
	"context"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
)

// GuestRepository defines persistence operations for guest records.
type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	FindByID(ctx context.Context, id string) (*domain.Guest, error)
	FindByEmail(ctx context.Context, email string) (*domain.Guest, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.Guest, int64, error)
	Update(ctx context.Context, guest *domain.Guest) error
	Delete(ctx context.Context, id string) error
}

type GuestService interface {
	Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	Get(ctx context.Context, id string) (*domain.Guest, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.Guest, int64, error)
	// Update replaces all mutable fields (full-document update).
	Update(ctx context.Context, id string, guest *domain.Guest) (*domain.Guest, error)
	Delete(ctx context.Context, id string) error
}
