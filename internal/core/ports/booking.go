package ports

import (
	"context"
	"time"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
)

// ListBookingsFilter carries query parameters for listing bookings.
type ListBookingsFilter struct {
	Status  string // optional: filter by booking status
	GuestID string // optional: filter by guest
	RoomID  string // optional: filter by room
	Page    int
	Limit   int
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter ListBookingsFilter) ([]*domain.Booking, int64, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id string) error
}

// CreateBookingInput carries all data needed to create a booking.
type CreateBookingInput struct {
	GuestID       string
	RoomID        string
	CheckInDate   time.Time
	CheckOutDate  time.Time
	NumGuests     int
	TotalPrice    float64
	BookingStatus domain.BookingStatus
	PaymentStatus domain.PaymentStatus
}

// UpdateBookingInput carries a partial update; nil fields are unchanged.
// When either date is supplied, the resulting (check-in, check-out) pair is
// re-validated as a whole.
type UpdateBookingInput struct {
	GuestID       *string
	RoomID        *string
	CheckInDate   *time.Time
	CheckOutDate  *time.Time
	NumGuests     *int
	TotalPrice    *float64
	BookingStatus *domain.BookingStatus
	PaymentStatus *domain.PaymentStatus
}

type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter ListBookingsFilter) ([]*domain.Booking, int64, error)
	Update(ctx context.Context, id string, input UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}
