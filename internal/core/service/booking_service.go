package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// BookingService manages bookings and their cross-entity invariants.
type BookingService struct {
	repo   ports.BookingRepository
	guests ports.GuestRepository
	rooms  ports.RoomRepository
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, guests ports.GuestRepository, rooms ports.RoomRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, guests: guests, rooms: rooms, logger: logger}
}

func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if err := domain.ValidateStayDates(input.CheckInDate, input.CheckOutDate); err != nil {
		return nil, err
	}
	if _, err := s.guests.FindByID(ctx, input.GuestID); err != nil {
		return nil, err
	}
	if _, err := s.rooms.FindByID(ctx, input.RoomID); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		GuestID:       input.GuestID,
		RoomID:        input.RoomID,
		CheckInDate:   input.CheckInDate,
		CheckOutDate:  input.CheckOutDate,
		NumGuests:     input.NumGuests,
		TotalPrice:    input.TotalPrice,
		BookingStatus: input.BookingStatus,
		PaymentStatus: input.PaymentStatus,
		BookedAt:      time.Now().UTC(),
	}
	if booking.BookingStatus == "" {
		booking.BookingStatus = domain.BookingPending
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = domain.PaymentPending
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", created.ID).
		Str("guest_id", created.GuestID).
		Str("room_id", created.RoomID).
		Msg("booking created")
	return created, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, filter ports.ListBookingsFilter) ([]*domain.Booking, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

// Update applies a partial update. Supplying either stay date triggers a
// full re-check of the resulting (check-in, check-out) pair; an update
// touching neither date is not re-validated against itself.
func (s *BookingService) Update(ctx context.Context, id string, input ports.UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CheckInDate != nil || input.CheckOutDate != nil {
		checkIn := booking.CheckInDate
		checkOut := booking.CheckOutDate
		if input.CheckInDate != nil {
			checkIn = *input.CheckInDate
		}
		if input.CheckOutDate != nil {
			checkOut = *input.CheckOutDate
		}
		if err := domain.ValidateStayDates(checkIn, checkOut); err != nil {
			return nil, err
		}
		booking.CheckInDate = checkIn
		booking.CheckOutDate = checkOut
	}

	if input.GuestID != nil {
		if _, err := s.guests.FindByID(ctx, *input.GuestID); err != nil {
			return nil, err
		}
		booking.GuestID = *input.GuestID
	}
	if input.RoomID != nil {
		if _, err := s.rooms.FindByID(ctx, *input.RoomID); err != nil {
			return nil, err
		}
		booking.RoomID = *input.RoomID
	}
	if input.NumGuests != nil {
		booking.NumGuests = *input.NumGuests
	}
	if input.TotalPrice != nil {
		booking.TotalPrice = *input.TotalPrice
	}
	if input.BookingStatus != nil {
		booking.BookingStatus = *input.BookingStatus
	}
	if input.PaymentStatus != nil {
		booking.PaymentStatus = *input.PaymentStatus
	}

	touch(&booking.UpdatedAt)
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
