package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

type stubGuestRepo struct {
	guests map[string]*domain.Guest
}

func (r *stubGuestRepo) Create(_ context.Context, g *domain.Guest) (*domain.Guest, error) {
	g.ID = fmt.Sprintf("guest-%d", len(r.guests)+1)
	r.guests[g.ID] = g
	return g, nil
}

func (r *stubGuestRepo) FindByID(_ context.Context, id string) (*domain.Guest, error) {
	g, ok := r.guests[id]
	if !ok {
		return nil, domain.ErrGuestNotFound
	}
	return g, nil
}

func (r *stubGuestRepo) FindByEmail(_ context.Context, email string) (*domain.Guest, error) {
	for _, g := range r.guests {
		if g.Email == email {
			return g, nil
		}
	}
	return nil, domain.ErrGuestNotFound
}

func (r *stubGuestRepo) List(_ context.Context, _ ports.PageFilter) ([]*domain.Guest, int64, error) {
	return nil, 0, nil
}

func (r *stubGuestRepo) Update(_ context.Context, g *domain.Guest) error {
	r.guests[g.ID] = g
	return nil
}

func (r *stubGuestRepo) Delete(_ context.Context, id string) error {
	delete(r.guests, id)
	return nil
}

type stubRoomRepo struct {
	rooms map[string]*domain.Room
}

func (r *stubRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	room.ID = fmt.Sprintf("room-%d", len(r.rooms)+1)
	r.rooms[room.ID] = room
	return room, nil
}

func (r *stubRoomRepo) FindByID(_ context.Context, id string) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

func (r *stubRoomRepo) FindByNumber(_ context.Context, number string) (*domain.Room, error) {
	for _, room := range r.rooms {
		if room.RoomNumber == number {
			return room, nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

func (r *stubRoomRepo) List(_ context.Context, _ ports.ListRoomsFilter) ([]*domain.Room, int64, error) {
	return nil, 0, nil
}

func (r *stubRoomRepo) Update(_ context.Context, room *domain.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *stubRoomRepo) Delete(_ context.Context, id string) error {
	delete(r.rooms, id)
	return nil
}

type stubBookingRepo struct {
	bookings map[string]*domain.Booking
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.ID = fmt.Sprintf("booking-%d", len(r.bookings)+1)
	r.bookings[b.ID] = b
	return b, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return b, nil
}

func (r *stubBookingRepo) List(_ context.Context, _ ports.ListBookingsFilter) ([]*domain.Booking, int64, error) {
	return nil, 0, nil
}

func (r *stubBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id string) error {
	delete(r.bookings, id)
	return nil
}

type bookingFixture struct {
	svc   *BookingService
	guest *domain.Guest
	room  *domain.Room
}

func newBookingFixture(t *testing.T) bookingFixture {
	t.Helper()
	guests := &stubGuestRepo{guests: map[string]*domain.Guest{}}
	rooms := &stubRoomRepo{rooms: map[string]*domain.Room{}}
	bookings := &stubBookingRepo{bookings: map[string]*domain.Booking{}}

	guest, _ := guests.Create(context.Background(), &domain.Guest{FirstName: "Ana", LastName: "Reyes", Email: "ana@guest.test"})
	room, _ := rooms.Create(context.Background(), &domain.Room{RoomNumber: "101", Status: domain.RoomAvailable})

	return bookingFixture{
		svc:   NewBookingService(bookings, guests, rooms, zerolog.Nop()),
		guest: guest,
		room:  room,
	}
}

func day(offset int) time.Time {
	return time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestBookingService_Create(t *testing.T) {
	fx := newBookingFixture(t)

	booking, err := fx.svc.Create(context.Background(), ports.CreateBookingInput{
		GuestID:      fx.guest.ID,
		RoomID:       fx.room.ID,
		CheckInDate:  day(0),
		CheckOutDate: day(3),
		NumGuests:    2,
		TotalPrice:   450.00,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if booking.BookingStatus != domain.BookingPending {
		t.Fatalf("expected default status pending, got %q", booking.BookingStatus)
	}
	if booking.PaymentStatus != domain.PaymentPending {
		t.Fatalf("expected default payment status pending, got %q", booking.PaymentStatus)
	}
}

func TestBookingService_Create_InvalidDates(t *testing.T) {
	fx := newBookingFixture(t)

	cases := []struct {
		name              string
		checkIn, checkOut time.Time
	}{
		{"check-out before check-in", day(3), day(0)},
		{"same instant", day(0), day(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.svc.Create(context.Background(), ports.CreateBookingInput{
				GuestID:      fx.guest.ID,
				RoomID:       fx.room.ID,
				CheckInDate:  tc.checkIn,
				CheckOutDate: tc.checkOut,
			})
			if !errors.Is(err, domain.ErrInvalidDateRange) {
				t.Fatalf("expected ErrInvalidDateRange, got %v", err)
			}
		})
	}
}

func TestBookingService_Create_MissingReferences(t *testing.T) {
	fx := newBookingFixture(t)

	_, err := fx.svc.Create(context.Background(), ports.CreateBookingInput{
		GuestID:      "no-such-guest",
		RoomID:       fx.room.ID,
		CheckInDate:  day(0),
		CheckOutDate: day(1),
	})
	if !errors.Is(err, domain.ErrGuestNotFound) {
		t.Fatalf("expected ErrGuestNotFound, got %v", err)
	}

	_, err = fx.svc.Create(context.Background(), ports.CreateBookingInput{
		GuestID:      fx.guest.ID,
		RoomID:       "no-such-room",
		CheckInDate:  day(0),
		CheckOutDate: day(1),
	})
	if !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestBookingService_Update_DatePair(t *testing.T) {
	fx := newBookingFixture(t)

	booking, err := fx.svc.Create(context.Background(), ports.CreateBookingInput{
		GuestID:      fx.guest.ID,
		RoomID:       fx.room.ID,
		CheckInDate:  day(0),
		CheckOutDate: day(3),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Moving only the check-out is validated against the stored check-in.
	badOut := day(-1)
	if _, err := fx.svc.Update(context.Background(), booking.ID, ports.UpdateBookingInput{
		CheckOutDate: &badOut,
	}); !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}

	// Moving both dates together past the old pair is fine.
	newIn, newOut := day(5), day(8)
	updated, err := fx.svc.Update(context.Background(), booking.ID, ports.UpdateBookingInput{
		CheckInDate:  &newIn,
		CheckOutDate: &newOut,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.CheckInDate.Equal(newIn) || !updated.CheckOutDate.Equal(newOut) {
		t.Fatalf("dates not applied: %v .. %v", updated.CheckInDate, updated.CheckOutDate)
	}
	if updated.UpdatedAt == nil {
		t.Fatalf("expected UpdatedAt to be set")
	}
}

func TestBookingService_Update_StatusOnly(t *testing.T) {
	fx := newBookingFixture(t)

	booking, err := fx.svc.Create(context.Background(), ports.CreateBookingInput{
		GuestID:      fx.guest.ID,
		RoomID:       fx.room.ID,
		CheckInDate:  day(0),
		CheckOutDate: day(2),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	status := domain.BookingCheckedIn
	updated, err := fx.svc.Update(context.Background(), booking.ID, ports.UpdateBookingInput{
		BookingStatus: &status,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.BookingStatus != domain.BookingCheckedIn {
		t.Fatalf("status not applied: %q", updated.BookingStatus)
	}
	// Untouched dates survive the partial update.
	if !updated.CheckInDate.Equal(day(0)) || !updated.CheckOutDate.Equal(day(2)) {
		t.Fatalf("dates changed by a status-only update")
	}
}

func TestBookingService_Update_NotFound(t *testing.T) {
	fx := newBookingFixture(t)

	if _, err := fx.svc.Update(context.Background(), "missing", ports.UpdateBookingInput{}); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
