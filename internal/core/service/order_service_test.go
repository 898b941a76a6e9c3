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

type stubServiceRepo struct {
	services map[string]*domain.Service
}

func (r *stubServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	svc.ID = fmt.Sprintf("service-%d", len(r.services)+1)
	r.services[svc.ID] = svc
	return svc, nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	return svc, nil
}

func (r *stubServiceRepo) List(_ context.Context, _ ports.PageFilter) ([]*domain.Service, int64, error) {
	return nil, 0, nil
}

func (r *stubServiceRepo) Update(_ context.Context, svc *domain.Service) error {
	r.services[svc.ID] = svc
	return nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id string) error {
	delete(r.services, id)
	return nil
}

type stubOrderRepo struct {
	orders map[string]*domain.ServiceOrder
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.ServiceOrder) (*domain.ServiceOrder, error) {
	o.ID = fmt.Sprintf("order-%d", len(r.orders)+1)
	r.orders[o.ID] = o
	return o, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.ServiceOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) List(_ context.Context, _ ports.ListOrdersFilter) ([]*domain.ServiceOrder, int64, error) {
	return nil, 0, nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *domain.ServiceOrder) error {
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

type orderFixture struct {
	svc     *OrderService
	catalog *stubServiceRepo
	booking *domain.Booking
	spa     *domain.Service
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	catalog := &stubServiceRepo{services: map[string]*domain.Service{}}
	bookings := &stubBookingRepo{bookings: map[string]*domain.Booking{}}
	orders := &stubOrderRepo{orders: map[string]*domain.ServiceOrder{}}

	booking, _ := bookings.Create(context.Background(), &domain.Booking{
		GuestID:      "guest-1",
		RoomID:       "room-1",
		CheckInDate:  day(0),
		CheckOutDate: day(2),
		BookedAt:     time.Now().UTC(),
	})
	spa, _ := catalog.Create(context.Background(), &domain.Service{
		ServiceName: "Spa Session",
		Price:       100.00,
	})

	return orderFixture{
		svc:     NewOrderService(orders, catalog, bookings, zerolog.Nop()),
		catalog: catalog,
		booking: booking,
		spa:     spa,
	}
}

func TestOrderService_Create(t *testing.T) {
	fx := newOrderFixture(t)

	order, err := fx.svc.Create(context.Background(), ports.CreateOrderInput{
		BookingID:   fx.booking.ID,
		ServiceID:   fx.spa.ID,
		Quantity:    3,
		TotalAmount: 300.00,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("expected default status pending, got %q", order.Status)
	}
	if order.OrderDate.IsZero() {
		t.Fatalf("expected order date to be stamped")
	}
}

func TestOrderService_Create_AmountMismatch(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.svc.Create(context.Background(), ports.CreateOrderInput{
		BookingID:   fx.booking.ID,
		ServiceID:   fx.spa.ID,
		Quantity:    3,
		TotalAmount: 350.00,
	})
	var mismatch *domain.AmountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected AmountMismatchError, got %v", err)
	}
	if mismatch.Expected != 300.00 {
		t.Fatalf("expected recomputed total 300.00, got %v", mismatch.Expected)
	}
}

func TestOrderService_Create_MissingReferences(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.svc.Create(context.Background(), ports.CreateOrderInput{
		BookingID:   "no-such-booking",
		ServiceID:   fx.spa.ID,
		Quantity:    1,
		TotalAmount: 100.00,
	})
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}

	_, err = fx.svc.Create(context.Background(), ports.CreateOrderInput{
		BookingID:   fx.booking.ID,
		ServiceID:   "no-such-service",
		Quantity:    1,
		TotalAmount: 100.00,
	})
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestOrderService_Update_RechecksAmount(t *testing.T) {
	fx := newOrderFixture(t)

	order, err := fx.svc.Create(context.Background(), ports.CreateOrderInput{
		BookingID:   fx.booking.ID,
		ServiceID:   fx.spa.ID,
		Quantity:    2,
		TotalAmount: 200.00,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// A quantity change alone must fail: the stored total no longer
	// matches the new quantity.
	five := 5
	if _, err := fx.svc.Update(context.Background(), order.ID, ports.UpdateOrderInput{
		Quantity: &five,
	}); err == nil {
		t.Fatalf("expected amount mismatch when only quantity changes")
	}

	// Quantity and total updated together pass the recheck.
	total := 500.00
	updated, err := fx.svc.Update(context.Background(), order.ID, ports.UpdateOrderInput{
		Quantity:    &five,
		TotalAmount: &total,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Quantity != 5 || updated.TotalAmount != 500.00 {
		t.Fatalf("update not applied: qty=%d total=%v", updated.Quantity, updated.TotalAmount)
	}
}

func TestOrderService_Update_StatusOnlySkipsAmountCheck(t *testing.T) {
	fx := newOrderFixture(t)

	order, err := fx.svc.Create(context.Background(), ports.CreateOrderInput{
		BookingID:   fx.booking.ID,
		ServiceID:   fx.spa.ID,
		Quantity:    1,
		TotalAmount: 100.00,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Price drift after ordering must not block a status-only update.
	fx.catalog.services[fx.spa.ID].Price = 120.00

	status := domain.OrderCompleted
	updated, err := fx.svc.Update(context.Background(), order.ID, ports.UpdateOrderInput{
		Status: &status,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != domain.OrderCompleted {
		t.Fatalf("status not applied: %q", updated.Status)
	}
}
