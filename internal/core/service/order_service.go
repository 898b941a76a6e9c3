package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// CatalogService manages the purchasable service catalog.
type CatalogService struct {
	repo   ports.ServiceRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	created, err := s.repo.Create(ctx, svc)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("service_name", created.ServiceName).Msg("service created")
	return created, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) List(ctx context.Context, filter ports.PageFilter) ([]*domain.Service, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *CatalogService) Update(ctx context.Context, id string, svc *domain.Service) (*domain.Service, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.ServiceName = svc.ServiceName
	existing.Price = svc.Price
	existing.Description = svc.Description

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// OrderService manages service orders placed against bookings.
type OrderService struct {
	repo     ports.ServiceOrderRepository
	catalog  ports.ServiceRepository
	bookings ports.BookingRepository
	logger   zerolog.Logger
}

func NewOrderService(repo ports.ServiceOrderRepository, catalog ports.ServiceRepository, bookings ports.BookingRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, catalog: catalog, bookings: bookings, logger: logger}
}

// Create places a service order after checking that the booking and the
// catalog service exist and that the claimed total agrees with the unit
// price times quantity.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.ServiceOrder, error) {
	if _, err := s.bookings.FindByID(ctx, input.BookingID); err != nil {
		return nil, err
	}
	svc, err := s.catalog.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if err := ValidateOrderAmount(svc.Price, input.Quantity, input.TotalAmount); err != nil {
		return nil, err
	}

	order := &domain.ServiceOrder{
		BookingID:   input.BookingID,
		ServiceID:   input.ServiceID,
		Quantity:    input.Quantity,
		OrderDate:   time.Now().UTC(),
		Status:      input.Status,
		TotalAmount: input.TotalAmount,
	}
	if order.Status == "" {
		order.Status = domain.OrderPending
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", created.ID).
		Str("booking_id", created.BookingID).
		Str("service_id", created.ServiceID).
		Msg("service order placed")
	return created, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.ServiceOrder, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context, filter ports.ListOrdersFilter) ([]*domain.ServiceOrder, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

// Update applies a partial update. Changing the quantity or the total
// re-runs the amount check against the current catalog price.
func (s *OrderService) Update(ctx context.Context, id string, input ports.UpdateOrderInput) (*domain.ServiceOrder, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Quantity != nil || input.TotalAmount != nil {
		quantity := order.Quantity
		total := order.TotalAmount
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		if input.TotalAmount != nil {
			total = *input.TotalAmount
		}
		svc, err := s.catalog.FindByID(ctx, order.ServiceID)
		if err != nil {
			if errors.Is(err, domain.ErrServiceNotFound) {
				// Catalog entry removed after ordering; the stored order
				// stands but its amount can no longer be re-derived.
				return nil, domain.ErrServiceNotFound
			}
			return nil, err
		}
		if err := ValidateOrderAmount(svc.Price, quantity, total); err != nil {
			return nil, err
		}
		order.Quantity = quantity
		order.TotalAmount = total
	}
	if input.Status != nil {
		order.Status = *input.Status
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
