package ports

import (
	"context"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
)

// ServiceRepository defines persistence operations for the service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.Service, int64, error)
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, id string) error
}

type CatalogService interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Get(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.Service, int64, error)
	// Update replaces all mutable fields (full-document update).
	Update(ctx context.Context, id string, svc *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// ListOrdersFilter carries query parameters for listing service orders.
type ListOrdersFilter struct {
	BookingID string // optional: filter by booking
	Status    string // optional: filter by order status
	Page      int
	Limit     int
}

// ServiceOrderRepository defines persistence operations for service orders.
type ServiceOrderRepository interface {
	Create(ctx context.Context, order *domain.ServiceOrder) (*domain.ServiceOrder, error)
	FindByID(ctx context.Context, id string) (*domain.ServiceOrder, error)
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.ServiceOrder, int64, error)
	Update(ctx context.Context, order *domain.ServiceOrder) error
	Delete(ctx context.Context, id string) error
}

// CreateOrderInput carries all data needed to place a service order.
// TotalAmount is what the client believes the order costs; the service
// recomputes it from the catalog price and rejects disagreements.
type CreateOrderInput struct {
	BookingID   string
	ServiceID   string
	Quantity    int
	TotalAmount float64
	Status      domain.OrderStatus
}

// UpdateOrderInput carries a partial update; nil fields are unchanged.
type UpdateOrderInput struct {
	Quantity    *int
	TotalAmount *float64
	Status      *domain.OrderStatus
}

type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.ServiceOrder, error)
	Get(ctx context.Context, id string) (*domain.ServiceOrder, error)
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.ServiceOrder, int64, error)
	Update(ctx context.Context, id string, input UpdateOrderInput) (*domain.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}
