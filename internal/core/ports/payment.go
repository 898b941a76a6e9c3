package ports

import (
	"context"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
)

// ListPaymentsFilter carries query parameters for listing payments.
type ListPaymentsFilter struct {
	BookingID string // optional: filter by booking
	Page      int
	Limit     int
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context, filter ListPaymentsFilter) ([]*domain.Payment, int64, error)
	Delete(ctx context.Context, id string) error
}

// TxnDedup guards against replayed external transaction references.
type TxnDedup interface {
	Seen(ctx context.Context, transactionID string) (bool, error)
	Mark(ctx context.Context, transactionID string) error
}

// CreatePaymentInput carries all data needed to record a payment.
type CreatePaymentInput struct {
	BookingID     string
	Amount        float64
	PaymentMethod string
	TransactionID string
}

type PaymentService interface {
	Create(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error)
	Get(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context, filter ListPaymentsFilter) ([]*domain.Payment, int64, error)
	Delete(ctx context.Context, id string) error
}
