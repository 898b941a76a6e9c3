package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// PaymentService records payments against bookings. External transaction
// references are checked against the dedup guard so a replayed webhook or
// double-submitted form cannot record the same payment twice.
type PaymentService struct {
	repo     ports.PaymentRepository
	bookings ports.BookingRepository
	dedup    ports.TxnDedup
	logger   zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, bookings ports.BookingRepository, dedup ports.TxnDedup, logger zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, bookings: bookings, dedup: dedup, logger: logger}
}

func (s *PaymentService) Create(ctx context.Context, input ports.CreatePaymentInput) (*domain.Payment, error) {
	if _, err := s.bookings.FindByID(ctx, input.BookingID); err != nil {
		return nil, err
	}

	if input.TransactionID != "" {
		seen, err := s.dedup.Seen(ctx, input.TransactionID)
		if err != nil {
			return nil, err
		}
		if seen {
			return nil, domain.ErrDuplicateTransaction
		}
	}

	payment := &domain.Payment{
		BookingID:     input.BookingID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		PaymentDate:   time.Now().UTC(),
		TransactionID: input.TransactionID,
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	if input.TransactionID != "" {
		if err := s.dedup.Mark(ctx, input.TransactionID); err != nil {
			// The unique index on transaction_id still protects us; losing
			// the fast-path marker is only worth a warning.
			s.logger.Warn().Err(err).Str("transaction_id", input.TransactionID).Msg("failed to mark transaction as seen")
		}
	}

	s.logger.Info().
		Str("payment_id", created.ID).
		Str("booking_id", created.BookingID).
		Float64("amount", created.Amount).
		Msg("payment recorded")
	return created, nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (*domain.Payment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PaymentService) List(ctx context.Context, filter ports.ListPaymentsFilter) ([]*domain.Payment, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
