package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// GuestService manages guest records.
type GuestService struct {
	repo   ports.GuestRepository
	logger zerolog.Logger
}

func NewGuestService(repo ports.GuestRepository, logger zerolog.Logger) *GuestService {
	return &GuestService{repo: repo, logger: logger}
}

func (s *GuestService) Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	if _, err := s.repo.FindByEmail(ctx, guest.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrGuestNotFound) {
		return nil, err
	}

	guest.CreatedAt = time.Now().UTC()
	created, err := s.repo.Create(ctx, guest)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("guest_id", created.ID).Str("email", created.Email).Msg("guest created")
	return created, nil
}

func (s *GuestService) Get(ctx context.Context, id string) (*domain.Guest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GuestService) List(ctx context.Context, filter ports.PageFilter) ([]*domain.Guest, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *GuestService) Update(ctx context.Context, id string, guest *domain.Guest) (*domain.Guest, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest.Email != existing.Email {
		if _, err := s.repo.FindByEmail(ctx, guest.Email); err == nil {
			return nil, domain.ErrEmailExists
		} else if !errors.Is(err, domain.ErrGuestNotFound) {
			return nil, err
		}
	}

	existing.FirstName = guest.FirstName
	existing.LastName = guest.LastName
	existing.Email = guest.Email
	existing.PhoneNumber = guest.PhoneNumber
	existing.Address = guest.Address
	existing.IDDocumentType = guest.IDDocumentType
	existing.IDDocumentNumber = guest.IDDocumentNumber

	touch(&existing.UpdatedAt)
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *GuestService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
