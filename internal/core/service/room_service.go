package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// RoomTypeService manages room categories.
type RoomTypeService struct {
	repo   ports.RoomTypeRepository
	logger zerolog.Logger
}

func NewRoomTypeService(repo ports.RoomTypeRepository, logger zerolog.Logger) *RoomTypeService {
	return &RoomTypeService{repo: repo, logger: logger}
}

func (s *RoomTypeService) Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	created, err := s.repo.Create(ctx, rt)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("type_name", created.TypeName).Msg("room type created")
	return created, nil
}

func (s *RoomTypeService) Get(ctx context.Context, id string) (*domain.RoomType, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomTypeService) List(ctx context.Context, filter ports.PageFilter) ([]*domain.RoomType, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *RoomTypeService) Update(ctx context.Context, id string, rt *domain.RoomType) (*domain.RoomType, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.TypeName = rt.TypeName
	existing.Capacity = rt.Capacity
	existing.BasePrice = rt.BasePrice
	existing.Description = rt.Description

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *RoomTypeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// RoomService manages physical rooms.
type RoomService struct {
	repo      ports.RoomRepository
	roomTypes ports.RoomTypeRepository
	logger    zerolog.Logger
}

func NewRoomService(repo ports.RoomRepository, roomTypes ports.RoomTypeRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, roomTypes: roomTypes, logger: logger}
}

func (s *RoomService) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	if _, err := s.repo.FindByNumber(ctx, room.RoomNumber); err == nil {
		return nil, domain.ErrRoomNumberExists
	} else if !errors.Is(err, domain.ErrRoomNotFound) {
		return nil, err
	}
	if _, err := s.roomTypes.FindByID(ctx, room.RoomTypeID); err != nil {
		return nil, err
	}
	if room.Status == "" {
		room.Status = domain.RoomAvailable
	}
	room.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, room)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("room_number", created.RoomNumber).Msg("room created")
	return created, nil
}

func (s *RoomService) Get(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomService) List(ctx context.Context, filter ports.ListRoomsFilter) ([]*domain.Room, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *RoomService) Update(ctx context.Context, id string, input ports.UpdateRoomInput) (*domain.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.RoomNumber != nil && *input.RoomNumber != room.RoomNumber {
		if _, err := s.repo.FindByNumber(ctx, *input.RoomNumber); err == nil {
			return nil, domain.ErrRoomNumberExists
		} else if !errors.Is(err, domain.ErrRoomNotFound) {
			return nil, err
		}
		room.RoomNumber = *input.RoomNumber
	}
	if input.RoomTypeID != nil {
		if _, err := s.roomTypes.FindByID(ctx, *input.RoomTypeID); err != nil {
			return nil, err
		}
		room.RoomTypeID = *input.RoomTypeID
	}
	if input.Status != nil {
		room.Status = *input.Status
	}
	if input.Floor != nil {
		room.Floor = *input.Floor
	}
	if input.Description != nil {
		room.Description = *input.Description
	}

	touch(&room.UpdatedAt)
	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
