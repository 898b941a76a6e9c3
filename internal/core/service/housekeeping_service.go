package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
)

// HousekeepingService manages cleaning and maintenance tasks.
type HousekeepingService struct {
	repo   ports.HousekeepingRepository
	rooms  ports.RoomRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewHousekeepingService(repo ports.HousekeepingRepository, rooms ports.RoomRepository, users ports.UserRepository, logger zerolog.Logger) *HousekeepingService {
	return &HousekeepingService{repo: repo, rooms: rooms, users: users, logger: logger}
}

func (s *HousekeepingService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.HousekeepingTask, error) {
	if _, err := s.rooms.FindByID(ctx, input.RoomID); err != nil {
		return nil, err
	}
	if input.AssignedToUserID != "" {
		if err := s.checkAssignee(ctx, input.AssignedToUserID); err != nil {
			return nil, err
		}
	}

	task := &domain.HousekeepingTask{
		RoomID:           input.RoomID,
		AssignedToUserID: input.AssignedToUserID,
		Status:           input.Status,
		Priority:         input.Priority,
		DueDate:          input.DueDate,
		Notes:            input.Notes,
		CreatedAt:        time.Now().UTC(),
	}
	if task.Status == "" {
		task.Status = domain.TaskPending
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("task_id", created.ID).
		Str("room_id", created.RoomID).
		Str("priority", string(created.Priority)).
		Msg("housekeeping task created")
	return created, nil
}

func (s *HousekeepingService) Get(ctx context.Context, id string) (*domain.HousekeepingTask, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *HousekeepingService) List(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.HousekeepingTask, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *HousekeepingService) Update(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.HousekeepingTask, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.RoomID != nil {
		if _, err := s.rooms.FindByID(ctx, *input.RoomID); err != nil {
			return nil, err
		}
		task.RoomID = *input.RoomID
	}
	if input.AssignedToUserID != nil {
		if *input.AssignedToUserID != "" {
			if err := s.checkAssignee(ctx, *input.AssignedToUserID); err != nil {
				return nil, err
			}
		}
		task.AssignedToUserID = *input.AssignedToUserID
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.Notes != nil {
		task.Notes = *input.Notes
	}

	touch(&task.UpdatedAt)
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *HousekeepingService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// checkAssignee verifies the assignee exists and actually does
// housekeeping work (admins may self-assign).
func (s *HousekeepingService) checkAssignee(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleHousekeeping && user.Role != domain.RoleAdmin {
		return domain.ErrInvalidRole
	}
	return nil
}
