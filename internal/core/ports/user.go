package ports

import (
	"context"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
)

// PageFilter is the common pagination envelope for list queries.
type PageFilter struct {
	Page  int // 1-based
	Limit int // capped by the service layer
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// RegisterUserInput carries the fields for creating an account.
type RegisterUserInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
	Role        domain.Role
}

// UpdateUserInput carries a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Username    *string
	Email       *string
	Password    *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Address     *string
	Role        *domain.Role
}

type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
