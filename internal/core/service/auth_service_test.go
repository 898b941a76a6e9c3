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

// stubUserRepo is an in-memory UserRepository keyed by id.
type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*domain.User{}}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[user.ID] = user
	return user, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, _ ports.PageFilter) ([]*domain.User, int64, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, username, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        username + "@hotel.test",
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func newTestAuthService(t *testing.T) (*AuthService, *stubUserRepo) {
	t.Helper()
	repo := newStubUserRepo()
	return NewAuthService(repo, newTestTokenService(t), zerolog.Nop()), repo
}

func TestAuthService_Login(t *testing.T) {
	auth, repo := newTestAuthService(t)
	seedUser(t, repo, "frontdesk", "open-sesame", domain.RoleReceptionist)

	token, err := auth.Login(context.Background(), "frontdesk", "open-sesame")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	user, err := auth.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Username != "frontdesk" || user.Role != domain.RoleReceptionist {
		t.Fatalf("unexpected identity: %q role %q", user.Username, user.Role)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	auth, repo := newTestAuthService(t)
	seedUser(t, repo, "frontdesk", "open-sesame", domain.RoleReceptionist)

	cases := []struct {
		name               string
		username, password string
	}{
		{"wrong password", "frontdesk", "wrong"},
		{"unknown user", "nobody", "open-sesame"},
		{"empty username", "", "open-sesame"},
		{"empty password", "frontdesk", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := auth.Login(context.Background(), tc.username, tc.password); !errors.Is(err, domain.ErrBadCredentials) {
				t.Fatalf("expected ErrBadCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_Authenticate_DeletedUser(t *testing.T) {
	auth, repo := newTestAuthService(t)
	user := seedUser(t, repo, "temp", "short-lived", domain.RoleGuest)

	token, err := auth.Login(context.Background(), "temp", "short-lived")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// The token stays cryptographically valid after deletion; the
	// per-request lookup must still reject it.
	if err := repo.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := auth.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}

func TestAuthService_Authenticate_Garbage(t *testing.T) {
	auth, _ := newTestAuthService(t)

	if _, err := auth.Authenticate(context.Background(), "not-a-jwt"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
