package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hoteldesk/hotel-system/internal/api/handler"
	"github.com/hoteldesk/hotel-system/internal/api/middleware"
	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/ports"
	"github.com/hoteldesk/hotel-system/internal/core/service"
)

type fixedUserRepo struct {
	users map[string]*domain.User
}

func (r *fixedUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.users[user.Username] = user
	return user, nil
}

func (r *fixedUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fixedUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *fixedUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fixedUserRepo) List(ctx context.Context, filter ports.PageFilter) ([]*domain.User, int64, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *fixedUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }
func (r *fixedUserRepo) Delete(ctx context.Context, id string) error         { return nil }

// newAuthTestServer wires the real token service, auth service, middleware
// and error handler over an in-memory user store, mirroring how the router
// protects its admin routes.
func newAuthTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	repo := &fixedUserRepo{users: make(map[string]*domain.User)}
	for _, u := range []struct {
		username string
		role     domain.Role
	}{
		{"alice", domain.RoleAdmin},
		{"bob", domain.RoleGuest},
	} {
		hash, err := service.HashPassword(u.username + "-secret")
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		repo.users[u.username] = &domain.User{
			ID:           "id-" + u.username,
			Username:     u.username,
			Email:        u.username + "@example.com",
			PasswordHash: hash,
			Role:         u.role,
		}
	}

	tokens, err := service.NewTokenService("test-secret", "HS256", 15*time.Minute)
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}
	authService := service.NewAuthService(repo, tokens, zerolog.Nop())

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	authHandler := handler.NewAuthHandler(authService)
	auth := middleware.Auth(authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	e.POST("/token", authHandler.Token)
	e.GET("/users", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"caller": c.Get("username").(string)})
	}, auth, adminOnly)

	return e
}

func login(t *testing.T, e *echo.Echo, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthFlow_AdminReachesProtectedRoute(t *testing.T) {
	e := newAuthTestServer(t)

	rec := login(t, e, "alice", "alice-secret")
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	var tok struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &tok); err != nil {
		t.Fatalf("decode token response: %v", err)
	}
	if tok.TokenType != "bearer" {
		t.Fatalf("token_type = %q, want bearer", tok.TokenType)
	}

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok.AccessToken)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("protected route status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "alice") {
		t.Fatalf("expected caller identity in body, got %s", rec.Body.String())
	}
}

func TestAuthFlow_GuestForbiddenOnAdminRoute(t *testing.T) {
	e := newAuthTestServer(t)

	rec := login(t, e, "bob", "bob-secret")
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &tok); err != nil {
		t.Fatalf("decode token response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok.AccessToken)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestAuthFlow_WrongPasswordGetsChallenge(t *testing.T) {
	e := newAuthTestServer(t)

	rec := login(t, e, "alice", "not-her-password")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
		t.Fatalf("WWW-Authenticate = %q, want Bearer", got)
	}
}

func TestAuthFlow_MissingTokenRejected(t *testing.T) {
	e := newAuthTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
		t.Fatalf("WWW-Authenticate = %q, want Bearer", got)
	}
}

func TestAuthFlow_TamperedTokenRejected(t *testing.T) {
	e := newAuthTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
