package ports

import (
	"context"
	"time"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
)

// TokenClaims is the decoded, verified content of an access token.
type TokenClaims struct {
	Subject   string
	Role      domain.Role
	ExpiresAt time.Time
}

// TokenService issues and validates stateless bearer tokens. Tokens cannot
// be revoked before expiry; a leaked token stays valid until its exp claim.
type TokenService interface {
	Issue(username string, role domain.Role) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// AuthService is the authentication entry point used by the login handler
// and the bearer middleware.
type AuthService interface {
	// Login verifies the credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, error)
	// Authenticate validates the token and re-resolves its subject against
	// the user store, so a deleted account cannot keep using old tokens.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
