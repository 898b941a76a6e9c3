package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService("test-secret", "HS256", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return svc
}

func TestNewTokenService_Config(t *testing.T) {
	if _, err := NewTokenService("", "HS256", time.Minute); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewTokenService("secret", "RS256", time.Minute); err == nil {
		t.Fatalf("expected error for unsupported algorithm")
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected expiry in the future, got %v", claims.ExpiresAt)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := newTestTokenService(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "alice",
		"role": "admin",
		"exp":  time.Now().Add(-31 * time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Validate(signed); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Tampered(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flip one byte at a time across the token; every mutation must fail
	// validation cleanly, never panic.
	for i := 0; i < len(token); i++ {
		b := []byte(token)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		mutated := string(b)
		if mutated == token {
			continue
		}
		if _, err := svc.Validate(mutated); err == nil {
			t.Fatalf("tampered token at byte %d validated", i)
		}
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := other.SignedString([]byte("different-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Validate(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	svc := newTestTokenService(t)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := noSub.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Validate(signed); !errors.Is(err, domain.ErrMalformedClaims) {
		t.Fatalf("expected ErrMalformedClaims, got %v", err)
	}
}

func TestTokenService_RejectsForeignAlgorithm(t *testing.T) {
	svc := newTestTokenService(t)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := hs512.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Validate(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
	if strings.Count(signed, ".") != 2 {
		t.Fatalf("sanity: expected a three-segment JWT")
	}
}
