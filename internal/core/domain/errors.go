package domain

import (
	"errors"
	"fmt"
)

// Authentication and authorization errors. All of them surface at the HTTP
// boundary as 401 (with a WWW-Authenticate challenge) except ErrForbidden,
// which maps to 403.
var (
	ErrBadCredentials  = errors.New("incorrect username or password")
	ErrInvalidToken    = errors.New("token is invalid")
	ErrTokenExpired    = errors.New("token has expired")
	ErrMalformedClaims = errors.New("token claims are malformed")
	ErrUnknownSubject  = errors.New("token subject no longer exists")
	ErrForbidden       = errors.New("insufficient role")
	ErrInvalidRole     = errors.New("invalid role")
)

// Validation errors (HTTP 400).
var (
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
)

// Not-found errors (HTTP 404).
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrGuestNotFound    = errors.New("guest not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrOrderNotFound    = errors.New("service order not found")
	ErrTaskNotFound     = errors.New("housekeeping task not found")
)

// Conflict errors (HTTP 409).
var (
	ErrUsernameExists       = errors.New("username already registered")
	ErrEmailExists          = errors.New("email already registered")
	ErrRoomNumberExists     = errors.New("room number already exists")
	ErrServiceNameExists    = errors.New("service name already exists")
	ErrDuplicateTransaction = errors.New("transaction already recorded")
)

// AmountMismatchError reports a service-order total that disagrees with
// unit price times quantity. Expected carries the recomputed total so the
// client can correct the request.
type AmountMismatchError struct {
	Expected float64
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("total amount mismatch: expected %.2f", e.Expected)
}
