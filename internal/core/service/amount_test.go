package service

import (
	"errors"
	"testing"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
)

func TestValidateOrderAmount(t *testing.T) {
	// Exact match.
	if err := ValidateOrderAmount(100.00, 3, 300.00); err != nil {
		t.Fatalf("exact amount rejected: %v", err)
	}
	// One cent off is inside the tolerance.
	if err := ValidateOrderAmount(100.00, 3, 300.01); err != nil {
		t.Fatalf("amount within tolerance rejected: %v", err)
	}
	if err := ValidateOrderAmount(100.00, 3, 299.99); err != nil {
		t.Fatalf("amount within tolerance rejected: %v", err)
	}
	// Beyond the tolerance.
	err := ValidateOrderAmount(100.00, 3, 301.00)
	if err == nil {
		t.Fatalf("expected mismatch for 301.00")
	}
	var mismatch *domain.AmountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected AmountMismatchError, got %T", err)
	}
	if mismatch.Expected != 300.00 {
		t.Fatalf("expected recomputed total 300.00, got %v", mismatch.Expected)
	}
}

func TestValidateOrderAmount_NoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 style binary drift must not produce false mismatches.
	if err := ValidateOrderAmount(0.10, 3, 0.30); err != nil {
		t.Fatalf("0.10 x 3 = 0.30 rejected: %v", err)
	}
	if err := ValidateOrderAmount(19.99, 7, 139.93); err != nil {
		t.Fatalf("19.99 x 7 = 139.93 rejected: %v", err)
	}
}
