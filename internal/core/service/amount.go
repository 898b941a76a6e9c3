package service

import (
	"math"

	"github.com/hoteldesk/hotel-system/internal/core/domain"
)

// toCents converts a currency amount to integer cents. Prices in this
// system carry at most two decimal places, so the conversion is exact.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ValidateOrderAmount checks that the claimed total matches unit price
// times quantity. The comparison runs in integer cents to avoid binary
// floating-point drift; a discrepancy of at most one cent is tolerated.
func ValidateOrderAmount(unitPrice float64, quantity int, totalAmount float64) error {
	expected := toCents(unitPrice) * int64(quantity)
	diff := expected - toCents(totalAmount)
	if diff < 0 {
		diff = -diff
	}
	if diff > 1 {
		return &domain.AmountMismatchError{Expected: float64(expected) / 100}
	}
	return nil
}
