package domain

import "time"

// Payment records money received against a booking. TransactionID is the
// optional reference from an external processor; when present it must be
// unique across all payments.
type Payment struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	BookingID     string    `json:"booking_id" bson:"booking_id"`
	Amount        float64   `json:"amount" bson:"amount"`
	PaymentMethod string    `json:"payment_method" bson:"payment_method"`
	PaymentDate   time.Time `json:"payment_date" bson:"payment_date"`
	TransactionID string    `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
}
