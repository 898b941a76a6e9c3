package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// PaymentStatus tracks whether a booking has been paid for.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking ties a guest to a room for a date interval.
type Booking struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	GuestID       string        `json:"guest_id" bson:"guest_id"`
	RoomID        string        `json:"room_id" bson:"room_id"`
	CheckInDate   time.Time     `json:"check_in_date" bson:"check_in_date"`
	CheckOutDate  time.Time     `json:"check_out_date" bson:"check_out_date"`
	NumGuests     int           `json:"num_guests" bson:"num_guests"`
	TotalPrice    float64       `json:"total_price" bson:"total_price"`
	BookingStatus BookingStatus `json:"booking_status" bson:"booking_status"`
	PaymentStatus PaymentStatus `json:"payment_status" bson:"payment_status"`
	BookedAt      time.Time     `json:"booked_at" bson:"booked_at"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// ValidateStayDates enforces the booking interval invariant: the check-out
// date must be strictly after the check-in date. Same-day stays are not a
// thing the hotel sells.
func ValidateStayDates(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return ErrInvalidDateRange
	}
	return nil
}
