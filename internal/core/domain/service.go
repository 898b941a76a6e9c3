package domain

import "time"

// Service is a purchasable hotel service (room service, laundry, spa, ...).
type Service struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	ServiceName string  `json:"service_name" bson:"service_name"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
}

// OrderStatus represents the lifecycle state of a service order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// ServiceOrder is a service purchased against a booking. TotalAmount is
// supplied by the client and validated against the service's unit price
// times quantity before the order is accepted.
type ServiceOrder struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	BookingID   string      `json:"booking_id" bson:"booking_id"`
	ServiceID   string      `json:"service_id" bson:"service_id"`
	Quantity    int         `json:"quantity" bson:"quantity"`
	OrderDate   time.Time   `json:"order_date" bson:"order_date"`
	Status      OrderStatus `json:"status" bson:"status"`
	TotalAmount float64     `json:"total_amount" bson:"total_amount"`
}
