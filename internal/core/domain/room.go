package domain

import "time"

// RoomStatus represents the operational state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

// RoomType describes a category of rooms (e.g. Standard, Suite, Deluxe).
type RoomType struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	TypeName    string `json:"type_name" bson:"type_name"`
	Capacity    int    `json:"capacity" bson:"capacity"`
	BasePrice   int    `json:"base_price" bson:"base_price"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Room is a physical room in the hotel.
type Room struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	RoomNumber  string     `json:"room_number" bson:"room_number"`
	RoomTypeID  string     `json:"room_type_id" bson:"room_type_id"`
	Status      RoomStatus `json:"status" bson:"status"`
	Floor       int        `json:"floor" bson:"floor"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
