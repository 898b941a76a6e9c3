package domain

import "time"

// Guest is a hotel guest record, distinct from a User account: guests are
// the people bookings are made for, whether or not they can log in.
type Guest struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	FirstName        string     `json:"first_name" bson:"first_name"`
	LastName         string     `json:"last_name" bson:"last_name"`
	Email            string     `json:"email" bson:"email"`
	PhoneNumber      string     `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Address          string     `json:"address,omitempty" bson:"address,omitempty"`
	IDDocumentType   string     `json:"id_document_type,omitempty" bson:"id_document_type,omitempty"`
	IDDocumentNumber string     `json:"id_document_number,omitempty" bson:"id_document_number,omitempty"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
