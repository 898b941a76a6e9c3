package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleReceptionist Role = "receptionist"
	RoleHousekeeping Role = "housekeeping"
	RoleGuest        Role = "guest"
)

// ParseRole converts a raw string into a Role, rejecting anything outside
// the canonical set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleReceptionist, RoleHousekeeping, RoleGuest:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q: %w", s, ErrInvalidRole)
}

// Valid reports whether the role belongs to the canonical set.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string { return string(r) }

// User models a staff member or registered guest account.
type User struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Username     string     `json:"username" bson:"username"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	FirstName    string     `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName     string     `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Role         Role       `json:"role" bson:"role"`
	PhoneNumber  string     `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Address      string     `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
