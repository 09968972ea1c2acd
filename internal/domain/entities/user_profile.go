package entities

import "time"

// UserProfile holds the editable profile fields kept alongside the hosted
// auth provider's user record.
//
// Storage model (PostgreSQL, table user_profiles):
//   - PK: user_id
type UserProfile struct {
	UserID      string    `json:"user_id" db:"user_id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	FullName    string    `json:"full_name" db:"full_name"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	Gender      string    `json:"gender" db:"gender"`
	Birthday    string    `json:"birthday" db:"birthday"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
