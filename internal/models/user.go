package models

import "time"

// User status values
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// IsValidUserStatus reports whether s is an allowed user status.
func IsValidUserStatus(s string) bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// UserDB represents a user record in the database.
// The password hash is never serialized to JSON.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                           // Primary key
	Name         string    `json:"name" db:"name"`                       // Display name
	Email        string    `json:"email" db:"email"`                     // Unique email
	PasswordHash string    `json:"-" db:"password"`                      // Hashed password, write-only
	Phone        *string   `json:"phone,omitempty" db:"phone"`           // Optional phone number
	Role         string    `json:"role" db:"role"`                       // Free-text role category
	Department   *string   `json:"department,omitempty" db:"department"` // Optional department
	JoinDate     *string   `json:"join_date,omitempty" db:"join_date"`   // Optional join date
	Status       string    `json:"status" db:"status"`                   // active | inactive
	CreatedAt    time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}

// UserCreate carries the fields accepted when creating a user.
// Password is plaintext here and must be hashed before it reaches a repository.
type UserCreate struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Phone      *string `json:"phone,omitempty"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
	JoinDate   *string `json:"join_date,omitempty"`
	Status     string  `json:"status"`
}

// UserPatch carries a partial update for a user. Only non-nil fields are applied.
// ID and timestamps are never caller-settable.
type UserPatch struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	JoinDate   *string `json:"join_date,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil && p.Phone == nil &&
		p.Role == nil && p.Department == nil && p.JoinDate == nil && p.Status == nil
}
