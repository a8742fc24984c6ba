package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Candidate status values
const (
	CandidateStatusAvailable    = "available"
	CandidateStatusInterviewing = "interviewing"
	CandidateStatusPlaced       = "placed"
	CandidateStatusUnavailable  = "unavailable"
)

// IsValidCandidateStatus reports whether s is an allowed candidate status.
func IsValidCandidateStatus(s string) bool {
	switch s {
	case CandidateStatusAvailable, CandidateStatusInterviewing,
		CandidateStatusPlaced, CandidateStatusUnavailable:
		return true
	}
	return false
}

// Skills is an ordered list of skill names, stored as a JSONB column.
type Skills []string

// Value implements driver.Valuer for JSONB storage.
func (s Skills) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB columns.
func (s *Skills) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported source type for skills")
	}
}

// Contains reports whether the skill is present (exact match).
func (s Skills) Contains(skill string) bool {
	for _, v := range s {
		if v == skill {
			return true
		}
	}
	return false
}

// CandidateDB represents a candidate record in the database
type CandidateDB struct {
	ID         int64     `json:"id" db:"id"`                           // Primary key
	Name       string    `json:"name" db:"name"`                       // Full name
	Email      string    `json:"email" db:"email"`                     // Unique email
	Phone      string    `json:"phone" db:"phone"`                     // Phone number
	Location   string    `json:"location" db:"location"`               // Location
	Position   string    `json:"position" db:"position"`               // Desired position
	Experience string    `json:"experience" db:"experience"`           // Experience band, free text
	Education  string    `json:"education" db:"education"`             // Education level, free text
	Skills     Skills    `json:"skills" db:"skills"`                   // Skill list
	Salary     *string   `json:"salary,omitempty" db:"salary"`         // Expected salary, free text
	Status     string    `json:"status" db:"status"`                   // available | interviewing | placed | unavailable
	ResumeURL  *string   `json:"resume_url,omitempty" db:"resume_url"` // Optional resume link
	CreatedAt  time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}

// CandidateCreate carries the fields accepted when creating a candidate.
type CandidateCreate struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Location   string  `json:"location"`
	Position   string  `json:"position"`
	Experience string  `json:"experience"`
	Education  string  `json:"education"`
	Skills     Skills  `json:"skills"`
	Salary     *string `json:"salary,omitempty"`
	Status     string  `json:"status"`
	ResumeURL  *string `json:"resume_url,omitempty"`
}

// CandidatePatch carries a partial update for a candidate. Only non-nil fields are applied.
type CandidatePatch struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Location   *string `json:"location,omitempty"`
	Position   *string `json:"position,omitempty"`
	Experience *string `json:"experience,omitempty"`
	Education  *string `json:"education,omitempty"`
	Skills     *Skills `json:"skills,omitempty"`
	Salary     *string `json:"salary,omitempty"`
	Status     *string `json:"status,omitempty"`
	ResumeURL  *string `json:"resume_url,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p CandidatePatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Location == nil &&
		p.Position == nil && p.Experience == nil && p.Education == nil && p.Skills == nil &&
		p.Salary == nil && p.Status == nil && p.ResumeURL == nil
}
