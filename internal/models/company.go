package models

import "time"

// Company status values
const (
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
	CompanyStatusPending  = "pending"
)

// IsValidCompanyStatus reports whether s is an allowed company status.
func IsValidCompanyStatus(s string) bool {
	return s == CompanyStatusActive || s == CompanyStatusInactive || s == CompanyStatusPending
}

// CompanyDB represents a company record in the database
type CompanyDB struct {
	ID        int64     `json:"id" db:"id"`                       // Primary key
	Name      string    `json:"name" db:"name"`                   // Company name
	Industry  string    `json:"industry" db:"industry"`           // Industry sector
	Location  string    `json:"location" db:"location"`           // Location
	Website   *string   `json:"website,omitempty" db:"website"`   // Optional website URL
	Email     string    `json:"email" db:"email"`                 // Unique contact email
	Phone     string    `json:"phone" db:"phone"`                 // Contact phone
	Employees int       `json:"employees" db:"employees"`         // Headcount, non-negative
	Founded   *string   `json:"founded,omitempty" db:"founded"`   // Founding year, free text
	Status    string    `json:"status" db:"status"`               // active | inactive | pending
	CreatedAt time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}

// CompanyCreate carries the fields accepted when creating a company.
type CompanyCreate struct {
	Name      string  `json:"name"`
	Industry  string  `json:"industry"`
	Location  string  `json:"location"`
	Website   *string `json:"website,omitempty"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Employees int     `json:"employees"`
	Founded   *string `json:"founded,omitempty"`
	Status    string  `json:"status"`
}

// CompanyPatch carries a partial update for a company. Only non-nil fields are applied.
type CompanyPatch struct {
	Name      *string `json:"name,omitempty"`
	Industry  *string `json:"industry,omitempty"`
	Location  *string `json:"location,omitempty"`
	Website   *string `json:"website,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Employees *int    `json:"employees,omitempty"`
	Founded   *string `json:"founded,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p CompanyPatch) IsEmpty() bool {
	return p.Name == nil && p.Industry == nil && p.Location == nil && p.Website == nil &&
		p.Email == nil && p.Phone == nil && p.Employees == nil && p.Founded == nil && p.Status == nil
}
