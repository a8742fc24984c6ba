package models

import "time"

// Activity actions
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Activity entity types
const (
	EntityUsers      = "users"
	EntityCompanies  = "companies"
	EntityCandidates = "candidates"
)

// ActivityDB represents one immutable activity log entry.
// UserName is joined from the users table at read time and is not stored.
type ActivityDB struct {
	ID          int64     `json:"id" db:"id"`                       // Primary key
	UserID      int64     `json:"user_id" db:"user_id"`             // Acting user
	UserName    *string   `json:"user_name,omitempty" db:"user_name"` // Actor display name, joined at read
	Action      string    `json:"action" db:"action"`               // create | update | delete
	EntityType  string    `json:"entity_type" db:"entity_type"`     // users | companies | candidates
	EntityID    int64     `json:"entity_id" db:"entity_id"`         // Affected record id
	Description string    `json:"description" db:"description"`     // Human-readable summary
	CreatedAt   time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
}

// ActivityEvent is the message published to Kafka after a mutation commits.
type ActivityEvent struct {
	UserID      int64  `json:"user_id"`
	Action      string `json:"action"`
	EntityType  string `json:"entity_type"`
	EntityID    int64  `json:"entity_id"`
	Description string `json:"description"`
	Timestamp   int64  `json:"timestamp"`
}
