package models

// Stats holds dashboard counters for the three resource kinds.
type Stats struct {
	Users               int64 `json:"users" db:"users"`                               // Total users
	Companies           int64 `json:"companies" db:"companies"`                       // Total companies
	Candidates          int64 `json:"candidates" db:"candidates"`                     // Total candidates
	AvailableCandidates int64 `json:"available_candidates" db:"available_candidates"` // Candidates with status=available
}
