package domain

import "time"

// EvolutionRecord daily care-log entry (evolutions table).
// One row per submitted wizard session; Values is persisted as a single
// JSONB column keyed by category id.
type EvolutionRecord struct {
	EvolutionID string `db:"evolution_id"` // UUID, PRIMARY KEY

	ResidentID string `db:"resident_id"` // UUID, NOT NULL

	Date string `db:"date"` // DATE, stored as YYYY-MM-DD
	Time string `db:"time"` // VARCHAR(5), stored as HH:MM

	// Author identity captured from the active session at submission time
	AuthorID   string `db:"author_id"`
	AuthorName string `db:"author_name"`

	// Category id -> field value (JSONB)
	Values map[string]FieldValue `db:"values"`

	CreatedAt time.Time `db:"created_at"`
}
