package domain

import "time"

// Resident resident record (residents table)
type Resident struct {
	ResidentID string `db:"resident_id"` // UUID, PRIMARY KEY

	FullName string `db:"full_name"` // VARCHAR(200), NOT NULL

	BirthDate     *time.Time `db:"birth_date"`     // DATE, nullable
	AdmissionDate *time.Time `db:"admission_date"` // DATE, nullable

	Room        string `db:"room"`         // VARCHAR(50), nullable
	HealthNotes string `db:"health_notes"` // TEXT, nullable

	Status string `db:"status"` // VARCHAR(20), NOT NULL, DEFAULT 'active' (active/inactive)
}

// EmergencyContact resident emergency contact (resident_contacts table).
// Child of the resident aggregate; edited through the resident screens.
type EmergencyContact struct {
	ContactID  string `db:"contact_id"`  // UUID, PRIMARY KEY
	ResidentID string `db:"resident_id"` // UUID, NOT NULL

	Name         string `db:"name"`         // VARCHAR(200), NOT NULL
	Relationship string `db:"relationship"` // VARCHAR(50), nullable (Filho/Cônjuge/Amigo/...)
	Phone        string `db:"phone"`        // VARCHAR(25), nullable
	Email        string `db:"email"`        // VARCHAR(255), nullable
}
