package domain

// Profession profession catalog entry (professions table)
type Profession struct {
	ProfessionID string `db:"profession_id"` // UUID, PRIMARY KEY
	Name         string `db:"name"`          // VARCHAR(100), NOT NULL, UNIQUE
}

// Professional staff member (professionals table)
type Professional struct {
	ProfessionalID string `db:"professional_id"` // UUID, PRIMARY KEY

	FullName     string `db:"full_name"`     // VARCHAR(200), NOT NULL
	ProfessionID string `db:"profession_id"` // UUID, nullable (references professions)
	Registration string `db:"registration"`  // VARCHAR(50), nullable (COREN/CRM/...)
	Phone        string `db:"phone"`         // VARCHAR(25), nullable
	Email        string `db:"email"`         // VARCHAR(255), nullable

	Status string `db:"status"` // VARCHAR(20), NOT NULL, DEFAULT 'active' (active/inactive)
}

// WorkSchedule weekly work slot for a professional (work_schedules table)
type WorkSchedule struct {
	ScheduleID     string `db:"schedule_id"`     // UUID, PRIMARY KEY
	ProfessionalID string `db:"professional_id"` // UUID, NOT NULL

	Weekday   int    `db:"weekday"`    // SMALLINT, 0=Sunday .. 6=Saturday
	StartTime string `db:"start_time"` // VARCHAR(5), HH:MM
	EndTime   string `db:"end_time"`   // VARCHAR(5), HH:MM
}
