package repository

import (
	"context"
	"errors"

	"repouso-data/internal/domain"
)

// ErrNotFound the requested row does not exist. Callers decide whether
// a miss is fatal (delete of a missing record) or silent (dangling
// reference rendered as a fallback label).
var ErrNotFound = errors.New("record not found")

// ResidentsRepository resident aggregate data access: the resident row
// plus its emergency contacts.
type ResidentsRepository interface {
	GetResident(ctx context.Context, residentID string) (*domain.Resident, error)
	ListResidents(ctx context.Context, filters ResidentFilters) ([]*domain.Resident, error)
	CreateResident(ctx context.Context, resident *domain.Resident) (string, error)
	UpdateResident(ctx context.Context, residentID string, resident *domain.Resident) error
	DeleteResident(ctx context.Context, residentID string) error

	GetResidentContacts(ctx context.Context, residentID string) ([]*domain.EmergencyContact, error)
	CreateResidentContact(ctx context.Context, residentID string, contact *domain.EmergencyContact) (string, error)
	UpdateResidentContact(ctx context.Context, contactID string, contact *domain.EmergencyContact) error
	DeleteResidentContact(ctx context.Context, contactID string) error
}

// ResidentFilters conjunctive resident list filter.
type ResidentFilters struct {
	Status string // active/inactive, empty = all
	Search string // case-insensitive substring of full_name
}

// EvolutionsRepository evolution-record data access.
type EvolutionsRepository interface {
	CreateEvolution(ctx context.Context, rec *domain.EvolutionRecord) (string, error)
	GetEvolution(ctx context.Context, evolutionID string) (*domain.EvolutionRecord, error)
	// ListEvolutions applies the filters conjunctively and sorts
	// descending by date, then by time.
	ListEvolutions(ctx context.Context, filters EvolutionFilters) ([]*domain.EvolutionRecord, error)
	DeleteEvolution(ctx context.Context, evolutionID string) error
}

// EvolutionFilters conjunctive evolution list filter.
type EvolutionFilters struct {
	ResidentID string
	Date       string // YYYY-MM-DD
}

// ProfessionalsRepository staff and profession-catalog data access.
type ProfessionalsRepository interface {
	GetProfessional(ctx context.Context, professionalID string) (*domain.Professional, error)
	ListProfessionals(ctx context.Context, filters ProfessionalFilters) ([]*domain.Professional, error)
	CreateProfessional(ctx context.Context, professional *domain.Professional) (string, error)
	UpdateProfessional(ctx context.Context, professionalID string, professional *domain.Professional) error
	DeleteProfessional(ctx context.Context, professionalID string) error

	ListProfessions(ctx context.Context) ([]*domain.Profession, error)
	CreateProfession(ctx context.Context, profession *domain.Profession) (string, error)
	DeleteProfession(ctx context.Context, professionID string) error
}

// ProfessionalFilters conjunctive professional list filter.
type ProfessionalFilters struct {
	Status       string
	ProfessionID string
	Search       string
}

// SchedulesRepository weekly work-schedule data access.
type SchedulesRepository interface {
	ListSchedules(ctx context.Context, professionalID string) ([]*domain.WorkSchedule, error)
	CreateSchedule(ctx context.Context, schedule *domain.WorkSchedule) (string, error)
	UpdateSchedule(ctx context.Context, scheduleID string, schedule *domain.WorkSchedule) error
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

// UsersRepository console account data access.
type UsersRepository interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (string, error)
	UpdateUser(ctx context.Context, userID string, user *domain.User) error
	DeleteUser(ctx context.Context, userID string) error
}
