package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"repouso-data/internal/domain"
	"repouso-data/internal/repository"

	"go.uber.org/zap"
)

// ErrValidation user-correctable input problem; the message is shown
// inline by the console.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string { return e.Message }

// ResidentService resident aggregate management: the resident record
// plus its emergency contacts.
type ResidentService interface {
	ListResidents(ctx context.Context, filters repository.ResidentFilters) ([]*domain.Resident, error)
	GetResident(ctx context.Context, residentID string) (*ResidentDetail, error)
	CreateResident(ctx context.Context, req ResidentInput) (string, error)
	UpdateResident(ctx context.Context, residentID string, req ResidentInput) error
	DeleteResident(ctx context.Context, residentID string) error

	CreateContact(ctx context.Context, residentID string, req ContactInput) (string, error)
	UpdateContact(ctx context.Context, contactID string, req ContactInput) error
	DeleteContact(ctx context.Context, contactID string) error
}

// ResidentDetail resident row with its contacts, as the edit screen
// consumes it.
type ResidentDetail struct {
	Resident *domain.Resident           `json:"resident"`
	Contacts []*domain.EmergencyContact `json:"contacts"`
}

// ResidentInput create/update payload; dates arrive as YYYY-MM-DD
// strings.
type ResidentInput struct {
	FullName      string `json:"full_name"`
	BirthDate     string `json:"birth_date"`
	AdmissionDate string `json:"admission_date"`
	Room          string `json:"room"`
	HealthNotes   string `json:"health_notes"`
	Status        string `json:"status"`
}

// ContactInput emergency-contact create/update payload.
type ContactInput struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

type residentService struct {
	repo   repository.ResidentsRepository
	logger *zap.Logger
}

func NewResidentService(repo repository.ResidentsRepository, logger *zap.Logger) ResidentService {
	return &residentService{repo: repo, logger: logger}
}

func (s *residentService) ListResidents(ctx context.Context, filters repository.ResidentFilters) ([]*domain.Resident, error) {
	return s.repo.ListResidents(ctx, filters)
}

func (s *residentService) GetResident(ctx context.Context, residentID string) (*ResidentDetail, error) {
	resident, err := s.repo.GetResident(ctx, residentID)
	if err != nil {
		return nil, err
	}
	contacts, err := s.repo.GetResidentContacts(ctx, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	return &ResidentDetail{Resident: resident, Contacts: contacts}, nil
}

func (s *residentService) CreateResident(ctx context.Context, req ResidentInput) (string, error) {
	resident, err := residentFromInput(req)
	if err != nil {
		return "", err
	}
	id, err := s.repo.CreateResident(ctx, resident)
	if err != nil {
		return "", err
	}
	s.logger.Info("resident created", zap.String("resident_id", id))
	return id, nil
}

func (s *residentService) UpdateResident(ctx context.Context, residentID string, req ResidentInput) error {
	resident, err := residentFromInput(req)
	if err != nil {
		return err
	}
	if resident.Status == "" {
		resident.Status = "active"
	}
	return s.repo.UpdateResident(ctx, residentID, resident)
}

func (s *residentService) DeleteResident(ctx context.Context, residentID string) error {
	if err := s.repo.DeleteResident(ctx, residentID); err != nil {
		return err
	}
	s.logger.Info("resident deleted", zap.String("resident_id", residentID))
	return nil
}

func (s *residentService) CreateContact(ctx context.Context, residentID string, req ContactInput) (string, error) {
	if req.Name == "" {
		return "", &ErrValidation{Message: "Nome do contato é obrigatório"}
	}
	return s.repo.CreateResidentContact(ctx, residentID, &domain.EmergencyContact{
		Name:         req.Name,
		Relationship: req.Relationship,
		Phone:        req.Phone,
		Email:        req.Email,
	})
}

func (s *residentService) UpdateContact(ctx context.Context, contactID string, req ContactInput) error {
	if req.Name == "" {
		return &ErrValidation{Message: "Nome do contato é obrigatório"}
	}
	return s.repo.UpdateResidentContact(ctx, contactID, &domain.EmergencyContact{
		Name:         req.Name,
		Relationship: req.Relationship,
		Phone:        req.Phone,
		Email:        req.Email,
	})
}

func (s *residentService) DeleteContact(ctx context.Context, contactID string) error {
	return s.repo.DeleteResidentContact(ctx, contactID)
}

func residentFromInput(req ResidentInput) (*domain.Resident, error) {
	if req.FullName == "" {
		return nil, &ErrValidation{Message: "Nome do residente é obrigatório"}
	}
	resident := &domain.Resident{
		FullName:    req.FullName,
		Room:        req.Room,
		HealthNotes: req.HealthNotes,
		Status:      req.Status,
	}
	var err error
	if resident.BirthDate, err = parseDate(req.BirthDate, "Data de nascimento inválida"); err != nil {
		return nil, err
	}
	if resident.AdmissionDate, err = parseDate(req.AdmissionDate, "Data de admissão inválida"); err != nil {
		return nil, err
	}
	return resident, nil
}

func parseDate(s, message string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, &ErrValidation{Message: message}
	}
	return &t, nil
}

// IsNotFound convenience for handlers mapping repo misses to 404s.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
