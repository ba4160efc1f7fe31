package service

import (
	"context"

	"repouso-data/internal/domain"
	"repouso-data/internal/repository"

	"go.uber.org/zap"
)

// ProfessionalService staff and profession-catalog management.
type ProfessionalService interface {
	ListProfessionals(ctx context.Context, filters repository.ProfessionalFilters) ([]*domain.Professional, error)
	GetProfessional(ctx context.Context, professionalID string) (*domain.Professional, error)
	CreateProfessional(ctx context.Context, req ProfessionalInput) (string, error)
	UpdateProfessional(ctx context.Context, professionalID string, req ProfessionalInput) error
	DeleteProfessional(ctx context.Context, professionalID string) error

	ListProfessions(ctx context.Context) ([]*domain.Profession, error)
	CreateProfession(ctx context.Context, name string) (string, error)
	DeleteProfession(ctx context.Context, professionID string) error
}

// ProfessionalInput create/update payload.
type ProfessionalInput struct {
	FullName     string `json:"full_name"`
	ProfessionID string `json:"profession_id"`
	Registration string `json:"registration"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Status       string `json:"status"`
}

type professionalService struct {
	repo   repository.ProfessionalsRepository
	logger *zap.Logger
}

func NewProfessionalService(repo repository.ProfessionalsRepository, logger *zap.Logger) ProfessionalService {
	return &professionalService{repo: repo, logger: logger}
}

func (s *professionalService) ListProfessionals(ctx context.Context, filters repository.ProfessionalFilters) ([]*domain.Professional, error) {
	return s.repo.ListProfessionals(ctx, filters)
}

func (s *professionalService) GetProfessional(ctx context.Context, professionalID string) (*domain.Professional, error) {
	return s.repo.GetProfessional(ctx, professionalID)
}

func (s *professionalService) CreateProfessional(ctx context.Context, req ProfessionalInput) (string, error) {
	if req.FullName == "" {
		return "", &ErrValidation{Message: "Nome do profissional é obrigatório"}
	}
	id, err := s.repo.CreateProfessional(ctx, &domain.Professional{
		FullName:     req.FullName,
		ProfessionID: req.ProfessionID,
		Registration: req.Registration,
		Phone:        req.Phone,
		Email:        req.Email,
		Status:       req.Status,
	})
	if err != nil {
		return "", err
	}
	s.logger.Info("professional created", zap.String("professional_id", id))
	return id, nil
}

func (s *professionalService) UpdateProfessional(ctx context.Context, professionalID string, req ProfessionalInput) error {
	if req.FullName == "" {
		return &ErrValidation{Message: "Nome do profissional é obrigatório"}
	}
	status := req.Status
	if status == "" {
		status = "active"
	}
	return s.repo.UpdateProfessional(ctx, professionalID, &domain.Professional{
		FullName:     req.FullName,
		ProfessionID: req.ProfessionID,
		Registration: req.Registration,
		Phone:        req.Phone,
		Email:        req.Email,
		Status:       status,
	})
}

func (s *professionalService) DeleteProfessional(ctx context.Context, professionalID string) error {
	if err := s.repo.DeleteProfessional(ctx, professionalID); err != nil {
		return err
	}
	s.logger.Info("professional deleted", zap.String("professional_id", professionalID))
	return nil
}

func (s *professionalService) ListProfessions(ctx context.Context) ([]*domain.Profession, error) {
	return s.repo.ListProfessions(ctx)
}

func (s *professionalService) CreateProfession(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", &ErrValidation{Message: "Nome da profissão é obrigatório"}
	}
	return s.repo.CreateProfession(ctx, &domain.Profession{Name: name})
}

func (s *professionalService) DeleteProfession(ctx context.Context, professionID string) error {
	return s.repo.DeleteProfession(ctx, professionID)
}
