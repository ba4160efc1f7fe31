package service

import (
	"context"
	"regexp"

	"repouso-data/internal/domain"
	"repouso-data/internal/repository"

	"go.uber.org/zap"
)

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ScheduleService weekly work-schedule management for professionals.
type ScheduleService interface {
	ListSchedules(ctx context.Context, professionalID string) ([]*domain.WorkSchedule, error)
	CreateSchedule(ctx context.Context, req ScheduleInput) (string, error)
	UpdateSchedule(ctx context.Context, scheduleID string, req ScheduleInput) error
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

// ScheduleInput create/update payload; times are HH:MM strings.
type ScheduleInput struct {
	ProfessionalID string `json:"professional_id"`
	Weekday        int    `json:"weekday"` // 0=Sunday .. 6=Saturday
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}

type scheduleService struct {
	repo          repository.SchedulesRepository
	professionals repository.ProfessionalsRepository
	logger        *zap.Logger
}

func NewScheduleService(repo repository.SchedulesRepository, professionals repository.ProfessionalsRepository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, professionals: professionals, logger: logger}
}

func (s *scheduleService) ListSchedules(ctx context.Context, professionalID string) ([]*domain.WorkSchedule, error) {
	return s.repo.ListSchedules(ctx, professionalID)
}

func (s *scheduleService) CreateSchedule(ctx context.Context, req ScheduleInput) (string, error) {
	if err := validateScheduleInput(req, true); err != nil {
		return "", err
	}
	if _, err := s.professionals.GetProfessional(ctx, req.ProfessionalID); err != nil {
		return "", &ErrValidation{Message: "Profissional não encontrado"}
	}
	id, err := s.repo.CreateSchedule(ctx, &domain.WorkSchedule{
		ProfessionalID: req.ProfessionalID,
		Weekday:        req.Weekday,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	})
	if err != nil {
		return "", err
	}
	s.logger.Info("schedule created",
		zap.String("schedule_id", id),
		zap.String("professional_id", req.ProfessionalID),
	)
	return id, nil
}

func (s *scheduleService) UpdateSchedule(ctx context.Context, scheduleID string, req ScheduleInput) error {
	if err := validateScheduleInput(req, false); err != nil {
		return err
	}
	return s.repo.UpdateSchedule(ctx, scheduleID, &domain.WorkSchedule{
		ProfessionalID: req.ProfessionalID,
		Weekday:        req.Weekday,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	})
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	return s.repo.DeleteSchedule(ctx, scheduleID)
}

func validateScheduleInput(req ScheduleInput, requireProfessional bool) error {
	if requireProfessional && req.ProfessionalID == "" {
		return &ErrValidation{Message: "Profissional é obrigatório"}
	}
	if req.Weekday < 0 || req.Weekday > 6 {
		return &ErrValidation{Message: "Dia da semana inválido"}
	}
	if !timeOfDayRe.MatchString(req.StartTime) || !timeOfDayRe.MatchString(req.EndTime) {
		return &ErrValidation{Message: "Horário deve estar no formato HH:MM"}
	}
	if req.EndTime <= req.StartTime {
		return &ErrValidation{Message: "Horário final deve ser depois do inicial"}
	}
	return nil
}
