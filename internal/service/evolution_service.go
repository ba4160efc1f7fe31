package service

import (
	"context"
	"errors"
	"fmt"

	"repouso-data/internal/domain"
	"repouso-data/internal/repository"

	"go.uber.org/zap"
)

// ResidentNameFallback shown when an evolution references a resident no
// longer in the directory. The dangling reference is never an error.
const ResidentNameFallback = "Residente não encontrado"

// EvolutionListItem listing row decorated with the resident's display
// name.
type EvolutionListItem struct {
	*domain.EvolutionRecord
	ResidentName string `json:"resident_name"`
}

// EvolutionService care-log listing and removal. Creation goes through
// the wizard, never through this service directly.
type EvolutionService interface {
	ListEvolutions(ctx context.Context, filters repository.EvolutionFilters) ([]*EvolutionListItem, error)
	GetEvolution(ctx context.Context, evolutionID string) (*EvolutionListItem, error)
	DeleteEvolution(ctx context.Context, evolutionID string) error
}

type evolutionService struct {
	evolutions repository.EvolutionsRepository
	residents  repository.ResidentsRepository
	logger     *zap.Logger
}

func NewEvolutionService(evolutions repository.EvolutionsRepository, residents repository.ResidentsRepository, logger *zap.Logger) EvolutionService {
	return &evolutionService{
		evolutions: evolutions,
		residents:  residents,
		logger:     logger,
	}
}

func (s *evolutionService) ListEvolutions(ctx context.Context, filters repository.EvolutionFilters) ([]*EvolutionListItem, error) {
	records, err := s.evolutions.ListEvolutions(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list evolutions: %w", err)
	}

	// resident names resolved once per distinct id
	names := map[string]string{}
	items := make([]*EvolutionListItem, 0, len(records))
	for _, rec := range records {
		name, ok := names[rec.ResidentID]
		if !ok {
			name = s.residentName(ctx, rec.ResidentID)
			names[rec.ResidentID] = name
		}
		items = append(items, &EvolutionListItem{EvolutionRecord: rec, ResidentName: name})
	}
	return items, nil
}

func (s *evolutionService) GetEvolution(ctx context.Context, evolutionID string) (*EvolutionListItem, error) {
	rec, err := s.evolutions.GetEvolution(ctx, evolutionID)
	if err != nil {
		return nil, err
	}
	return &EvolutionListItem{
		EvolutionRecord: rec,
		ResidentName:    s.residentName(ctx, rec.ResidentID),
	}, nil
}

func (s *evolutionService) DeleteEvolution(ctx context.Context, evolutionID string) error {
	if err := s.evolutions.DeleteEvolution(ctx, evolutionID); err != nil {
		return err
	}
	s.logger.Info("evolution deleted", zap.String("evolution_id", evolutionID))
	return nil
}

func (s *evolutionService) residentName(ctx context.Context, residentID string) string {
	resident, err := s.residents.GetResident(ctx, residentID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("resident lookup failed", zap.Error(err))
		}
		return ResidentNameFallback
	}
	return resident.FullName
}
