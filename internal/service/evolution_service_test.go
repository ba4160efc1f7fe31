package service

import (
	"context"
	"testing"

	"repouso-data/internal/domain"
	"repouso-data/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEvolutionService_ListDecoratesResidentName(t *testing.T) {
	evolutions := repository.NewMemoryEvolutionsRepository()
	residents := repository.NewMemoryResidentsRepository()
	svc := NewEvolutionService(evolutions, residents, zap.NewNop())
	ctx := context.Background()

	residentID, err := residents.CreateResident(ctx, &domain.Resident{FullName: "Maria Silva"})
	require.NoError(t, err)

	_, err = evolutions.CreateEvolution(ctx, &domain.EvolutionRecord{
		ResidentID: residentID, Date: "2026-08-30", Time: "14:30",
	})
	require.NoError(t, err)
	_, err = evolutions.CreateEvolution(ctx, &domain.EvolutionRecord{
		ResidentID: "gone-resident", Date: "2026-08-29", Time: "09:00",
	})
	require.NoError(t, err)

	items, err := svc.ListEvolutions(ctx, repository.EvolutionFilters{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Maria Silva", items[0].ResidentName)
	// dangling reference renders the fallback label, not an error
	assert.Equal(t, ResidentNameFallback, items[1].ResidentName)
}

func TestEvolutionService_GetAndDelete(t *testing.T) {
	evolutions := repository.NewMemoryEvolutionsRepository()
	residents := repository.NewMemoryResidentsRepository()
	svc := NewEvolutionService(evolutions, residents, zap.NewNop())
	ctx := context.Background()

	id, err := evolutions.CreateEvolution(ctx, &domain.EvolutionRecord{
		ResidentID: "res-1", Date: "2026-08-30", Time: "14:30",
		Values: map[string]domain.FieldValue{"mood": domain.OptionValue("Alegre")},
	})
	require.NoError(t, err)

	item, err := svc.GetEvolution(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.OptionValue("Alegre"), item.Values["mood"])

	require.NoError(t, svc.DeleteEvolution(ctx, id))
	_, err = svc.GetEvolution(ctx, id)
	assert.True(t, IsNotFound(err))
}
