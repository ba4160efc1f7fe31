package repository

import (
	"context"
	"testing"

	"repouso-data/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvolution(t *testing.T, repo *MemoryEvolutionsRepository, residentID, date, timeOfDay string) string {
	t.Helper()
	id, err := repo.CreateEvolution(context.Background(), &domain.EvolutionRecord{
		ResidentID: residentID,
		Date:       date,
		Time:       timeOfDay,
		AuthorID:   "user-1",
		AuthorName: "Ana Souza",
		Values: map[string]domain.FieldValue{
			"bloodPressure": domain.TextValue("120/80 mmHg"),
		},
	})
	require.NoError(t, err)
	return id
}

func TestMemoryEvolutions_ListSortsDateThenTimeDescending(t *testing.T) {
	repo := NewMemoryEvolutionsRepository()
	ctx := context.Background()

	seedEvolution(t, repo, "res-1", "2026-08-29", "14:00")
	seedEvolution(t, repo, "res-1", "2026-08-30", "08:00")
	seedEvolution(t, repo, "res-1", "2026-08-30", "20:00")
	seedEvolution(t, repo, "res-1", "2026-08-28", "23:59")

	list, err := repo.ListEvolutions(ctx, EvolutionFilters{})
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.Equal(t, "2026-08-30", list[0].Date)
	assert.Equal(t, "20:00", list[0].Time)
	assert.Equal(t, "2026-08-30", list[1].Date)
	assert.Equal(t, "08:00", list[1].Time)
	assert.Equal(t, "2026-08-29", list[2].Date)
	assert.Equal(t, "2026-08-28", list[3].Date)
}

func TestMemoryEvolutions_Filters(t *testing.T) {
	repo := NewMemoryEvolutionsRepository()
	ctx := context.Background()

	seedEvolution(t, repo, "res-1", "2026-08-30", "08:00")
	seedEvolution(t, repo, "res-2", "2026-08-30", "09:00")
	seedEvolution(t, repo, "res-1", "2026-08-29", "10:00")

	byResident, err := repo.ListEvolutions(ctx, EvolutionFilters{ResidentID: "res-1"})
	require.NoError(t, err)
	require.Len(t, byResident, 2)

	byDate, err := repo.ListEvolutions(ctx, EvolutionFilters{Date: "2026-08-30"})
	require.NoError(t, err)
	require.Len(t, byDate, 2)

	both, err := repo.ListEvolutions(ctx, EvolutionFilters{ResidentID: "res-1", Date: "2026-08-30"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "08:00", both[0].Time)
}

func TestMemoryEvolutions_GetReturnsCopy(t *testing.T) {
	repo := NewMemoryEvolutionsRepository()
	ctx := context.Background()

	id := seedEvolution(t, repo, "res-1", "2026-08-30", "08:00")

	rec, err := repo.GetEvolution(ctx, id)
	require.NoError(t, err)
	rec.Values["bloodPressure"] = domain.TextValue("tampered")

	again, err := repo.GetEvolution(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "120/80 mmHg", again.Values["bloodPressure"].Str)
}

func TestMemoryEvolutions_Delete(t *testing.T) {
	repo := NewMemoryEvolutionsRepository()
	ctx := context.Background()

	id := seedEvolution(t, repo, "res-1", "2026-08-30", "08:00")
	require.NoError(t, repo.DeleteEvolution(ctx, id))

	_, err := repo.GetEvolution(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.DeleteEvolution(ctx, id), ErrNotFound)
}
