package service

import (
	"bytes"
	"context"
	"testing"

	"repouso-data/internal/domain"
	"repouso-data/internal/repository"
	"repouso-data/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestExportService_EvolutionsXLSX(t *testing.T) {
	evolutions := repository.NewMemoryEvolutionsRepository()
	residents := repository.NewMemoryResidentsRepository()
	ctx := context.Background()

	residentID, err := residents.CreateResident(ctx, &domain.Resident{FullName: "Maria Silva"})
	require.NoError(t, err)
	_, err = evolutions.CreateEvolution(ctx, &domain.EvolutionRecord{
		ResidentID: residentID,
		Date:       "2026-08-30",
		Time:       "14:30",
		AuthorName: "Ana Souza",
		Values: map[string]domain.FieldValue{
			"bloodPressure": domain.TextValue("120/80 mmHg"),
			"symptoms":      domain.MultiOptionValue("Febre", "Tosse"),
			"familyContact": domain.BoolValue(true),
			"memory":        domain.RatingValue(4),
		},
	})
	require.NoError(t, err)

	svc := NewExportService(
		NewEvolutionService(evolutions, residents, zap.NewNop()),
		residents,
		schema.DefaultCatalog(),
	)

	data, err := svc.EvolutionsXLSX(ctx, repository.EvolutionFilters{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Evoluções")
	require.NoError(t, err)
	// header + one row per filled field
	require.Len(t, rows, 5)
	assert.Equal(t, evolutionExportHeader, rows[0])

	// fields come out in catalog order: bloodPressure first
	assert.Equal(t, "120/80 mmHg", rows[1][5])
	assert.Equal(t, "Maria Silva", rows[1][2])
	assert.Equal(t, "Ana Souza", rows[1][3])

	var values []string
	for _, row := range rows[1:] {
		values = append(values, row[5])
	}
	assert.Contains(t, values, "Febre, Tosse")
	assert.Contains(t, values, "Sim")
	assert.Contains(t, values, "4/5")
}

func TestExportService_ResidentsXLSX(t *testing.T) {
	residents := repository.NewMemoryResidentsRepository()
	evolutions := repository.NewMemoryEvolutionsRepository()
	ctx := context.Background()

	_, err := residents.CreateResident(ctx, &domain.Resident{FullName: "Maria Silva", Room: "12A"})
	require.NoError(t, err)

	svc := NewExportService(
		NewEvolutionService(evolutions, residents, zap.NewNop()),
		residents,
		schema.DefaultCatalog(),
	)

	data, err := svc.ResidentsXLSX(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Residentes")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Maria Silva", rows[1][0])
	assert.Equal(t, "12A", rows[1][3])
	assert.Equal(t, "active", rows[1][4])
}
