package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"repouso-data/internal/domain"

	"github.com/google/uuid"
)

// MemoryEvolutionsRepository in-memory evolution-record store.
type MemoryEvolutionsRepository struct {
	mu      sync.RWMutex
	records map[string]domain.EvolutionRecord
}

func NewMemoryEvolutionsRepository() *MemoryEvolutionsRepository {
	return &MemoryEvolutionsRepository{records: map[string]domain.EvolutionRecord{}}
}

var _ EvolutionsRepository = (*MemoryEvolutionsRepository)(nil)

func (r *MemoryEvolutionsRepository) CreateEvolution(_ context.Context, rec *domain.EvolutionRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	row := *rec
	row.EvolutionID = id
	row.CreatedAt = time.Now()
	row.Values = copyValues(rec.Values)
	r.records[id] = row
	return id, nil
}

func (r *MemoryEvolutionsRepository) GetEvolution(_ context.Context, evolutionID string) (*domain.EvolutionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.records[evolutionID]
	if !ok {
		return nil, ErrNotFound
	}
	row.Values = copyValues(row.Values)
	return &row, nil
}

func (r *MemoryEvolutionsRepository) ListEvolutions(_ context.Context, filters EvolutionFilters) ([]*domain.EvolutionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*domain.EvolutionRecord
	for _, rec := range r.records {
		if filters.ResidentID != "" && rec.ResidentID != filters.ResidentID {
			continue
		}
		if filters.Date != "" && rec.Date != filters.Date {
			continue
		}
		item := rec
		item.Values = copyValues(rec.Values)
		items = append(items, &item)
	}
	sortEvolutions(items)
	return items, nil
}

func (r *MemoryEvolutionsRepository) DeleteEvolution(_ context.Context, evolutionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[evolutionID]; !ok {
		return ErrNotFound
	}
	delete(r.records, evolutionID)
	return nil
}

// sortEvolutions newest first: date descending, then time descending.
func sortEvolutions(items []*domain.EvolutionRecord) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date > items[j].Date
		}
		return items[i].Time > items[j].Time
	})
}

func copyValues(values map[string]domain.FieldValue) map[string]domain.FieldValue {
	if values == nil {
		return nil
	}
	out := make(map[string]domain.FieldValue, len(values))
	for k, v := range values {
		if v.Kind == domain.KindMultiOption {
			v.Multi = append([]string(nil), v.Multi...)
		}
		out[k] = v
	}
	return out
}
