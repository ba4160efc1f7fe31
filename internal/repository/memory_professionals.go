package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"repouso-data/internal/domain"

	"github.com/google/uuid"
)

// MemoryProfessionalsRepository in-memory staff and profession store.
type MemoryProfessionalsRepository struct {
	mu            sync.RWMutex
	professionals map[string]domain.Professional
	professions   map[string]domain.Profession
}

func NewMemoryProfessionalsRepository() *MemoryProfessionalsRepository {
	return &MemoryProfessionalsRepository{
		professionals: map[string]domain.Professional{},
		professions:   map[string]domain.Profession{},
	}
}

var _ ProfessionalsRepository = (*MemoryProfessionalsRepository)(nil)

func (r *MemoryProfessionalsRepository) GetProfessional(_ context.Context, professionalID string) (*domain.Professional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.professionals[professionalID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryProfessionalsRepository) ListProfessionals(_ context.Context, filters ProfessionalFilters) ([]*domain.Professional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*domain.Professional
	for _, p := range r.professionals {
		if filters.Status != "" && p.Status != filters.Status {
			continue
		}
		if filters.ProfessionID != "" && p.ProfessionID != filters.ProfessionID {
			continue
		}
		if filters.Search != "" && !strings.Contains(strings.ToLower(p.FullName), strings.ToLower(filters.Search)) {
			continue
		}
		item := p
		items = append(items, &item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].FullName < items[j].FullName
	})
	return items, nil
}

func (r *MemoryProfessionalsRepository) CreateProfessional(_ context.Context, professional *domain.Professional) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	row := *professional
	row.ProfessionalID = id
	if row.Status == "" {
		row.Status = "active"
	}
	r.professionals[id] = row
	return id, nil
}

func (r *MemoryProfessionalsRepository) UpdateProfessional(_ context.Context, professionalID string, professional *domain.Professional) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.professionals[professionalID]; !ok {
		return ErrNotFound
	}
	row := *professional
	row.ProfessionalID = professionalID
	r.professionals[professionalID] = row
	return nil
}

func (r *MemoryProfessionalsRepository) DeleteProfessional(_ context.Context, professionalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.professionals[professionalID]; !ok {
		return ErrNotFound
	}
	delete(r.professionals, professionalID)
	return nil
}

func (r *MemoryProfessionalsRepository) ListProfessions(_ context.Context) ([]*domain.Profession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*domain.Profession
	for _, p := range r.professions {
		item := p
		items = append(items, &item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (r *MemoryProfessionalsRepository) CreateProfession(_ context.Context, profession *domain.Profession) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	row := *profession
	row.ProfessionID = id
	r.professions[id] = row
	return id, nil
}

func (r *MemoryProfessionalsRepository) DeleteProfession(_ context.Context, professionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.professions[professionID]; !ok {
		return ErrNotFound
	}
	delete(r.professions, professionID)
	return nil
}
