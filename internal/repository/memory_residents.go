package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"repouso-data/internal/domain"

	"github.com/google/uuid"
)

// MemoryResidentsRepository in-memory resident store, used when the DB
// is not configured and by unit tests. IDs are uuids; rows are stored
// by value so callers never share memory with the store.
type MemoryResidentsRepository struct {
	mu        sync.RWMutex
	residents map[string]domain.Resident
	contacts  map[string]domain.EmergencyContact
}

func NewMemoryResidentsRepository() *MemoryResidentsRepository {
	return &MemoryResidentsRepository{
		residents: map[string]domain.Resident{},
		contacts:  map[string]domain.EmergencyContact{},
	}
}

var _ ResidentsRepository = (*MemoryResidentsRepository)(nil)

func (r *MemoryResidentsRepository) GetResident(_ context.Context, residentID string) (*domain.Resident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.residents[residentID]
	if !ok {
		return nil, ErrNotFound
	}
	return &res, nil
}

func (r *MemoryResidentsRepository) ListResidents(_ context.Context, filters ResidentFilters) ([]*domain.Resident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*domain.Resident
	for _, res := range r.residents {
		if filters.Status != "" && res.Status != filters.Status {
			continue
		}
		if filters.Search != "" && !strings.Contains(strings.ToLower(res.FullName), strings.ToLower(filters.Search)) {
			continue
		}
		item := res
		items = append(items, &item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].FullName < items[j].FullName
	})
	return items, nil
}

func (r *MemoryResidentsRepository) CreateResident(_ context.Context, resident *domain.Resident) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	row := *resident
	row.ResidentID = id
	if row.Status == "" {
		row.Status = "active"
	}
	r.residents[id] = row
	return id, nil
}

func (r *MemoryResidentsRepository) UpdateResident(_ context.Context, residentID string, resident *domain.Resident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.residents[residentID]; !ok {
		return ErrNotFound
	}
	row := *resident
	row.ResidentID = residentID
	r.residents[residentID] = row
	return nil
}

func (r *MemoryResidentsRepository) DeleteResident(_ context.Context, residentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.residents[residentID]; !ok {
		return ErrNotFound
	}
	delete(r.residents, residentID)
	// contacts follow their resident
	for id, c := range r.contacts {
		if c.ResidentID == residentID {
			delete(r.contacts, id)
		}
	}
	return nil
}

func (r *MemoryResidentsRepository) GetResidentContacts(_ context.Context, residentID string) ([]*domain.EmergencyContact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*domain.EmergencyContact
	for _, c := range r.contacts {
		if c.ResidentID == residentID {
			item := c
			items = append(items, &item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (r *MemoryResidentsRepository) CreateResidentContact(_ context.Context, residentID string, contact *domain.EmergencyContact) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.residents[residentID]; !ok {
		return "", ErrNotFound
	}
	id := uuid.NewString()
	row := *contact
	row.ContactID = id
	row.ResidentID = residentID
	r.contacts[id] = row
	return id, nil
}

func (r *MemoryResidentsRepository) UpdateResidentContact(_ context.Context, contactID string, contact *domain.EmergencyContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.contacts[contactID]
	if !ok {
		return ErrNotFound
	}
	row := *contact
	row.ContactID = contactID
	row.ResidentID = old.ResidentID
	r.contacts[contactID] = row
	return nil
}

func (r *MemoryResidentsRepository) DeleteResidentContact(_ context.Context, contactID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[contactID]; !ok {
		return ErrNotFound
	}
	delete(r.contacts, contactID)
	return nil
}
