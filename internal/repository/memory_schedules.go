package repository

import (
	"context"
	"sort"
	"sync"

	"repouso-data/internal/domain"

	"github.com/google/uuid"
)

// MemorySchedulesRepository in-memory work-schedule store.
type MemorySchedulesRepository struct {
	mu        sync.RWMutex
	schedules map[string]domain.WorkSchedule
}

func NewMemorySchedulesRepository() *MemorySchedulesRepository {
	return &MemorySchedulesRepository{schedules: map[string]domain.WorkSchedule{}}
}

var _ SchedulesRepository = (*MemorySchedulesRepository)(nil)

func (r *MemorySchedulesRepository) ListSchedules(_ context.Context, professionalID string) ([]*domain.WorkSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*domain.WorkSchedule
	for _, s := range r.schedules {
		if professionalID != "" && s.ProfessionalID != professionalID {
			continue
		}
		item := s
		items = append(items, &item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Weekday != items[j].Weekday {
			return items[i].Weekday < items[j].Weekday
		}
		return items[i].StartTime < items[j].StartTime
	})
	return items, nil
}

func (r *MemorySchedulesRepository) CreateSchedule(_ context.Context, schedule *domain.WorkSchedule) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	row := *schedule
	row.ScheduleID = id
	r.schedules[id] = row
	return id, nil
}

func (r *MemorySchedulesRepository) UpdateSchedule(_ context.Context, scheduleID string, schedule *domain.WorkSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.schedules[scheduleID]
	if !ok {
		return ErrNotFound
	}
	row := *schedule
	row.ScheduleID = scheduleID
	if row.ProfessionalID == "" {
		row.ProfessionalID = old.ProfessionalID
	}
	r.schedules[scheduleID] = row
	return nil
}

func (r *MemorySchedulesRepository) DeleteSchedule(_ context.Context, scheduleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.schedules[scheduleID]; !ok {
		return ErrNotFound
	}
	delete(r.schedules, scheduleID)
	return nil
}
