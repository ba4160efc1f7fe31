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

func newScheduleFixture(t *testing.T) (ScheduleService, string) {
	t.Helper()
	professionals := repository.NewMemoryProfessionalsRepository()
	professionalID, err := professionals.CreateProfessional(context.Background(), &domain.Professional{
		FullName: "Carla Mendes",
		Status:   "active",
	})
	require.NoError(t, err)

	svc := NewScheduleService(repository.NewMemorySchedulesRepository(), professionals, zap.NewNop())
	return svc, professionalID
}

func TestScheduleService_CreateAndList(t *testing.T) {
	svc, professionalID := newScheduleFixture(t)
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, ScheduleInput{
		ProfessionalID: professionalID, Weekday: 3, StartTime: "13:00", EndTime: "19:00",
	})
	require.NoError(t, err)
	_, err = svc.CreateSchedule(ctx, ScheduleInput{
		ProfessionalID: professionalID, Weekday: 1, StartTime: "07:00", EndTime: "13:00",
	})
	require.NoError(t, err)

	list, err := svc.ListSchedules(ctx, professionalID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// ordered by weekday, then start time
	assert.Equal(t, 1, list[0].Weekday)
	assert.Equal(t, 3, list[1].Weekday)
}

func TestScheduleService_CreateValidation(t *testing.T) {
	svc, professionalID := newScheduleFixture(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		input   ScheduleInput
		message string
	}{
		{"missing professional", ScheduleInput{Weekday: 1, StartTime: "08:00", EndTime: "12:00"}, "Profissional é obrigatório"},
		{"weekday too high", ScheduleInput{ProfessionalID: professionalID, Weekday: 7, StartTime: "08:00", EndTime: "12:00"}, "Dia da semana inválido"},
		{"weekday negative", ScheduleInput{ProfessionalID: professionalID, Weekday: -1, StartTime: "08:00", EndTime: "12:00"}, "Dia da semana inválido"},
		{"bad start time", ScheduleInput{ProfessionalID: professionalID, Weekday: 1, StartTime: "8h00", EndTime: "12:00"}, "Horário deve estar no formato HH:MM"},
		{"hour out of range", ScheduleInput{ProfessionalID: professionalID, Weekday: 1, StartTime: "24:00", EndTime: "12:00"}, "Horário deve estar no formato HH:MM"},
		{"end before start", ScheduleInput{ProfessionalID: professionalID, Weekday: 1, StartTime: "14:00", EndTime: "08:00"}, "Horário final deve ser depois do inicial"},
		{"end equals start", ScheduleInput{ProfessionalID: professionalID, Weekday: 1, StartTime: "08:00", EndTime: "08:00"}, "Horário final deve ser depois do inicial"},
		{"unknown professional", ScheduleInput{ProfessionalID: "missing", Weekday: 1, StartTime: "08:00", EndTime: "12:00"}, "Profissional não encontrado"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateSchedule(ctx, tc.input)
			assert.Equal(t, tc.message, validationMessage(t, err))
		})
	}
}
