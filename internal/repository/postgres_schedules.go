package repository

import (
	"context"
	"database/sql"
	"fmt"

	"repouso-data/internal/domain"
)

// PostgresSchedulesRepository work-schedule data access.
type PostgresSchedulesRepository struct {
	db *sql.DB
}

func NewPostgresSchedulesRepository(db *sql.DB) *PostgresSchedulesRepository {
	return &PostgresSchedulesRepository{db: db}
}

var _ SchedulesRepository = (*PostgresSchedulesRepository)(nil)

func (r *PostgresSchedulesRepository) ListSchedules(ctx context.Context, professionalID string) ([]*domain.WorkSchedule, error) {
	query := `SELECT schedule_id::text, professional_id::text, weekday, start_time, end_time
	          FROM work_schedules`
	var args []any
	if professionalID != "" {
		query += ` WHERE professional_id = $1`
		args = append(args, professionalID)
	}
	query += ` ORDER BY weekday ASC, start_time ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var items []*domain.WorkSchedule
	for rows.Next() {
		var s domain.WorkSchedule
		if err := rows.Scan(&s.ScheduleID, &s.ProfessionalID, &s.Weekday, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}

func (r *PostgresSchedulesRepository) CreateSchedule(ctx context.Context, schedule *domain.WorkSchedule) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO work_schedules (schedule_id, professional_id, weekday, start_time, end_time)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4)
		 RETURNING schedule_id::text`,
		schedule.ProfessionalID,
		schedule.Weekday,
		schedule.StartTime,
		schedule.EndTime,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create schedule: %w", err)
	}
	return id, nil
}

func (r *PostgresSchedulesRepository) UpdateSchedule(ctx context.Context, scheduleID string, schedule *domain.WorkSchedule) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE work_schedules
		 SET weekday = $2,
		     start_time = $3,
		     end_time = $4
		 WHERE schedule_id = $1`,
		scheduleID,
		schedule.Weekday,
		schedule.StartTime,
		schedule.EndTime,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	return requireRowAffected(result)
}

func (r *PostgresSchedulesRepository) DeleteSchedule(ctx context.Context, scheduleID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM work_schedules WHERE schedule_id = $1`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return requireRowAffected(result)
}
