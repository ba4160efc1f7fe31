package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"repouso-data/internal/domain"
)

// PostgresEvolutionsRepository evolution-record data access. Values is
// one JSONB column keyed by category id.
type PostgresEvolutionsRepository struct {
	db *sql.DB
}

func NewPostgresEvolutionsRepository(db *sql.DB) *PostgresEvolutionsRepository {
	return &PostgresEvolutionsRepository{db: db}
}

var _ EvolutionsRepository = (*PostgresEvolutionsRepository)(nil)

func (r *PostgresEvolutionsRepository) CreateEvolution(ctx context.Context, rec *domain.EvolutionRecord) (string, error) {
	payload, err := json.Marshal(rec.Values)
	if err != nil {
		return "", fmt.Errorf("failed to encode evolution values: %w", err)
	}

	var id string
	err = r.db.QueryRowContext(ctx,
		`INSERT INTO evolutions (evolution_id, resident_id, date, time, author_id, author_name, "values", created_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6::jsonb, NOW())
		 RETURNING evolution_id::text`,
		rec.ResidentID,
		rec.Date,
		rec.Time,
		rec.AuthorID,
		rec.AuthorName,
		string(payload),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create evolution: %w", err)
	}
	return id, nil
}

const evolutionColumns = `
	evolution_id::text,
	resident_id::text,
	to_char(date, 'YYYY-MM-DD') AS date,
	time,
	author_id::text,
	COALESCE(author_name, '') AS author_name,
	COALESCE("values", '{}'::jsonb)::text AS "values",
	created_at
`

func scanEvolution(row interface{ Scan(...any) error }) (*domain.EvolutionRecord, error) {
	var rec domain.EvolutionRecord
	var rawValues string
	if err := row.Scan(
		&rec.EvolutionID,
		&rec.ResidentID,
		&rec.Date,
		&rec.Time,
		&rec.AuthorID,
		&rec.AuthorName,
		&rawValues,
		&rec.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(rawValues), &rec.Values); err != nil {
		return nil, fmt.Errorf("failed to decode evolution values: %w", err)
	}
	return &rec, nil
}

func (r *PostgresEvolutionsRepository) GetEvolution(ctx context.Context, evolutionID string) (*domain.EvolutionRecord, error) {
	query := `SELECT ` + evolutionColumns + ` FROM evolutions WHERE evolution_id = $1`
	rec, err := scanEvolution(r.db.QueryRowContext(ctx, query, evolutionID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get evolution: %w", err)
	}
	return rec, nil
}

func (r *PostgresEvolutionsRepository) ListEvolutions(ctx context.Context, filters EvolutionFilters) ([]*domain.EvolutionRecord, error) {
	query := `SELECT ` + evolutionColumns + ` FROM evolutions`
	var conds []string
	var args []any
	if filters.ResidentID != "" {
		args = append(args, filters.ResidentID)
		conds = append(conds, fmt.Sprintf("resident_id = $%d", len(args)))
	}
	if filters.Date != "" {
		args = append(args, filters.Date)
		conds = append(conds, fmt.Sprintf("date = $%d::date", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC, time DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list evolutions: %w", err)
	}
	defer rows.Close()

	var items []*domain.EvolutionRecord
	for rows.Next() {
		rec, err := scanEvolution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evolution: %w", err)
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

func (r *PostgresEvolutionsRepository) DeleteEvolution(ctx context.Context, evolutionID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM evolutions WHERE evolution_id = $1`, evolutionID)
	if err != nil {
		return fmt.Errorf("failed to delete evolution: %w", err)
	}
	return requireRowAffected(result)
}
