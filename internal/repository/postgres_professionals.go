package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"repouso-data/internal/domain"
)

// PostgresProfessionalsRepository staff and profession-catalog data
// access.
type PostgresProfessionalsRepository struct {
	db *sql.DB
}

func NewPostgresProfessionalsRepository(db *sql.DB) *PostgresProfessionalsRepository {
	return &PostgresProfessionalsRepository{db: db}
}

var _ ProfessionalsRepository = (*PostgresProfessionalsRepository)(nil)

const professionalColumns = `
	professional_id::text,
	full_name,
	COALESCE(profession_id::text, '') AS profession_id,
	COALESCE(registration, '') AS registration,
	COALESCE(phone, '') AS phone,
	COALESCE(email, '') AS email,
	status
`

func scanProfessional(row interface{ Scan(...any) error }) (*domain.Professional, error) {
	var p domain.Professional
	if err := row.Scan(
		&p.ProfessionalID,
		&p.FullName,
		&p.ProfessionID,
		&p.Registration,
		&p.Phone,
		&p.Email,
		&p.Status,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresProfessionalsRepository) GetProfessional(ctx context.Context, professionalID string) (*domain.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM professionals WHERE professional_id = $1`
	p, err := scanProfessional(r.db.QueryRowContext(ctx, query, professionalID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}
	return p, nil
}

func (r *PostgresProfessionalsRepository) ListProfessionals(ctx context.Context, filters ProfessionalFilters) ([]*domain.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM professionals`
	var conds []string
	var args []any
	if filters.Status != "" {
		args = append(args, filters.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filters.ProfessionID != "" {
		args = append(args, filters.ProfessionID)
		conds = append(conds, fmt.Sprintf("profession_id = $%d", len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		conds = append(conds, fmt.Sprintf("full_name ILIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY full_name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	defer rows.Close()

	var items []*domain.Professional
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan professional: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *PostgresProfessionalsRepository) CreateProfessional(ctx context.Context, professional *domain.Professional) (string, error) {
	status := professional.Status
	if status == "" {
		status = "active"
	}
	var id string
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO professionals (professional_id, full_name, profession_id, registration, phone, email, status)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		 RETURNING professional_id::text`,
		professional.FullName,
		nullIfEmpty(professional.ProfessionID),
		nullIfEmpty(professional.Registration),
		nullIfEmpty(professional.Phone),
		nullIfEmpty(professional.Email),
		status,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create professional: %w", err)
	}
	return id, nil
}

func (r *PostgresProfessionalsRepository) UpdateProfessional(ctx context.Context, professionalID string, professional *domain.Professional) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE professionals
		 SET full_name = $2,
		     profession_id = $3,
		     registration = $4,
		     phone = $5,
		     email = $6,
		     status = $7
		 WHERE professional_id = $1`,
		professionalID,
		professional.FullName,
		nullIfEmpty(professional.ProfessionID),
		nullIfEmpty(professional.Registration),
		nullIfEmpty(professional.Phone),
		nullIfEmpty(professional.Email),
		professional.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update professional: %w", err)
	}
	return requireRowAffected(result)
}

func (r *PostgresProfessionalsRepository) DeleteProfessional(ctx context.Context, professionalID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM work_schedules WHERE professional_id = $1`, professionalID); err != nil {
		return fmt.Errorf("failed to delete professional schedules: %w", err)
	}
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM professionals WHERE professional_id = $1`, professionalID)
	if err != nil {
		return fmt.Errorf("failed to delete professional: %w", err)
	}
	return requireRowAffected(result)
}

func (r *PostgresProfessionalsRepository) ListProfessions(ctx context.Context) ([]*domain.Profession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT profession_id::text, name FROM professions ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list professions: %w", err)
	}
	defer rows.Close()

	var items []*domain.Profession
	for rows.Next() {
		var p domain.Profession
		if err := rows.Scan(&p.ProfessionID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan profession: %w", err)
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

func (r *PostgresProfessionalsRepository) CreateProfession(ctx context.Context, profession *domain.Profession) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO professions (profession_id, name)
		 VALUES (gen_random_uuid(), $1)
		 RETURNING profession_id::text`,
		profession.Name,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create profession: %w", err)
	}
	return id, nil
}

func (r *PostgresProfessionalsRepository) DeleteProfession(ctx context.Context, professionID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM professions WHERE profession_id = $1`, professionID)
	if err != nil {
		return fmt.Errorf("failed to delete profession: %w", err)
	}
	return requireRowAffected(result)
}
