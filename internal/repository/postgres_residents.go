package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"repouso-data/internal/domain"
)

// PostgresResidentsRepository resident data access against the hosted
// Postgres tables.
type PostgresResidentsRepository struct {
	db *sql.DB
}

func NewPostgresResidentsRepository(db *sql.DB) *PostgresResidentsRepository {
	return &PostgresResidentsRepository{db: db}
}

var _ ResidentsRepository = (*PostgresResidentsRepository)(nil)

const residentColumns = `
	resident_id::text,
	full_name,
	birth_date,
	admission_date,
	COALESCE(room, '') AS room,
	COALESCE(health_notes, '') AS health_notes,
	status
`

func scanResident(row interface{ Scan(...any) error }) (*domain.Resident, error) {
	var res domain.Resident
	var birthDate, admissionDate sql.NullTime
	if err := row.Scan(
		&res.ResidentID,
		&res.FullName,
		&birthDate,
		&admissionDate,
		&res.Room,
		&res.HealthNotes,
		&res.Status,
	); err != nil {
		return nil, err
	}
	if birthDate.Valid {
		res.BirthDate = &birthDate.Time
	}
	if admissionDate.Valid {
		res.AdmissionDate = &admissionDate.Time
	}
	return &res, nil
}

func (r *PostgresResidentsRepository) GetResident(ctx context.Context, residentID string) (*domain.Resident, error) {
	if residentID == "" {
		return nil, fmt.Errorf("resident_id is required")
	}

	query := `SELECT ` + residentColumns + ` FROM residents WHERE resident_id = $1`
	res, err := scanResident(r.db.QueryRowContext(ctx, query, residentID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get resident: %w", err)
	}
	return res, nil
}

func (r *PostgresResidentsRepository) ListResidents(ctx context.Context, filters ResidentFilters) ([]*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents`
	var conds []string
	var args []any
	if filters.Status != "" {
		args = append(args, filters.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
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
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	defer rows.Close()

	var items []*domain.Resident
	for rows.Next() {
		res, err := scanResident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resident: %w", err)
		}
		items = append(items, res)
	}
	return items, rows.Err()
}

func (r *PostgresResidentsRepository) CreateResident(ctx context.Context, resident *domain.Resident) (string, error) {
	status := resident.Status
	if status == "" {
		status = "active"
	}
	var id string
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO residents (resident_id, full_name, birth_date, admission_date, room, health_notes, status)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		 RETURNING resident_id::text`,
		resident.FullName,
		resident.BirthDate,
		resident.AdmissionDate,
		nullIfEmpty(resident.Room),
		nullIfEmpty(resident.HealthNotes),
		status,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create resident: %w", err)
	}
	return id, nil
}

func (r *PostgresResidentsRepository) UpdateResident(ctx context.Context, residentID string, resident *domain.Resident) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE residents
		 SET full_name = $2,
		     birth_date = $3,
		     admission_date = $4,
		     room = $5,
		     health_notes = $6,
		     status = $7
		 WHERE resident_id = $1`,
		residentID,
		resident.FullName,
		resident.BirthDate,
		resident.AdmissionDate,
		nullIfEmpty(resident.Room),
		nullIfEmpty(resident.HealthNotes),
		resident.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update resident: %w", err)
	}
	return requireRowAffected(result)
}

func (r *PostgresResidentsRepository) DeleteResident(ctx context.Context, residentID string) error {
	// contacts go first (no cascade assumed on the hosted schema)
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM resident_contacts WHERE resident_id = $1`, residentID); err != nil {
		return fmt.Errorf("failed to delete resident contacts: %w", err)
	}
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM residents WHERE resident_id = $1`, residentID)
	if err != nil {
		return fmt.Errorf("failed to delete resident: %w", err)
	}
	return requireRowAffected(result)
}

func (r *PostgresResidentsRepository) GetResidentContacts(ctx context.Context, residentID string) ([]*domain.EmergencyContact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT contact_id::text,
		        resident_id::text,
		        name,
		        COALESCE(relationship, '') AS relationship,
		        COALESCE(phone, '') AS phone,
		        COALESCE(email, '') AS email
		 FROM resident_contacts
		 WHERE resident_id = $1
		 ORDER BY name ASC`,
		residentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resident contacts: %w", err)
	}
	defer rows.Close()

	var items []*domain.EmergencyContact
	for rows.Next() {
		var c domain.EmergencyContact
		if err := rows.Scan(&c.ContactID, &c.ResidentID, &c.Name, &c.Relationship, &c.Phone, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		items = append(items, &c)
	}
	return items, rows.Err()
}

func (r *PostgresResidentsRepository) CreateResidentContact(ctx context.Context, residentID string, contact *domain.EmergencyContact) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO resident_contacts (contact_id, resident_id, name, relationship, phone, email)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
		 RETURNING contact_id::text`,
		residentID,
		contact.Name,
		nullIfEmpty(contact.Relationship),
		nullIfEmpty(contact.Phone),
		nullIfEmpty(contact.Email),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create resident contact: %w", err)
	}
	return id, nil
}

func (r *PostgresResidentsRepository) UpdateResidentContact(ctx context.Context, contactID string, contact *domain.EmergencyContact) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE resident_contacts
		 SET name = $2,
		     relationship = $3,
		     phone = $4,
		     email = $5
		 WHERE contact_id = $1`,
		contactID,
		contact.Name,
		nullIfEmpty(contact.Relationship),
		nullIfEmpty(contact.Phone),
		nullIfEmpty(contact.Email),
	)
	if err != nil {
		return fmt.Errorf("failed to update resident contact: %w", err)
	}
	return requireRowAffected(result)
}

func (r *PostgresResidentsRepository) DeleteResidentContact(ctx context.Context, contactID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM resident_contacts WHERE contact_id = $1`, contactID)
	if err != nil {
		return fmt.Errorf("failed to delete resident contact: %w", err)
	}
	return requireRowAffected(result)
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func requireRowAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
