package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"repouso-data/internal/domain"
)

// PostgresUsersRepository console-account data access.
type PostgresUsersRepository struct {
	db *sql.DB
}

func NewPostgresUsersRepository(db *sql.DB) *PostgresUsersRepository {
	return &PostgresUsersRepository{db: db}
}

var _ UsersRepository = (*PostgresUsersRepository)(nil)

const userColumns = `
	user_id::text,
	full_name,
	email,
	password_hash,
	role,
	status
`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.UserID,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUsersRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *PostgresUsersRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, strings.ToLower(email)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (r *PostgresUsersRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY full_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var items []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

func (r *PostgresUsersRepository) CreateUser(ctx context.Context, user *domain.User) (string, error) {
	status := user.Status
	if status == "" {
		status = "active"
	}
	var id string
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (user_id, full_name, email, password_hash, role, status)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
		 RETURNING user_id::text`,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.Role,
		status,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

func (r *PostgresUsersRepository) UpdateUser(ctx context.Context, userID string, user *domain.User) error {
	// password_hash only changes when a new hash is supplied
	query := `UPDATE users
	          SET full_name = $2,
	              email = $3,
	              role = $4,
	              status = $5`
	args := []any{userID, user.FullName, user.Email, user.Role, user.Status}
	if len(user.PasswordHash) > 0 {
		args = append(args, user.PasswordHash)
		query += fmt.Sprintf(", password_hash = $%d", len(args))
	}
	query += ` WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return requireRowAffected(result)
}

func (r *PostgresUsersRepository) DeleteUser(ctx context.Context, userID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireRowAffected(result)
}
