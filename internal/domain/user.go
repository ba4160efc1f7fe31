package domain

// User console account (users table)
type User struct {
	UserID string `db:"user_id"` // UUID, PRIMARY KEY

	FullName string `db:"full_name"` // VARCHAR(200), NOT NULL
	Email    string `db:"email"`     // VARCHAR(255), NOT NULL, UNIQUE

	PasswordHash []byte `db:"password_hash"` // BYTEA, NOT NULL

	Role   string `db:"role"`   // VARCHAR(20), NOT NULL (admin/coordenador/cuidador)
	Status string `db:"status"` // VARCHAR(20), NOT NULL, DEFAULT 'active' (active/inactive)
}

// Console roles, coarse access levels only.
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordenador"
	RoleCaregiver   = "cuidador"
)

// CanManageUsers user management is admin-only.
func (u *User) CanManageUsers() bool {
	return u.Role == RoleAdmin
}
