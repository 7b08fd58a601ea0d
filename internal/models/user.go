package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table.
type User struct {
	UserID       string         `db:"user_id"`
	Email        string         `db:"email"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	FullName     sql.NullString `db:"full_name"`
	IsActive     bool           `db:"is_active"`
	LastLoginAt  *time.Time     `db:"last_login_at"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
