package models

import "time"

// UserRole enumerates account roles within the hub.
type UserRole string

const (
	RoleParent   UserRole = "parent"
	RoleEducator UserRole = "educator"
	RoleAdmin    UserRole = "admin"
)

// User is an account able to authenticate and exchange messages.
type User struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     string     `db:"full_name" json:"full_name"`
	Role         UserRole   `db:"role" json:"role"`
	Active       bool       `db:"active" json:"active"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
