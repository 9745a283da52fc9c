// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity, shared by customers, drivers and
// platform administrators. A user is never hard-deleted; deactivation
// clears the IsActive flag and blocks further logins.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email        string     // Unique login identifier.
	Username     string     // Unique display handle, derived from the email when not supplied.
	FirstName    string     // The user's first name.
	LastName     string     // The user's last name.
	PhoneNumber  string     // Contact phone number.
	PasswordHash string     // Bcrypt hash of the user's password. Never exposed outside the domain.
	Role         Role       // Platform-level role of this account.
	IsActive     bool       // False once the account has been deactivated.
	LastLoginAt  *time.Time // Timestamp of the most recent successful login, nil before the first.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
}

// CanLogin reports whether the account is allowed to authenticate.
func (u *User) CanLogin() bool {
	return u.IsActive
}

// IsPlatformAdmin reports whether the account carries the platform admin role.
func (u *User) IsPlatformAdmin() bool {
	return u.Role == RoleAdmin
}
