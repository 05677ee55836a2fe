package domain

import (
	"errors"
	"time"
)

// Role is the exhaustive set of trust levels an account can hold.
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole converts a raw claim or request value into a Role.
// Unknown values are rejected rather than defaulted.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleModerator, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Privileged reports whether the role bypasses per-resource ownership checks.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleModerator
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// ErrIdentityRevoked is returned when a cryptographically valid token names an
// account that no longer exists. Deleting an account invalidates all of its
// outstanding tokens through this check, without a blacklist.
var ErrIdentityRevoked = errors.New("identity revoked")

var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")

// User models a stored account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
