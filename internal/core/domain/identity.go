package domain

import "time"

// Identity is the resolved caller of a single request. It is reconstructed on
// every request from a validated token plus a directory lookup, never stored.
//
// Role comes from the token claims, not from the directory row: an account's
// role change only takes effect on tokens issued after the change.
type Identity struct {
	AccountID string
	Username  string
	Role      Role
}

// TokenClaims are the decoded fields of a validated token.
type TokenClaims struct {
	Subject   string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// FromUser maps a stored account to the identity it would authenticate as.
func FromUser(u *User) Identity {
	return Identity{AccountID: u.ID, Username: u.Username, Role: u.Role}
}
