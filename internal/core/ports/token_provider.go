package ports

import "github.com/artemaweirro/library-api/internal/core/domain"

// TokenProvider issues and validates self-contained bearer credentials.
//
// Issue embeds the subject and role as a point-in-time snapshot together with
// issuance and expiry timestamps. Validate verifies signature integrity and
// expiry and returns the decoded claims; any malformed, forged, expired or
// claim-incomplete token yields an error, never a panic.
type TokenProvider interface {
	Issue(username string, role domain.Role) (string, error)
	Validate(token string) (*domain.TokenClaims, error)
}
