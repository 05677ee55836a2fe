package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

var errMissingClaims = errors.New("token missing required claims")

// tokenClaims is the wire shape of the payload: sub/iat/exp from the
// registered claim set plus the role snapshot.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenProvider issues and validates HS256-signed tokens. It holds only the
// process-wide secret and validity window, both read-only, so a single
// instance is safe for concurrent use without locking.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenProvider(secret string, ttl time.Duration) *TokenProvider {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenProvider{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given subject and role, valid from now until
// now plus the configured validity window.
func (p *TokenProvider) Issue(username string, role domain.Role) (string, error) {
	now := p.now().UTC()
	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Validate verifies signature integrity and expiry and decodes the claims.
// Expiry is compared strictly against the current time, no leeway. Any
// malformed, forged, expired or claim-incomplete token yields an error.
func (p *TokenProvider) Validate(token string) (*domain.TokenClaims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	role, ok := domain.ParseRole(claims.Role)
	if claims.Subject == "" || !ok {
		return nil, errMissingClaims
	}

	out := &domain.TokenClaims{
		Subject:   claims.Subject,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
