package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/artemaweirro/library-api/internal/api/metrics"
	"github.com/artemaweirro/library-api/internal/core/domain"
	"github.com/artemaweirro/library-api/internal/core/ports"
)

// identityKey is the echo context key the resolved identity is stored under.
// Must match the key read by the handler package.
const identityKey = "identity"

// Identify resolves the request's effective identity, once, before any
// handler runs.
//
// A missing header, a wrong scheme, or a malformed/expired/forged token all
// leave the request anonymous: some routes are public, so the route-level
// rules decide whether that is acceptable. The one hard rejection is a
// cryptographically valid token whose subject no longer exists in the user
// directory — that request is stopped with 401 immediately. Existence, not
// signature validity, is the final gate; it is what makes account deletion
// take effect before token expiry.
//
// The attached identity carries the token's role snapshot, not the directory
// row's current role.
func Identify(tokens ports.TokenProvider, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				return next(c)
			}

			user, err := users.FindByUsername(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthDeniedTotal.WithLabelValues(metrics.ReasonRevoked).Inc()
					return domain.ErrIdentityRevoked
				}
				return err
			}

			c.Set(identityKey, domain.Identity{
				AccountID: user.ID,
				Username:  claims.Subject,
				Role:      claims.Role,
			})
			return next(c)
		}
	}
}
