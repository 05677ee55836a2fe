package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/artemaweirro/library-api/internal/api/metrics"
	"github.com/artemaweirro/library-api/internal/core/domain"
)

// RequireAuth rejects requests that carry no resolved identity. Used for
// routes any authenticated account may reach, regardless of role.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(identityKey).(domain.Identity); !ok {
				metrics.AuthDeniedTotal.WithLabelValues(metrics.ReasonUnauthenticated).Inc()
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// RequireRoles enforces a route-level static role rule: anonymous callers get
// 401, authenticated callers outside the allowed set get 403. Both outcomes
// are decided before any resource is loaded.
func RequireRoles(allowed ...domain.Role) echo.MiddlewareFunc {
	set := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(identityKey).(domain.Identity)
			if !ok {
				metrics.AuthDeniedTotal.WithLabelValues(metrics.ReasonUnauthenticated).Inc()
				return domain.ErrUnauthenticated
			}
			if _, ok := set[identity.Role]; !ok {
				metrics.AuthDeniedTotal.WithLabelValues(metrics.ReasonForbidden).Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
