package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

// msgInvalidBody is the fixed payload for bind failures and empty bodies.
const msgInvalidBody = "Тело запроса отсутствует или некорректно"

// ctxIdentity extracts the identity injected by the Identify middleware.
// Handlers mounted behind RequireAuth never see an anonymous request, but the
// check keeps them safe if one is ever routed without it.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get("identity").(domain.Identity)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return identity, nil
}
