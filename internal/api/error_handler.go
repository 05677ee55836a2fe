package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/artemaweirro/library-api/internal/api/metrics"
	"github.com/artemaweirro/library-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// User-facing messages are localized and fixed: clients match on them, so
// they are part of the observable API contract.
const (
	msgInvalidCredentials = "Неверный логин или пароль"
	msgUserExists         = "Пользователь с таким именем уже зарегистрирован"
	msgUserNotFound       = "Пользователь не найден"
	msgIdentityRevoked    = "Пользователь не найден. Повторите авторизацию."
	msgUnauthenticated    = "Вы не авторизованы для выполнения этого действия"
	msgForbidden          = "У вас нет прав на выполнение этого действия"
	msgNotOwner           = "Доступ запрещён: это не ваш заказ"
	msgOrderNotFound      = "Заказ не найден"
	msgBookNotFound       = "Книга не найдена"
	msgBooksNotFound      = "Книги не найдены"
	msgEmptyUpdate        = "Нужно указать хотя бы одно поле для обновления"
	msgInternal           = "Внутренняя ошибка сервера"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// Authentication and authorization failures are terminal for the request and
// carry no detail beyond the fixed message.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, msgUserExists
	case errors.Is(err, domain.ErrIdentityRevoked):
		return http.StatusUnauthorized, msgIdentityRevoked
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, msgUnauthenticated
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, msgForbidden
	case errors.Is(err, domain.ErrNotOwner):
		metrics.AuthDeniedTotal.WithLabelValues(metrics.ReasonNotOwner).Inc()
		return http.StatusForbidden, msgNotOwner
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, msgUserNotFound
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, msgOrderNotFound
	case errors.Is(err, domain.ErrBookNotFound):
		return http.StatusNotFound, msgBookNotFound
	case errors.Is(err, domain.ErrBooksNotFound):
		return http.StatusBadRequest, msgBooksNotFound
	case errors.Is(err, domain.ErrEmptyUpdate):
		return http.StatusBadRequest, msgEmptyUpdate
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, msgInternal
}
