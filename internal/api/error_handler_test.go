package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, msgInvalidCredentials},
		{domain.ErrUserExists, http.StatusBadRequest, msgUserExists},
		{domain.ErrIdentityRevoked, http.StatusUnauthorized, msgIdentityRevoked},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, msgUnauthenticated},
		{domain.ErrForbidden, http.StatusForbidden, msgForbidden},
		{domain.ErrNotOwner, http.StatusForbidden, msgNotOwner},
		{domain.ErrUserNotFound, http.StatusNotFound, msgUserNotFound},
		{domain.ErrOrderNotFound, http.StatusNotFound, msgOrderNotFound},
		{domain.ErrBookNotFound, http.StatusNotFound, msgBookNotFound},
		{domain.ErrBooksNotFound, http.StatusBadRequest, msgBooksNotFound},
		{domain.ErrEmptyUpdate, http.StatusBadRequest, msgEmptyUpdate},
	}

	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handle(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}

		var resp errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%v: invalid json: %v", tc.err, err)
		}
		if resp.Error != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, resp.Error)
		}
	}
}

func TestHTTPErrorHandler_WrappedError(t *testing.T) {
	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Errors wrapped along the way still map to their domain status.
	handle(fmt.Errorf("load order: %w", domain.ErrOrderNotFound), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handle(echo.NewHTTPError(http.StatusBadRequest, "field is required"), c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "field is required" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handle(errors.New("database exploded"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// Internal detail never leaks to the client.
	if resp.Error != msgInternal {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}
