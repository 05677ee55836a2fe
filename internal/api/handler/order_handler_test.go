package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/artemaweirro/library-api/internal/core/domain"
)

type stubOrderService struct {
	listFn     func(ctx context.Context, caller domain.Identity) ([]domain.Order, error)
	listMineFn func(ctx context.Context, caller domain.Identity) ([]domain.Order, error)
	getFn      func(ctx context.Context, id string, caller domain.Identity) (*domain.Order, error)
	createFn   func(ctx context.Context, caller domain.Identity, bookIDs []string) (*domain.Order, error)
	replaceFn  func(ctx context.Context, id string, caller domain.Identity, bookIDs []string) (*domain.Order, error)
	deleteFn   func(ctx context.Context, id string, caller domain.Identity) error
}

func (s *stubOrderService) List(ctx context.Context, caller domain.Identity) ([]domain.Order, error) {
	return s.listFn(ctx, caller)
}

func (s *stubOrderService) ListMine(ctx context.Context, caller domain.Identity) ([]domain.Order, error) {
	return s.listMineFn(ctx, caller)
}

func (s *stubOrderService) Get(ctx context.Context, id string, caller domain.Identity) (*domain.Order, error) {
	return s.getFn(ctx, id, caller)
}

func (s *stubOrderService) Create(ctx context.Context, caller domain.Identity, bookIDs []string) (*domain.Order, error) {
	return s.createFn(ctx, caller, bookIDs)
}

func (s *stubOrderService) Replace(ctx context.Context, id string, caller domain.Identity, bookIDs []string) (*domain.Order, error) {
	return s.replaceFn(ctx, id, caller, bookIDs)
}

func (s *stubOrderService) Delete(ctx context.Context, id string, caller domain.Identity) error {
	return s.deleteFn(ctx, id, caller)
}

func newOrderContext(t *testing.T, method, path, body string, identity *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set("identity", *identity)
	}
	return c, rec
}

func TestOrderHandler_Get_Success(t *testing.T) {
	caller := domain.Identity{AccountID: "u1", Username: "alice", Role: domain.RoleUser}
	stub := &stubOrderService{
		getFn: func(_ context.Context, id string, got domain.Identity) (*domain.Order, error) {
			if id != "o1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if got != caller {
				t.Fatalf("unexpected caller: %+v", got)
			}
			return &domain.Order{ID: "o1", UserID: "u1", Username: "alice", TotalPrice: 5}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newOrderContext(t, http.MethodGet, "/orders/o1", "", &caller)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user"] != "alice" {
		t.Fatalf("expected owner username in payload, got %v", resp["user"])
	}
}

func TestOrderHandler_Get_ErrorsPassThrough(t *testing.T) {
	caller := domain.Identity{AccountID: "u2", Username: "bob", Role: domain.RoleUser}

	for name, want := range map[string]error{
		"not found": domain.ErrOrderNotFound,
		"not owner": domain.ErrNotOwner,
	} {
		stub := &stubOrderService{
			getFn: func(context.Context, string, domain.Identity) (*domain.Order, error) {
				return nil, want
			},
		}
		handler := NewOrderHandler(stub)

		c, _ := newOrderContext(t, http.MethodGet, "/orders/o1", "", &caller)
		c.SetParamNames("id")
		c.SetParamValues("o1")

		if err := handler.Get(c); !errors.Is(err, want) {
			t.Fatalf("%s: expected %v, got %v", name, want, err)
		}
	}
}

func TestOrderHandler_Get_Anonymous(t *testing.T) {
	handler := NewOrderHandler(&stubOrderService{})

	c, _ := newOrderContext(t, http.MethodGet, "/orders/o1", "", nil)
	if err := handler.Get(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestOrderHandler_Create_Success(t *testing.T) {
	caller := domain.Identity{AccountID: "u1", Username: "alice", Role: domain.RoleUser}
	stub := &stubOrderService{
		createFn: func(_ context.Context, got domain.Identity, bookIDs []string) (*domain.Order, error) {
			if len(bookIDs) != 2 {
				t.Fatalf("unexpected book ids: %v", bookIDs)
			}
			return &domain.Order{ID: "o1", UserID: got.AccountID, Username: got.Username, TotalPrice: 15}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newOrderContext(t, http.MethodPost, "/orders", `{"book_ids":["b1","b2"]}`, &caller)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestOrderHandler_Create_InvalidPayload(t *testing.T) {
	caller := domain.Identity{AccountID: "u1", Username: "alice", Role: domain.RoleUser}
	stub := &stubOrderService{
		createFn: func(context.Context, domain.Identity, []string) (*domain.Order, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	for name, body := range map[string]string{
		"not json":   "{",
		"empty list": `{"book_ids":[]}`,
		"no field":   `{}`,
	} {
		c, _ := newOrderContext(t, http.MethodPost, "/orders", body, &caller)
		err := handler.Create(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 HTTPError, got %v", name, err)
		}
	}
}

func TestOrderHandler_Delete_Success(t *testing.T) {
	caller := domain.Identity{AccountID: "u1", Username: "alice", Role: domain.RoleUser}
	stub := &stubOrderService{
		deleteFn: func(_ context.Context, id string, _ domain.Identity) error {
			if id != "o1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newOrderContext(t, http.MethodDelete, "/orders/o1", "", &caller)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
