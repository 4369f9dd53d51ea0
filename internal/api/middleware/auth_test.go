package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velstore/commerce-api/internal/core/domain"
)

type stubTokenResolver struct {
	tokens map[string]*domain.AccessToken
	err    error
}

func (r *stubTokenResolver) ResolveToken(_ context.Context, token string) (*domain.AccessToken, error) {
	if r.err != nil {
		return nil, r.err
	}
	if t, ok := r.tokens[token]; ok {
		return t, nil
	}
	return nil, domain.ErrTokenNotFound
}

func validToken(scopes ...domain.Scope) *domain.AccessToken {
	ss := make([]string, 0, len(scopes))
	for _, s := range scopes {
		ss = append(ss, s.String())
	}
	return &domain.AccessToken{
		Token:     "tok-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		Scopes:    ss,
	}
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuth_ValidTokenWithScope(t *testing.T) {
	resolver := &stubTokenResolver{tokens: map[string]*domain.AccessToken{
		"tok-1": validToken(domain.ScopeProductsList),
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(resolver, domain.ScopeProductsList)(func(c echo.Context) error {
		called = true
		identity, ok := IdentityFrom(c)
		if !ok {
			t.Fatalf("identity not attached")
		}
		if identity.UserID != "user-1" {
			t.Fatalf("unexpected user id: %s", identity.UserID)
		}
		if identity.IsGuest() {
			t.Fatalf("bearer identity reported as guest")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	resolver := &stubTokenResolver{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec, called := invoke(t, Auth(resolver, domain.ScopeProductsList), req)
	if called {
		t.Fatalf("next called without a credential")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	resolver := &stubTokenResolver{tokens: map[string]*domain.AccessToken{
		"tok-1": validToken(),
	}}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic tok-1")

	rec, called := invoke(t, Auth(resolver, ""), req)
	if called {
		t.Fatalf("next called with a non-bearer scheme")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_UnknownToken(t *testing.T) {
	resolver := &stubTokenResolver{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer nope")

	rec, called := invoke(t, Auth(resolver, ""), req)
	if called {
		t.Fatalf("next called with an unknown token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	expired := validToken(domain.ScopeProductsList)
	expired.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	resolver := &stubTokenResolver{tokens: map[string]*domain.AccessToken{"tok-1": expired}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok-1")

	rec, called := invoke(t, Auth(resolver, domain.ScopeProductsList), req)
	if called {
		t.Fatalf("next called with an expired token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MissingScope(t *testing.T) {
	// Valid token, wrong capability: this is the one case that must answer
	// 403 rather than 401.
	resolver := &stubTokenResolver{tokens: map[string]*domain.AccessToken{
		"tok-1": validToken(domain.ScopeProductsList),
	}}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok-1")

	rec, called := invoke(t, Auth(resolver, domain.ScopeProductsDelete), req)
	if called {
		t.Fatalf("next called without the required scope")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuth_NoScopeRequired(t *testing.T) {
	// A route with no scope requirement admits any valid token, including
	// one with an empty scope set.
	resolver := &stubTokenResolver{tokens: map[string]*domain.AccessToken{
		"tok-1": validToken(),
	}}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok-1")

	rec, called := invoke(t, Auth(resolver, ""), req)
	if !called {
		t.Fatalf("next not called for a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_StorageFailurePropagates(t *testing.T) {
	resolver := &stubTokenResolver{err: context.DeadlineExceeded}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok-1")

	rec, called := invoke(t, Auth(resolver, ""), req)
	if called {
		t.Fatalf("next called after a storage failure")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
