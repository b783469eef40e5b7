package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jobsethiopia/jobsethiopia-go/internal/middleware"
	"github.com/jobsethiopia/jobsethiopia-go/internal/service"
	"github.com/jobsethiopia/jobsethiopia-go/internal/session"
)

func newTestRouter(t *testing.T) (*session.Store, chi.Router) {
	t.Helper()

	store := session.NewStore(session.NewCodec("test-secret", 7*24*time.Hour), false)
	authHandler := NewAuthHandler(service.NewAuthService(nil), store)

	r := chi.NewRouter()
	r.Use(middleware.Gate(store))
	r.Post("/api/auth/logout", authHandler.HandleLogout)
	r.Get("/api/auth/session", authHandler.HandleSession)
	r.Post("/api/auth/login", authHandler.HandleLogin)
	return store, r
}

func TestHandleLogoutClearsCookie(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Errorf("body = %s, want success true", rec.Body.String())
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Errorf("expected an expired session cookie, got %+v", cookies)
	}
}

func TestHandleSessionUnauthenticated(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("body = %s, want an error field", rec.Body.String())
	}
}

func TestHandleSessionAuthenticated(t *testing.T) {
	store, r := newTestRouter(t)

	cookieRec := httptest.NewRecorder()
	err := store.Create(cookieRec, &session.Payload{UserID: 1, Email: "admin@example.com", Role: "admin"})
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(cookieRec.Result().Cookies()[0])
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "admin@example.com") || !strings.Contains(body, `"role":"admin"`) {
		t.Errorf("body = %s, want email and role", body)
	}
}

func TestHandleLoginInvalidBody(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
