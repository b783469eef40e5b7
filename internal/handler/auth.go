package handler

import (
	"errors"
	"net/http"

	"github.com/jobsethiopia/jobsethiopia-go/internal/middleware"
	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
	"github.com/jobsethiopia/jobsethiopia-go/internal/service"
	"github.com/jobsethiopia/jobsethiopia-go/internal/session"
)

// AuthHandler handles login, logout, session inspection, and
// change-password requests.
type AuthHandler struct {
	service *service.AuthService
	store   *session.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, store *session.Store) *AuthHandler {
	return &AuthHandler{service: svc, store: store}
}

// HandleLogin handles POST /api/auth/login requests. A successful login
// sets the session cookie.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	payload, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case service.IsValidation(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	if err := h.store.Create(w, payload); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.SessionResponse{Email: payload.Email, Role: payload.Role})
}

// HandleLogout handles POST /api/auth/logout requests. The session cookie
// is cleared unconditionally.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.store.Destroy(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleSession handles GET /api/auth/session requests.
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse("not authenticated"))
		return
	}

	writeJSON(w, http.StatusOK, model.SessionResponse{Email: sess.Email, Role: sess.Role})
}

// HandleChangePassword handles POST /api/admin/change-password requests.
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse("authentication required"))
		return
	}

	var req model.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ChangePassword(r.Context(), sess.UserID, req); err != nil {
		switch {
		case service.IsValidation(err):
			writeJSON(w, http.StatusBadRequest, failure(err.Error()))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, failure("current password is incorrect"))
		default:
			writeJSON(w, http.StatusInternalServerError, failure("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
