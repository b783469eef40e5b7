package handler

import (
	"net/http"

	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
	"github.com/jobsethiopia/jobsethiopia-go/internal/service"
)

// ContactHandler handles contact-form submissions.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// HandleSend handles POST /api/contact requests.
func (h *ContactHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Send(req); err != nil {
		if service.IsValidation(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to send email"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
