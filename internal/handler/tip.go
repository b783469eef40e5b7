package handler

import (
	"errors"
	"net/http"

	"github.com/jobsethiopia/jobsethiopia-go/internal/listing"
	"github.com/jobsethiopia/jobsethiopia-go/internal/middleware"
	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
	"github.com/jobsethiopia/jobsethiopia-go/internal/service"
)

// TipHandler handles HTTP requests for career tips.
type TipHandler struct {
	service *service.TipService
}

// NewTipHandler creates a new TipHandler.
func NewTipHandler(svc *service.TipService) *TipHandler {
	return &TipHandler{service: svc}
}

// HandleList handles GET /api/tips requests, with the same optional
// filtering and pagination parameters as the jobs list.
func (h *TipHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tips, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to load tips"))
		return
	}

	params := r.URL.Query()
	if len(params) == 0 {
		writeJSON(w, http.StatusOK, map[string]any{"tips": tips})
		return
	}

	query := listing.TipQuery{
		Search:     params.Get("search"),
		Category:   params.Get("category"),
		Difficulty: params.Get("difficulty"),
		Status:     params.Get("status"),
	}
	page := pageParam(params.Get("page"))

	result := listing.FilterAndPaginate(tips, query.Match, page, listing.TipsPerPage)
	writeJSON(w, http.StatusOK, map[string]any{
		"tips":        result.Items,
		"total_count": result.TotalCount,
		"total_pages": result.TotalPages,
		"page":        page,
	})
}

// HandleGet handles GET /api/tips/{id} requests. Retrieval counts as a
// view.
func (h *TipHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	tip, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTipNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, tip)
}

// HandleCreate handles POST /api/admin/tips requests.
func (h *TipHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.TipRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	res := h.service.Create(r.Context(), sess, req)
	writeActionResult(w, http.StatusCreated, res)
}

// HandleUpdate handles PUT /api/admin/tips/{id} requests.
func (h *TipHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req model.TipRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	res := h.service.Update(r.Context(), sess, id, req)
	writeActionResult(w, http.StatusOK, res)
}

// HandleDelete handles DELETE /api/admin/tips/{id} requests.
func (h *TipHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	res := h.service.Delete(r.Context(), sess, id)
	writeActionResult(w, http.StatusOK, res)
}
