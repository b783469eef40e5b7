package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jobsethiopia/jobsethiopia-go/internal/listing"
	"github.com/jobsethiopia/jobsethiopia-go/internal/middleware"
	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
	"github.com/jobsethiopia/jobsethiopia-go/internal/service"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service *service.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(svc *service.JobService) *JobHandler {
	return &JobHandler{service: svc}
}

// HandleList handles GET /api/jobs requests. Without query parameters the
// full list is returned; with a search term, facet filters, or a page
// number the result is filtered and page-sliced server-side.
func (h *JobHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to load jobs"))
		return
	}

	params := r.URL.Query()
	if len(params) == 0 {
		writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
		return
	}

	query := listing.JobQuery{
		Search:      params.Get("search"),
		Location:    params.Get("location"),
		Type:        params.Get("type"),
		Category:    params.Get("category"),
		CareerLevel: params.Get("career_level"),
	}
	page := pageParam(params.Get("page"))

	result := listing.FilterAndPaginate(jobs, query.Match, page, listing.JobsPerPage)
	writeJSON(w, http.StatusOK, map[string]any{
		"jobs":        result.Items,
		"total_count": result.TotalCount,
		"total_pages": result.TotalPages,
		"page":        page,
	})
}

// HandleGet handles GET /api/jobs/{id} requests.
func (h *JobHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	job, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// HandleCreate handles POST /api/admin/jobs requests.
func (h *JobHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.JobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	res := h.service.Create(r.Context(), sess, req)
	writeActionResult(w, http.StatusCreated, res)
}

// HandleUpdate handles PUT /api/admin/jobs/{id} requests.
func (h *JobHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req model.JobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	res := h.service.Update(r.Context(), sess, id, req)
	writeActionResult(w, http.StatusOK, res)
}

// HandleDelete handles DELETE /api/admin/jobs/{id} requests.
func (h *JobHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	res := h.service.Delete(r.Context(), sess, id)
	writeActionResult(w, http.StatusOK, res)
}

// idParam parses the {id} route parameter, writing a 400 on failure.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid id"))
		return 0, false
	}
	return id, true
}

// pageParam parses a page number, defaulting to 1.
func pageParam(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
