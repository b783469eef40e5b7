package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jobsethiopia/jobsethiopia-go/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// decodeJSON reads a size-limited JSON body into dst. On failure it writes
// the error response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// writeActionResult maps a tagged mutation result onto the HTTP response.
// These are API flows, so a redirect outcome is rendered as 401 rather
// than a Location header.
func writeActionResult(w http.ResponseWriter, okStatus int, res service.ActionResult[int64]) {
	switch res.Kind {
	case service.KindRedirect:
		writeJSON(w, http.StatusUnauthorized, errorResponse("authentication required"))
	case service.KindErr:
		switch {
		case service.IsValidation(res.Err):
			writeJSON(w, http.StatusBadRequest, failure(res.Err.Error()))
		case service.IsNotFound(res.Err):
			writeJSON(w, http.StatusNotFound, failure(res.Err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, failure("internal server error"))
		}
	default:
		writeJSON(w, okStatus, map[string]any{"success": true, "id": res.Value})
	}
}

func failure(msg string) map[string]any {
	return map[string]any{"success": false, "error": msg}
}
