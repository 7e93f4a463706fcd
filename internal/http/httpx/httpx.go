// Package httpx provides JSON response helpers and the mapping from domain
// errors to HTTP status codes.
package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/maxjeon97/biztime/internal/company"
	"github.com/maxjeon97/biztime/internal/invoice"
)

// ProblemDetail is the error response body.
type ProblemDetail struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Problem sends a problem-details error response.
func Problem(w http.ResponseWriter, status int, title, detail string) {
	JSON(w, status, ProblemDetail{
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

// RespondError maps domain errors to HTTP responses. Not-found sentinels map
// to 404; anything else is a store failure reported as an opaque 500.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, company.ErrNotFound), errors.Is(err, invoice.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		slog.Error("request failed", "error", err)
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
