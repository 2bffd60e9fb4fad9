package http

import (
	"encoding/json"
	"errors"
	"net/http"

	authmw "github.com/securellm/securellm-api/internal/auth/middleware"
	"github.com/securellm/securellm-api/internal/challenge"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps the core failure kinds onto status codes:
// NotFound -> 404, InvalidInput -> 400, anything else -> 500.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, challenge.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, challenge.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// userID resolves the caller identity from the validated JWT, falling back to
// the configured placeholder when auth is not mounted.
func userID(r *http.Request, fallback string) string {
	if sub := authmw.SubjectFromContext(r.Context()); sub != "" {
		return sub
	}
	return fallback
}
