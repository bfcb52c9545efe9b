package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkravets/bookshelf/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// respondError translates sentinel errors from the services into HTTP
// status codes. Validation and uniqueness conflicts both map to 400, missing
// entities to 404, everything unexpected to 500 with a generic body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrAlreadyExists):
		errorJSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrNotFound):
		errorJSON(w, http.StatusNotFound, "not found")
	default:
		s.logger.Error(r.Context(), err.Error())
		errorJSON(w, http.StatusInternalServerError, "internal error")
	}
}
