// Package rest provides the JSON HTTP API: thin framing over the journal,
// pattern and distribution services.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/journalmind/journalmind-backend/internal/domain"
)

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps domain sentinels onto HTTP statuses. Unknown errors
// become opaque 500s; their detail belongs in the log, not the response.
func writeDomainError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]fieldError, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			fields = append(fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadySettled),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidRewardAmount),
		errors.Is(err, domain.ErrNotRewardEligible),
		errors.Is(err, domain.ErrCapExceeded),
		errors.Is(err, domain.ErrInsufficientDistributorBalance):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrTransferFailed),
		errors.Is(err, domain.ErrEmbeddingFailed):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON parses the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "malformed JSON")
	}
	return nil
}
