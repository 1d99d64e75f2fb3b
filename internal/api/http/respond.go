package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError translates the service error taxonomy into HTTP status codes.
// Anything outside the taxonomy is a 500 with a generic body; the detail
// goes to the log, not the client.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr    *domain.ValidationError
		authorizationErr *domain.AuthorizationError
		notFoundErr      *domain.NotFoundError
		storageErr       *domain.StorageError
		conflictErr      *domain.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Message, Field: validationErr.Field})
	case errors.As(err, &authorizationErr):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: authorizationErr.Message})
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFoundErr.Error()})
	case errors.As(err, &storageErr):
		logger.Error("storage gateway failure", "op", storageErr.Op, "error", storageErr.Err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "storage operation failed"})
	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: conflictErr.Message})
	default:
		logger.Error("unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("", "invalid JSON body")
	}
	return nil
}
