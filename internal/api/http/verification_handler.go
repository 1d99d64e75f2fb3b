package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"training-portal-backend/internal/service"
)

type VerificationHandler struct {
	verification service.VerificationService
}

func NewVerificationHandler(verification service.VerificationService) *VerificationHandler {
	return &VerificationHandler{verification: verification}
}

// Verify is the public certificate check. No authentication; the Aadhaar
// number arrives as a path segment.
func (h *VerificationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	aadhaar := mux.Vars(r)["aadhaar"]
	result, err := h.verification.VerifyByAadhaar(r.Context(), aadhaar)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
