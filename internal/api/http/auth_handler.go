package http

import (
	"net/http"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginResponse struct {
	Token   string          `json:"token"`
	User    *domain.User    `json:"user"`
	Partner *domain.Partner `json:"partner,omitempty"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	user, partner, token, err := h.auth.Login(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user, Partner: partner})
}
