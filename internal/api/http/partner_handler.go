package http

import (
	"net/http"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/service"
)

type PartnerHandler struct {
	partners service.PartnerService
}

func NewPartnerHandler(partners service.PartnerService) *PartnerHandler {
	return &PartnerHandler{partners: partners}
}

type partnerResponse struct {
	Partner *domain.Partner `json:"partner"`
}

type partnerListResponse struct {
	Partners []domain.Partner `json:"partners"`
	Total    int32            `json:"total"`
	Page     int32            `json:"page"`
	PageSize int32            `json:"page_size"`
}

func (h *PartnerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerPartnerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	partner, err := h.partners.Register(r.Context(), service.RegisterPartnerInput{
		Email:            req.Email,
		Password:         req.Password,
		OrganizationName: req.OrganizationName,
		OrganizationType: req.OrganizationType,
		State:            req.State,
		District:         req.District,
		Address:          req.Address,
		ContactPerson:    req.ContactPerson,
		Phone:            req.Phone,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, partnerResponse{Partner: partner})
}

func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	partner, err := h.partners.Get(r.Context(), actorFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partnerResponse{Partner: partner})
}

func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := domain.RegistrationStatus(q.Get("status"))
	page := queryInt(q.Get("page"), 1)
	pageSize := queryInt(q.Get("page_size"), 50)

	partners, total, err := h.partners.List(r.Context(), actorFrom(r.Context()), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partnerListResponse{
		Partners: partners,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *PartnerHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	partner, err := h.partners.Approve(r.Context(), actorFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partnerResponse{Partner: partner})
}

func (h *PartnerHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req rejectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkRequest(&req); err != nil {
		writeError(w, err)
		return
	}
	partner, err := h.partners.Reject(r.Context(), actorFrom(r.Context()), id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partnerResponse{Partner: partner})
}

func (h *PartnerHandler) SetAccountStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req accountStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkRequest(&req); err != nil {
		writeError(w, err)
		return
	}
	partner, err := h.partners.SetAccountStatus(r.Context(), actorFrom(r.Context()), id, req.AccountStatus)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partnerResponse{Partner: partner})
}
