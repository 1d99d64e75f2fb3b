package http

import (
	"net/http"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/service"
)

type AnalyticsHandler struct {
	analytics service.AnalyticsService
}

func NewAnalyticsHandler(analytics service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

type dashboardResponse struct {
	Stats  *domain.DashboardStats `json:"stats"`
	Recent []domain.TrainingEvent `json:"recent_trainings"`
}

func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, recent, err := h.analytics.Dashboard(r.Context(), actorFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse{Stats: stats, Recent: recent})
}

func (h *AnalyticsHandler) Coverage(w http.ResponseWriter, r *http.Request) {
	report, err := h.analytics.Coverage(r.Context(), actorFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *AnalyticsHandler) TrainingLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.analytics.TrainingLocations(r.Context(), actorFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"locations": locations})
}

func (h *AnalyticsHandler) Gaps(w http.ResponseWriter, r *http.Request) {
	report, err := h.analytics.Gaps(r.Context(), actorFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
