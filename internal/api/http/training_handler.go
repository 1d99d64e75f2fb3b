package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/service"
)

type TrainingHandler struct {
	trainings service.TrainingService
}

func NewTrainingHandler(trainings service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainings: trainings}
}

type trainingResponse struct {
	Training     *domain.TrainingEvent `json:"training"`
	Participants []domain.Participant  `json:"participants,omitempty"`
}

type trainingListResponse struct {
	Trainings []domain.TrainingEvent `json:"trainings"`
	Total     int32                  `json:"total"`
	Page      int32                  `json:"page"`
	PageSize  int32                  `json:"page_size"`
}

func (h *TrainingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitTrainingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	training, err := h.trainings.Submit(r.Context(), actorFrom(r.Context()), service.SubmitTrainingInput{
		Title:                req.Title,
		Theme:                req.Theme,
		Description:          req.Description,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		State:                req.State,
		District:             req.District,
		City:                 req.City,
		Pincode:              req.Pincode,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		TrainerName:          req.TrainerName,
		TrainerEmail:         req.TrainerEmail,
		ParticipantsCount:    req.ParticipantsCount,
		ParticipantBreakdown: req.ParticipantBreakdown,
		Photos:               req.Photos,
		AttendanceSheet:      req.AttendanceSheet,
		Participants:         participantInputs(req.Participants),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trainingResponse{Training: training})
}

func (h *TrainingHandler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	var req adminCreateTrainingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	training, err := h.trainings.AdminCreate(r.Context(), actorFrom(r.Context()), service.AdminCreateTrainingInput{
		PartnerID:            req.PartnerID,
		Title:                req.Title,
		Theme:                req.Theme,
		Description:          req.Description,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		State:                req.State,
		District:             req.District,
		City:                 req.City,
		Pincode:              req.Pincode,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		TrainerName:          req.TrainerName,
		TrainerEmail:         req.TrainerEmail,
		ParticipantsCount:    req.ParticipantsCount,
		ParticipantBreakdown: req.ParticipantBreakdown,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trainingResponse{Training: training})
}

func (h *TrainingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	training, participants, err := h.trainings.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trainingResponse{Training: training, Participants: participants})
}

func (h *TrainingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.TrainingFilter{
		Status: domain.TrainingStatus(q.Get("status")),
		Theme:  q.Get("theme"),
		State:  q.Get("state"),
	}
	if raw := q.Get("partner_id"); raw != "" {
		partnerID, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(w, domain.NewValidationError("partner_id", "must be an integer"))
			return
		}
		filter.PartnerID = int32(partnerID)
	}

	page := queryInt(q.Get("page"), 1)
	pageSize := queryInt(q.Get("page_size"), 50)

	trainings, total, err := h.trainings.List(r.Context(), filter, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trainingListResponse{
		Trainings: trainings,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	})
}

func (h *TrainingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateTrainingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	training, participants, err := h.trainings.Update(r.Context(), actorFrom(r.Context()), id, service.UpdateTrainingInput{
		Title:                req.Title,
		Theme:                req.Theme,
		Description:          req.Description,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		State:                req.State,
		District:             req.District,
		City:                 req.City,
		Pincode:              req.Pincode,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		TrainerName:          req.TrainerName,
		TrainerEmail:         req.TrainerEmail,
		ParticipantsCount:    req.ParticipantsCount,
		ParticipantBreakdown: req.ParticipantBreakdown,
		Photos:               req.Photos,
		AttendanceSheet:      req.AttendanceSheet,
		ClearAttendanceSheet: req.ClearAttendanceSheet,
		Participants:         participantInputs(req.Participants),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trainingResponse{Training: training, Participants: participants})
}

func (h *TrainingHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req transitionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := checkRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	training, err := h.trainings.Transition(r.Context(), actorFrom(r.Context()), id, req.Status, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trainingResponse{Training: training})
}

func (h *TrainingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.trainings.Delete(r.Context(), actorFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return int32(id), nil
}

func queryInt(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}
