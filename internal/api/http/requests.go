package http

import (
	"github.com/go-playground/validator/v10"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/service"
)

var validate = validator.New()

// checkRequest runs struct tag validation and converts the first failure into
// the shared validation error type.
func checkRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		return domain.NewValidationError(first.Field(), "failed on rule "+first.Tag())
	}
	return domain.NewValidationError("", err.Error())
}

type participantRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	AadhaarNumber string `json:"aadhaar_number" validate:"required,len=12,numeric"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,len=10,numeric"`
}

type submitTrainingRequest struct {
	Title                string                      `json:"title" validate:"required"`
	Theme                string                      `json:"theme" validate:"required"`
	Description          string                      `json:"description"`
	StartDate            string                      `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate              string                      `json:"end_date" validate:"required,datetime=2006-01-02"`
	State                string                      `json:"state" validate:"required"`
	District             string                      `json:"district"`
	City                 string                      `json:"city" validate:"required"`
	Pincode              string                      `json:"pincode"`
	Latitude             *float64                    `json:"latitude"`
	Longitude            *float64                    `json:"longitude"`
	TrainerName          string                      `json:"trainer_name"`
	TrainerEmail         string                      `json:"trainer_email" validate:"omitempty,email"`
	ParticipantsCount    int32                       `json:"participants_count"`
	ParticipantBreakdown domain.ParticipantBreakdown `json:"participant_breakdown"`
	Photos               []domain.MediaFile          `json:"photos"`
	AttendanceSheet      *domain.MediaFile           `json:"attendance_sheet"`
	Participants         []participantRequest        `json:"participants" validate:"required,min=1,dive"`
}

type adminCreateTrainingRequest struct {
	PartnerID            int32                       `json:"partner_id" validate:"required"`
	Title                string                      `json:"title" validate:"required"`
	Theme                string                      `json:"theme" validate:"required"`
	Description          string                      `json:"description"`
	StartDate            string                      `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate              string                      `json:"end_date" validate:"required,datetime=2006-01-02"`
	State                string                      `json:"state" validate:"required"`
	District             string                      `json:"district"`
	City                 string                      `json:"city" validate:"required"`
	Pincode              string                      `json:"pincode"`
	Latitude             *float64                    `json:"latitude"`
	Longitude            *float64                    `json:"longitude"`
	TrainerName          string                      `json:"trainer_name"`
	TrainerEmail         string                      `json:"trainer_email" validate:"omitempty,email"`
	ParticipantsCount    int32                       `json:"participants_count"`
	ParticipantBreakdown domain.ParticipantBreakdown `json:"participant_breakdown"`
}

type updateTrainingRequest struct {
	Title                *string                      `json:"title"`
	Theme                *string                      `json:"theme"`
	Description          *string                      `json:"description"`
	StartDate            *string                      `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate              *string                      `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	State                *string                      `json:"state"`
	District             *string                      `json:"district"`
	City                 *string                      `json:"city"`
	Pincode              *string                      `json:"pincode"`
	Latitude             *float64                     `json:"latitude"`
	Longitude            *float64                     `json:"longitude"`
	TrainerName          *string                      `json:"trainer_name"`
	TrainerEmail         *string                      `json:"trainer_email" validate:"omitempty,email"`
	ParticipantsCount    *int32                       `json:"participants_count"`
	ParticipantBreakdown *domain.ParticipantBreakdown `json:"participant_breakdown"`
	Photos               []domain.MediaFile           `json:"photos"`
	AttendanceSheet      *domain.MediaFile            `json:"attendance_sheet"`
	ClearAttendanceSheet bool                         `json:"clear_attendance_sheet"`
	Participants         []participantRequest         `json:"participants" validate:"omitempty,min=1,dive"`
}

type transitionRequest struct {
	Status domain.TrainingStatus `json:"status" validate:"required"`
	Reason string                `json:"reason"`
}

type registerPartnerRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	OrganizationName string `json:"organization_name" validate:"required"`
	OrganizationType string `json:"organization_type"`
	State            string `json:"state"`
	District         string `json:"district"`
	Address          string `json:"address"`
	ContactPerson    string `json:"contact_person" validate:"required"`
	Phone            string `json:"phone" validate:"omitempty,len=10,numeric"`
}

type accountStatusRequest struct {
	AccountStatus domain.AccountStatus `json:"account_status" validate:"required"`
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type loginRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     domain.Role `json:"role" validate:"required"`
}

func participantInputs(reqs []participantRequest) []service.ParticipantInput {
	if reqs == nil {
		return nil
	}
	inputs := make([]service.ParticipantInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, service.ParticipantInput{
			FullName:      r.FullName,
			AadhaarNumber: r.AadhaarNumber,
			Email:         r.Email,
			Phone:         r.Phone,
		})
	}
	return inputs
}
