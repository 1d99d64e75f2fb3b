package service

import (
	"context"

	"training-portal-backend/internal/domain"
)

// ParticipantInput is one roster entry on a submission or edit.
type ParticipantInput struct {
	FullName      string
	AadhaarNumber string
	Email         string
	Phone         string
}

// SubmitTrainingInput is the partner submission payload. Media references are
// produced by the upload endpoints before the submission reaches the service.
type SubmitTrainingInput struct {
	Title                string
	Theme                string
	Description          string
	StartDate            string
	EndDate              string
	State                string
	District             string
	City                 string
	Pincode              string
	Latitude             *float64
	Longitude            *float64
	TrainerName          string
	TrainerEmail         string
	ParticipantsCount    int32
	ParticipantBreakdown domain.ParticipantBreakdown
	Photos               []domain.MediaFile
	AttendanceSheet      *domain.MediaFile
	Participants         []ParticipantInput
}

// AdminCreateTrainingInput is the direct-create payload used when an admin
// enters a training on a partner's behalf.
type AdminCreateTrainingInput struct {
	PartnerID            int32
	Title                string
	Theme                string
	Description          string
	StartDate            string
	EndDate              string
	State                string
	District             string
	City                 string
	Pincode              string
	Latitude             *float64
	Longitude            *float64
	TrainerName          string
	TrainerEmail         string
	ParticipantsCount    int32
	ParticipantBreakdown domain.ParticipantBreakdown
}

// UpdateTrainingInput carries a partial patch. Nil fields keep the current
// value. A non-nil Photos slice replaces the whole photo list. Participants
// non-nil replaces the whole roster. ClearAttendanceSheet removes the sheet;
// otherwise a non-nil AttendanceSheet replaces it.
type UpdateTrainingInput struct {
	Title                *string
	Theme                *string
	Description          *string
	StartDate            *string
	EndDate              *string
	State                *string
	District             *string
	City                 *string
	Pincode              *string
	Latitude             *float64
	Longitude            *float64
	TrainerName          *string
	TrainerEmail         *string
	ParticipantsCount    *int32
	ParticipantBreakdown *domain.ParticipantBreakdown
	Photos               []domain.MediaFile
	AttendanceSheet      *domain.MediaFile
	ClearAttendanceSheet bool
	Participants         []ParticipantInput
}

// RegisterPartnerInput creates a login credential plus a pending partner.
type RegisterPartnerInput struct {
	Email            string
	Password         string
	OrganizationName string
	OrganizationType string
	State            string
	District         string
	Address          string
	ContactPerson    string
	Phone            string
}

type TrainingService interface {
	Submit(ctx context.Context, actor domain.Actor, input SubmitTrainingInput) (*domain.TrainingEvent, error)
	AdminCreate(ctx context.Context, actor domain.Actor, input AdminCreateTrainingInput) (*domain.TrainingEvent, error)
	Get(ctx context.Context, id int32) (*domain.TrainingEvent, []domain.Participant, error)
	List(ctx context.Context, filter domain.TrainingFilter, page, pageSize int32) ([]domain.TrainingEvent, int32, error)
	Update(ctx context.Context, actor domain.Actor, id int32, patch UpdateTrainingInput) (*domain.TrainingEvent, []domain.Participant, error)
	Transition(ctx context.Context, actor domain.Actor, id int32, target domain.TrainingStatus, reason string) (*domain.TrainingEvent, error)
	Delete(ctx context.Context, actor domain.Actor, id int32) error
}

type VerificationService interface {
	VerifyByAadhaar(ctx context.Context, aadhaar string) (*domain.VerificationResult, error)
}

type PartnerService interface {
	Register(ctx context.Context, input RegisterPartnerInput) (*domain.Partner, error)
	Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Partner, error)
	List(ctx context.Context, actor domain.Actor, status domain.RegistrationStatus, page, pageSize int32) ([]domain.Partner, int32, error)
	Approve(ctx context.Context, actor domain.Actor, id int32) (*domain.Partner, error)
	Reject(ctx context.Context, actor domain.Actor, id int32, reason string) (*domain.Partner, error)
	SetAccountStatus(ctx context.Context, actor domain.Actor, id int32, status domain.AccountStatus) (*domain.Partner, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string, role domain.Role) (*domain.User, *domain.Partner, string, error)
}

type AnalyticsService interface {
	Dashboard(ctx context.Context, actor domain.Actor) (*domain.DashboardStats, []domain.TrainingEvent, error)
	Coverage(ctx context.Context, actor domain.Actor) (*domain.CoverageReport, error)
	TrainingLocations(ctx context.Context, actor domain.Actor) ([]domain.TrainingLocation, error)
	Gaps(ctx context.Context, actor domain.Actor) (*domain.GapReport, error)
}

type EmailService interface {
	SendPartnerStatusNotification(ctx context.Context, toEmail, orgName string, status domain.RegistrationStatus, reason string) error
	SendTrainingStatusNotification(ctx context.Context, toEmail, trainingTitle string, status domain.TrainingStatus, reason string) error
	SendPendingTrainingsReminder(ctx context.Context, toEmail string, pendingCount int32) error
}
