package repository

import (
	"context"
	"time"

	"training-portal-backend/internal/domain"
)

type TrainingRepository interface {
	Create(ctx context.Context, t *domain.TrainingEvent) error
	GetByID(ctx context.Context, id int32) (*domain.TrainingEvent, error)
	Update(ctx context.Context, t *domain.TrainingEvent) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter domain.TrainingFilter, page, pageSize int32) ([]domain.TrainingEvent, int32, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.TrainingEvent, error)
}

type ParticipantRepository interface {
	CreateMany(ctx context.Context, participants []domain.Participant) error
	ListByTraining(ctx context.Context, trainingID int32) ([]domain.Participant, error)
	// ReplaceForTraining deletes every participant of the training and inserts
	// the new set in a single transaction.
	ReplaceForTraining(ctx context.Context, trainingID int32, participants []domain.Participant) error
	// FindFirstByAadhaar returns the first matching participant or nil.
	FindFirstByAadhaar(ctx context.Context, aadhaar string) (*domain.Participant, error)
	CountOrphaned(ctx context.Context) (int32, error)
}

type PartnerRepository interface {
	Create(ctx context.Context, p *domain.Partner) error
	GetByID(ctx context.Context, id int32) (*domain.Partner, error)
	GetByUserID(ctx context.Context, userID int32) (*domain.Partner, error)
	Update(ctx context.Context, p *domain.Partner) error
	List(ctx context.Context, status domain.RegistrationStatus, page, pageSize int32) ([]domain.Partner, int32, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetPartnerID(ctx context.Context, userID, partnerID int32) error
	ListAdmins(ctx context.Context) ([]domain.User, error)
}

// AnalyticsRepository serves the read-only aggregate queries behind the admin
// dashboard and coverage reports. All of them consider approved trainings only.
type AnalyticsRepository interface {
	CountTrainingsByStatus(ctx context.Context, status domain.TrainingStatus) (int32, error)
	CountPartnersByRegistration(ctx context.Context, status domain.RegistrationStatus) (int32, error)
	DistinctApprovedStates(ctx context.Context) ([]string, error)
	SumApprovedParticipants(ctx context.Context) (int32, error)
	RecentApprovedTrainings(ctx context.Context, limit int32) ([]domain.TrainingEvent, error)
	ApprovedCountByTheme(ctx context.Context) (map[string]int32, error)
	ApprovedCountByState(ctx context.Context) ([]domain.StateCoverage, error)
	ApprovedBreakdownTotals(ctx context.Context) (domain.ParticipantBreakdown, error)
	ApprovedTrainingLocations(ctx context.Context) ([]domain.TrainingLocation, error)
	LowCoverageDistricts(ctx context.Context, limit int32) ([]domain.DistrictCoverage, error)
}
