package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/security"
)

// MockTrainingRepo
type MockTrainingRepo struct {
	mock.Mock
}

func (m *MockTrainingRepo) Create(ctx context.Context, t *domain.TrainingEvent) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTrainingRepo) GetByID(ctx context.Context, id int32) (*domain.TrainingEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingEvent), args.Error(1)
}
func (m *MockTrainingRepo) Update(ctx context.Context, t *domain.TrainingEvent) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTrainingRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTrainingRepo) List(ctx context.Context, filter domain.TrainingFilter, page, pageSize int32) ([]domain.TrainingEvent, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.TrainingEvent), args.Get(1).(int32), args.Error(2)
}
func (m *MockTrainingRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.TrainingEvent, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.TrainingEvent), args.Error(1)
}

// MockParticipantRepo
type MockParticipantRepo struct {
	mock.Mock
}

func (m *MockParticipantRepo) CreateMany(ctx context.Context, participants []domain.Participant) error {
	args := m.Called(ctx, participants)
	return args.Error(0)
}
func (m *MockParticipantRepo) ListByTraining(ctx context.Context, trainingID int32) ([]domain.Participant, error) {
	args := m.Called(ctx, trainingID)
	return args.Get(0).([]domain.Participant), args.Error(1)
}
func (m *MockParticipantRepo) ReplaceForTraining(ctx context.Context, trainingID int32, participants []domain.Participant) error {
	args := m.Called(ctx, trainingID, participants)
	return args.Error(0)
}
func (m *MockParticipantRepo) FindFirstByAadhaar(ctx context.Context, aadhaar string) (*domain.Participant, error) {
	args := m.Called(ctx, aadhaar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}
func (m *MockParticipantRepo) CountOrphaned(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockPartnerRepo
type MockPartnerRepo struct {
	mock.Mock
}

func (m *MockPartnerRepo) Create(ctx context.Context, p *domain.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPartnerRepo) GetByID(ctx context.Context, id int32) (*domain.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerRepo) GetByUserID(ctx context.Context, userID int32) (*domain.Partner, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerRepo) Update(ctx context.Context, p *domain.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPartnerRepo) List(ctx context.Context, status domain.RegistrationStatus, page, pageSize int32) ([]domain.Partner, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Partner), args.Get(1).(int32), args.Error(2)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) SetPartnerID(ctx context.Context, userID, partnerID int32) error {
	args := m.Called(ctx, userID, partnerID)
	return args.Error(0)
}
func (m *MockUserRepo) ListAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockAnalyticsRepo
type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) CountTrainingsByStatus(ctx context.Context, status domain.TrainingStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockAnalyticsRepo) CountPartnersByRegistration(ctx context.Context, status domain.RegistrationStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockAnalyticsRepo) DistinctApprovedStates(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockAnalyticsRepo) SumApprovedParticipants(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockAnalyticsRepo) RecentApprovedTrainings(ctx context.Context, limit int32) ([]domain.TrainingEvent, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.TrainingEvent), args.Error(1)
}
func (m *MockAnalyticsRepo) ApprovedCountByTheme(ctx context.Context) (map[string]int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int32), args.Error(1)
}
func (m *MockAnalyticsRepo) ApprovedCountByState(ctx context.Context) ([]domain.StateCoverage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.StateCoverage), args.Error(1)
}
func (m *MockAnalyticsRepo) ApprovedBreakdownTotals(ctx context.Context) (domain.ParticipantBreakdown, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ParticipantBreakdown), args.Error(1)
}
func (m *MockAnalyticsRepo) ApprovedTrainingLocations(ctx context.Context) ([]domain.TrainingLocation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TrainingLocation), args.Error(1)
}
func (m *MockAnalyticsRepo) LowCoverageDistricts(ctx context.Context, limit int32) ([]domain.DistrictCoverage, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.DistrictCoverage), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPartnerStatusNotification(ctx context.Context, toEmail, orgName string, status domain.RegistrationStatus, reason string) error {
	args := m.Called(ctx, toEmail, orgName, status, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendTrainingStatusNotification(ctx context.Context, toEmail, trainingTitle string, status domain.TrainingStatus, reason string) error {
	args := m.Called(ctx, toEmail, trainingTitle, status, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingTrainingsReminder(ctx context.Context, toEmail string, pendingCount int32) error {
	args := m.Called(ctx, toEmail, pendingCount)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateToken(userID int32, email string, role domain.Role) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
