package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/service"
	"training-portal-backend/internal/storage"
)

// MockTrainingService
type MockTrainingService struct {
	mock.Mock
}

func (m *MockTrainingService) Submit(ctx context.Context, actor domain.Actor, input service.SubmitTrainingInput) (*domain.TrainingEvent, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingEvent), args.Error(1)
}
func (m *MockTrainingService) AdminCreate(ctx context.Context, actor domain.Actor, input service.AdminCreateTrainingInput) (*domain.TrainingEvent, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingEvent), args.Error(1)
}
func (m *MockTrainingService) Get(ctx context.Context, id int32) (*domain.TrainingEvent, []domain.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.TrainingEvent), args.Get(1).([]domain.Participant), args.Error(2)
}
func (m *MockTrainingService) List(ctx context.Context, filter domain.TrainingFilter, page, pageSize int32) ([]domain.TrainingEvent, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.TrainingEvent), args.Get(1).(int32), args.Error(2)
}
func (m *MockTrainingService) Update(ctx context.Context, actor domain.Actor, id int32, patch service.UpdateTrainingInput) (*domain.TrainingEvent, []domain.Participant, error) {
	args := m.Called(ctx, actor, id, patch)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.TrainingEvent), args.Get(1).([]domain.Participant), args.Error(2)
}
func (m *MockTrainingService) Transition(ctx context.Context, actor domain.Actor, id int32, target domain.TrainingStatus, reason string) (*domain.TrainingEvent, error) {
	args := m.Called(ctx, actor, id, target, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingEvent), args.Error(1)
}
func (m *MockTrainingService) Delete(ctx context.Context, actor domain.Actor, id int32) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

// MockVerificationService
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) VerifyByAadhaar(ctx context.Context, aadhaar string) (*domain.VerificationResult, error) {
	args := m.Called(ctx, aadhaar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationResult), args.Error(1)
}

// MockPartnerService
type MockPartnerService struct {
	mock.Mock
}

func (m *MockPartnerService) Register(ctx context.Context, input service.RegisterPartnerInput) (*domain.Partner, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Partner, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerService) List(ctx context.Context, actor domain.Actor, status domain.RegistrationStatus, page, pageSize int32) ([]domain.Partner, int32, error) {
	args := m.Called(ctx, actor, status, page, pageSize)
	return args.Get(0).([]domain.Partner), args.Get(1).(int32), args.Error(2)
}
func (m *MockPartnerService) Approve(ctx context.Context, actor domain.Actor, id int32) (*domain.Partner, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerService) Reject(ctx context.Context, actor domain.Actor, id int32, reason string) (*domain.Partner, error) {
	args := m.Called(ctx, actor, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}
func (m *MockPartnerService) SetAccountStatus(ctx context.Context, actor domain.Actor, id int32, status domain.AccountStatus) (*domain.Partner, error) {
	args := m.Called(ctx, actor, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string, role domain.Role) (*domain.User, *domain.Partner, string, error) {
	args := m.Called(ctx, email, password, role)
	var user *domain.User
	var partner *domain.Partner
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	if args.Get(1) != nil {
		partner = args.Get(1).(*domain.Partner)
	}
	return user, partner, args.String(2), args.Error(3)
}

// MockAnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Dashboard(ctx context.Context, actor domain.Actor) (*domain.DashboardStats, []domain.TrainingEvent, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.DashboardStats), args.Get(1).([]domain.TrainingEvent), args.Error(2)
}
func (m *MockAnalyticsService) Coverage(ctx context.Context, actor domain.Actor) (*domain.CoverageReport, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoverageReport), args.Error(1)
}
func (m *MockAnalyticsService) TrainingLocations(ctx context.Context, actor domain.Actor) ([]domain.TrainingLocation, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.TrainingLocation), args.Error(1)
}
func (m *MockAnalyticsService) Gaps(ctx context.Context, actor domain.Actor) (*domain.GapReport, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GapReport), args.Error(1)
}

// MockObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, file storage.File, folder string) (*storage.ObjectInfo, error) {
	args := m.Called(ctx, file, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.ObjectInfo), args.Error(1)
}
func (m *MockObjectStorage) UploadMany(ctx context.Context, files []storage.File, folder string) ([]storage.ObjectInfo, error) {
	args := m.Called(ctx, files, folder)
	return args.Get(0).([]storage.ObjectInfo), args.Error(1)
}
func (m *MockObjectStorage) Delete(ctx context.Context, publicID string) (storage.DeleteResult, error) {
	args := m.Called(ctx, publicID)
	return args.Get(0).(storage.DeleteResult), args.Error(1)
}
func (m *MockObjectStorage) DeleteMany(ctx context.Context, publicIDs []string) ([]storage.DeleteResult, error) {
	args := m.Called(ctx, publicIDs)
	return args.Get(0).([]storage.DeleteResult), args.Error(1)
}
