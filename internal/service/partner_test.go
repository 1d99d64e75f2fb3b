package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/service"
)

func validRegisterInput() service.RegisterPartnerInput {
	return service.RegisterPartnerInput{
		Email:            "new@partner.org",
		Password:         "secret12345",
		OrganizationName: "New Partner Org",
		ContactPerson:    "Asha Verma",
		Phone:            "9876543210",
		State:            "Gujarat",
	}
}

func TestPartnerService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates pending partner with linked user", func(t *testing.T) {
		partnerRepo := new(MockPartnerRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewPartnerService(partnerRepo, userRepo, new(MockEmailService))

		userRepo.On("GetByEmail", ctx, "new@partner.org").Return(nil, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 11
			}).Return(nil)
		partnerRepo.On("Create", ctx, mock.AnythingOfType("*domain.Partner")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Partner).ID = 21
			}).Return(nil)
		userRepo.On("SetPartnerID", ctx, int32(11), int32(21)).Return(nil)

		partner, err := svc.Register(ctx, validRegisterInput())
		assert.NoError(t, err)
		assert.Equal(t, domain.RegistrationPending, partner.RegistrationStatus)
		assert.Equal(t, domain.AccountActive, partner.AccountStatus)
		assert.Equal(t, int32(11), partner.UserID)
		assert.False(t, partner.CanAct())

		createdUser := userRepo.Calls[1].Arguments.Get(1).(*domain.User)
		assert.Equal(t, domain.RolePartner, createdUser.Role)
		assert.NotEqual(t, "secret12345", createdUser.PasswordHash)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewPartnerService(new(MockPartnerRepo), userRepo, new(MockEmailService))

		userRepo.On("GetByEmail", ctx, "new@partner.org").Return(&domain.User{ID: 1}, nil)

		_, err := svc.Register(ctx, validRegisterInput())
		var conflictErr *domain.ConflictError
		assert.ErrorAs(t, err, &conflictErr)
	})

	t.Run("Short password", func(t *testing.T) {
		svc := service.NewPartnerService(new(MockPartnerRepo), new(MockUserRepo), new(MockEmailService))

		input := validRegisterInput()
		input.Password = "short"
		_, err := svc.Register(ctx, input)
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})
}

func TestPartnerService_ApproveReject(t *testing.T) {
	ctx := context.Background()
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	pendingPartner := func() *domain.Partner {
		return &domain.Partner{
			ID:                 21,
			OrganizationName:   "New Partner Org",
			Email:              "new@partner.org",
			RegistrationStatus: domain.RegistrationPending,
			AccountStatus:      domain.AccountActive,
			UserID:             11,
		}
	}

	t.Run("Approve stamps and notifies", func(t *testing.T) {
		partnerRepo := new(MockPartnerRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewPartnerService(partnerRepo, new(MockUserRepo), emailSvc)

		partnerRepo.On("GetByID", ctx, int32(21)).Return(pendingPartner(), nil)
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*domain.Partner")).Return(nil)
		emailSvc.On("SendPartnerStatusNotification", ctx, "new@partner.org", "New Partner Org",
			domain.RegistrationApproved, "").Return(nil)

		partner, err := svc.Approve(ctx, admin, 21)
		assert.NoError(t, err)
		assert.Equal(t, domain.RegistrationApproved, partner.RegistrationStatus)
		assert.NotNil(t, partner.ApprovedAt)
		assert.True(t, partner.CanAct())
	})

	t.Run("Reject requires reason", func(t *testing.T) {
		svc := service.NewPartnerService(new(MockPartnerRepo), new(MockUserRepo), new(MockEmailService))

		_, err := svc.Reject(ctx, admin, 21, "")
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("Reject records reason", func(t *testing.T) {
		partnerRepo := new(MockPartnerRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewPartnerService(partnerRepo, new(MockUserRepo), emailSvc)

		partnerRepo.On("GetByID", ctx, int32(21)).Return(pendingPartner(), nil)
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*domain.Partner")).Return(nil)
		emailSvc.On("SendPartnerStatusNotification", ctx, "new@partner.org", "New Partner Org",
			domain.RegistrationRejected, "incomplete documentation").Return(nil)

		partner, err := svc.Reject(ctx, admin, 21, "incomplete documentation")
		assert.NoError(t, err)
		assert.Equal(t, domain.RegistrationRejected, partner.RegistrationStatus)
		assert.Equal(t, "incomplete documentation", partner.RejectionReason)
		assert.False(t, partner.CanAct())
	})

	t.Run("Non-admin forbidden", func(t *testing.T) {
		svc := service.NewPartnerService(new(MockPartnerRepo), new(MockUserRepo), new(MockEmailService))

		_, err := svc.Approve(ctx, domain.Actor{UserID: 11, Role: domain.RolePartner}, 21)
		var authErr *domain.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
	})
}

func TestPartnerService_SetAccountStatus(t *testing.T) {
	ctx := context.Background()
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	t.Run("Block leaves registration untouched", func(t *testing.T) {
		partnerRepo := new(MockPartnerRepo)
		svc := service.NewPartnerService(partnerRepo, new(MockUserRepo), new(MockEmailService))

		approved := &domain.Partner{
			ID:                 21,
			RegistrationStatus: domain.RegistrationApproved,
			AccountStatus:      domain.AccountActive,
		}
		partnerRepo.On("GetByID", ctx, int32(21)).Return(approved, nil)
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*domain.Partner")).Return(nil)

		partner, err := svc.SetAccountStatus(ctx, admin, 21, domain.AccountBlocked)
		assert.NoError(t, err)
		assert.Equal(t, domain.AccountBlocked, partner.AccountStatus)
		assert.Equal(t, domain.RegistrationApproved, partner.RegistrationStatus)
		assert.False(t, partner.CanAct())
	})

	t.Run("Unblock does not re-approve a rejected registration", func(t *testing.T) {
		partnerRepo := new(MockPartnerRepo)
		svc := service.NewPartnerService(partnerRepo, new(MockUserRepo), new(MockEmailService))

		rejected := &domain.Partner{
			ID:                 21,
			RegistrationStatus: domain.RegistrationRejected,
			AccountStatus:      domain.AccountBlocked,
		}
		partnerRepo.On("GetByID", ctx, int32(21)).Return(rejected, nil)
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*domain.Partner")).Return(nil)

		partner, err := svc.SetAccountStatus(ctx, admin, 21, domain.AccountActive)
		assert.NoError(t, err)
		assert.Equal(t, domain.AccountActive, partner.AccountStatus)
		assert.Equal(t, domain.RegistrationRejected, partner.RegistrationStatus)
		assert.False(t, partner.CanAct())
	})

	t.Run("Invalid status value", func(t *testing.T) {
		svc := service.NewPartnerService(new(MockPartnerRepo), new(MockUserRepo), new(MockEmailService))

		_, err := svc.SetAccountStatus(ctx, admin, 21, domain.AccountStatus("SUSPENDED"))
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})
}
