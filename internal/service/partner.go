package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/logger"
	"training-portal-backend/internal/repository"
)

type partnerService struct {
	partnerRepo repository.PartnerRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewPartnerService(partnerRepo repository.PartnerRepository, userRepo repository.UserRepository, emailSvc EmailService) PartnerService {
	return &partnerService{
		partnerRepo: partnerRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

// Register creates the login credential and a PENDING partner record in one
// call. The partner cannot act until an admin approves the registration.
func (s *partnerService) Register(ctx context.Context, input RegisterPartnerInput) (*domain.Partner, error) {
	if !domain.ValidEmail(input.Email) {
		return nil, domain.NewValidationError("email", "must be a valid email address")
	}
	if len(input.Password) < 8 {
		return nil, domain.NewValidationError("password", "must be at least 8 characters")
	}
	if strings.TrimSpace(input.OrganizationName) == "" {
		return nil, domain.NewValidationError("organization_name", "is required")
	}
	if strings.TrimSpace(input.ContactPerson) == "" {
		return nil, domain.NewValidationError("contact_person", "is required")
	}
	if input.Phone != "" && !domain.ValidPhone(input.Phone) {
		return nil, domain.NewValidationError("phone", "must be exactly 10 digits")
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RolePartner,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	partner := &domain.Partner{
		OrganizationName:   input.OrganizationName,
		OrganizationType:   input.OrganizationType,
		ContactPerson:      input.ContactPerson,
		Email:              input.Email,
		Phone:              input.Phone,
		State:              input.State,
		District:           input.District,
		Address:            input.Address,
		RegistrationStatus: domain.RegistrationPending,
		AccountStatus:      domain.AccountActive,
		UserID:             user.ID,
	}
	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}
	if err := s.userRepo.SetPartnerID(ctx, user.ID, partner.ID); err != nil {
		return nil, fmt.Errorf("failed to link user to partner: %w", err)
	}

	return partner, nil
}

func (s *partnerService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Partner, error) {
	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && partner.UserID != actor.UserID {
		return nil, domain.NewAuthorizationError("not authorized to view this partner")
	}
	return partner, nil
}

func (s *partnerService) List(ctx context.Context, actor domain.Actor, status domain.RegistrationStatus, page, pageSize int32) ([]domain.Partner, int32, error) {
	if !actor.IsAdmin() {
		return nil, 0, domain.NewAuthorizationError("only admins can list partners")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	return s.partnerRepo.List(ctx, status, page, pageSize)
}

func (s *partnerService) Approve(ctx context.Context, actor domain.Actor, id int32) (*domain.Partner, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewAuthorizationError("only admins can approve partners")
	}
	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	adminID := actor.UserID
	partner.RegistrationStatus = domain.RegistrationApproved
	partner.RejectionReason = ""
	partner.ApprovedAt = &now
	partner.ApprovedBy = &adminID
	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to approve partner: %w", err)
	}

	s.notify(ctx, partner)
	return partner, nil
}

func (s *partnerService) Reject(ctx context.Context, actor domain.Actor, id int32, reason string) (*domain.Partner, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewAuthorizationError("only admins can reject partners")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, domain.NewValidationError("reason", "a rejection reason is required")
	}
	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	partner.RegistrationStatus = domain.RegistrationRejected
	partner.RejectionReason = reason
	partner.ApprovedAt = nil
	partner.ApprovedBy = nil
	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to reject partner: %w", err)
	}

	s.notify(ctx, partner)
	return partner, nil
}

// SetAccountStatus blocks or unblocks a partner account. It does not touch
// the registration status; unblocking a rejected partner leaves it rejected.
func (s *partnerService) SetAccountStatus(ctx context.Context, actor domain.Actor, id int32, status domain.AccountStatus) (*domain.Partner, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewAuthorizationError("only admins can block or unblock partners")
	}
	if status != domain.AccountActive && status != domain.AccountBlocked {
		return nil, domain.NewValidationError("account_status", fmt.Sprintf("invalid account status: %s", status))
	}
	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	partner.AccountStatus = status
	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to update account status: %w", err)
	}
	return partner, nil
}

func (s *partnerService) notify(ctx context.Context, partner *domain.Partner) {
	if partner.Email == "" {
		return
	}
	if err := s.emailSvc.SendPartnerStatusNotification(ctx, partner.Email, partner.OrganizationName, partner.RegistrationStatus, partner.RejectionReason); err != nil {
		logger.Warn("failed to send partner status notification",
			"partner_id", partner.ID, "error", err)
	}
}
