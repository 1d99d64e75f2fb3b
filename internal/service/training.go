package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/logger"
	"training-portal-backend/internal/repository"
)

// WorkflowPolicy tunes the training state machine.
type WorkflowPolicy struct {
	// StrictTransitions makes APPROVED and REJECTED terminal: re-deciding an
	// already decided training fails with a conflict. When false the second
	// decision silently overwrites the first, which is what the workflow has
	// historically done.
	StrictTransitions bool
}

type trainingService struct {
	trainingRepo    repository.TrainingRepository
	participantRepo repository.ParticipantRepository
	partnerRepo     repository.PartnerRepository
	emailSvc        EmailService
	policy          WorkflowPolicy
}

func NewTrainingService(
	trainingRepo repository.TrainingRepository,
	participantRepo repository.ParticipantRepository,
	partnerRepo repository.PartnerRepository,
	emailSvc EmailService,
	policy WorkflowPolicy,
) TrainingService {
	return &trainingService{
		trainingRepo:    trainingRepo,
		participantRepo: participantRepo,
		partnerRepo:     partnerRepo,
		emailSvc:        emailSvc,
		policy:          policy,
	}
}

func (s *trainingService) Submit(ctx context.Context, actor domain.Actor, input SubmitTrainingInput) (*domain.TrainingEvent, error) {
	if actor.Role != domain.RolePartner {
		return nil, domain.NewAuthorizationError("only partners can submit trainings")
	}

	partner, err := s.requireActivePartner(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	if err := validateRequiredEventFields(input.Title, input.Theme, input.StartDate, input.EndDate, input.State, input.City); err != nil {
		return nil, err
	}
	if len(input.Participants) == 0 {
		return nil, domain.NewValidationError("participants", "at least one participant is required")
	}
	if err := validateParticipants(input.Participants); err != nil {
		return nil, err
	}

	training := &domain.TrainingEvent{
		Title:       input.Title,
		Theme:       input.Theme,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Location: domain.Location{
			State:     input.State,
			District:  input.District,
			City:      input.City,
			Pincode:   input.Pincode,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		TrainerName:          input.TrainerName,
		TrainerEmail:         input.TrainerEmail,
		ParticipantsCount:    input.ParticipantsCount,
		ParticipantBreakdown: input.ParticipantBreakdown,
		Photos:               input.Photos,
		AttendanceSheet:      input.AttendanceSheet,
		Status:               domain.TrainingStatusPending,
		PartnerID:            partner.ID,
	}

	if err := s.trainingRepo.Create(ctx, training); err != nil {
		return nil, fmt.Errorf("failed to create training: %w", err)
	}

	participants := stampParticipants(input.Participants, training, partner.OrganizationName)
	if err := s.participantRepo.CreateMany(ctx, participants); err != nil {
		// Compensating delete so a half-submitted training does not linger.
		if delErr := s.trainingRepo.Delete(ctx, training.ID); delErr != nil {
			logger.Error("failed to roll back training after participant insert failure",
				"training_id", training.ID, "error", delErr)
		}
		return nil, fmt.Errorf("failed to save participants: %w", err)
	}

	return training, nil
}

func (s *trainingService) AdminCreate(ctx context.Context, actor domain.Actor, input AdminCreateTrainingInput) (*domain.TrainingEvent, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewAuthorizationError("only admins can create trainings directly")
	}
	if input.PartnerID == 0 {
		return nil, domain.NewValidationError("partner_id", "partner id is required")
	}
	if err := validateRequiredEventFields(input.Title, input.Theme, input.StartDate, input.EndDate, input.State, input.City); err != nil {
		return nil, err
	}
	if _, err := s.partnerRepo.GetByID(ctx, input.PartnerID); err != nil {
		return nil, err
	}

	now := time.Now()
	adminID := actor.UserID
	training := &domain.TrainingEvent{
		Title:       input.Title,
		Theme:       input.Theme,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Location: domain.Location{
			State:     input.State,
			District:  input.District,
			City:      input.City,
			Pincode:   input.Pincode,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		TrainerName:          input.TrainerName,
		TrainerEmail:         input.TrainerEmail,
		ParticipantsCount:    input.ParticipantsCount,
		ParticipantBreakdown: input.ParticipantBreakdown,
		Status:               domain.TrainingStatusApproved,
		PartnerID:            input.PartnerID,
		ApprovedAt:           &now,
		ApprovedBy:           &adminID,
	}

	if err := s.trainingRepo.Create(ctx, training); err != nil {
		return nil, fmt.Errorf("failed to create training: %w", err)
	}
	return training, nil
}

func (s *trainingService) Get(ctx context.Context, id int32) (*domain.TrainingEvent, []domain.Participant, error) {
	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	participants, err := s.participantRepo.ListByTraining(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return training, participants, nil
}

func (s *trainingService) List(ctx context.Context, filter domain.TrainingFilter, page, pageSize int32) ([]domain.TrainingEvent, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	return s.trainingRepo.List(ctx, filter, page, pageSize)
}

func (s *trainingService) Update(ctx context.Context, actor domain.Actor, id int32, patch UpdateTrainingInput) (*domain.TrainingEvent, []domain.Participant, error) {
	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	partner, err := s.authorizeOwnerOrAdmin(ctx, actor, training)
	if err != nil {
		return nil, nil, err
	}

	applyPatch(training, patch)

	if patch.Participants != nil {
		if err := validateParticipants(patch.Participants); err != nil {
			return nil, nil, err
		}
	}

	if err := s.trainingRepo.Update(ctx, training); err != nil {
		return nil, nil, fmt.Errorf("failed to update training: %w", err)
	}

	if patch.Participants != nil {
		orgName, err := s.resolveOrganizationName(ctx, partner, training.PartnerID)
		if err != nil {
			return nil, nil, err
		}
		// Full replace: every prior row goes, the new roster is re-stamped
		// with the post-patch snapshot.
		participants := stampParticipants(patch.Participants, training, orgName)
		if err := s.participantRepo.ReplaceForTraining(ctx, training.ID, participants); err != nil {
			return nil, nil, fmt.Errorf("failed to replace participants: %w", err)
		}
	}

	participants, err := s.participantRepo.ListByTraining(ctx, training.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return training, participants, nil
}

func (s *trainingService) Transition(ctx context.Context, actor domain.Actor, id int32, target domain.TrainingStatus, reason string) (*domain.TrainingEvent, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewAuthorizationError("only admins can change training status")
	}
	if target != domain.TrainingStatusApproved && target != domain.TrainingStatusRejected {
		return nil, domain.NewValidationError("status", fmt.Sprintf("invalid target status: %s", target))
	}
	if target == domain.TrainingStatusRejected && strings.TrimSpace(reason) == "" {
		return nil, domain.NewValidationError("reason", "a rejection reason is required")
	}

	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.policy.StrictTransitions && training.Status != domain.TrainingStatusPending {
		return nil, domain.NewConflictError(fmt.Sprintf("training %d is already %s", id, training.Status))
	}

	switch target {
	case domain.TrainingStatusApproved:
		now := time.Now()
		adminID := actor.UserID
		training.Status = domain.TrainingStatusApproved
		training.ApprovedAt = &now
		training.ApprovedBy = &adminID
		training.RejectionReason = ""
	case domain.TrainingStatusRejected:
		training.Status = domain.TrainingStatusRejected
		training.RejectionReason = reason
		training.ApprovedAt = nil
		training.ApprovedBy = nil
	}

	if err := s.trainingRepo.Update(ctx, training); err != nil {
		return nil, fmt.Errorf("failed to update training status: %w", err)
	}

	s.notifyPartner(ctx, training)

	return training, nil
}

func (s *trainingService) Delete(ctx context.Context, actor domain.Actor, id int32) error {
	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.authorizeOwnerOrAdmin(ctx, actor, training); err != nil {
		return err
	}
	// Participants and stored media are intentionally left behind; see the
	// verification snapshot contract and the orphan report job.
	return s.trainingRepo.Delete(ctx, id)
}

// requireActivePartner resolves the actor's partner record and checks both
// status axes: registration must be approved and the account not blocked.
func (s *trainingService) requireActivePartner(ctx context.Context, userID int32) (*domain.Partner, error) {
	partner, err := s.partnerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if partner.AccountStatus == domain.AccountBlocked {
		return nil, domain.NewAuthorizationError("partner account is blocked")
	}
	if partner.RegistrationStatus != domain.RegistrationApproved {
		return nil, domain.NewAuthorizationError("partner registration is not approved")
	}
	return partner, nil
}

// authorizeOwnerOrAdmin returns the acting partner for partner actors (nil
// for admins) after checking ownership and account status.
func (s *trainingService) authorizeOwnerOrAdmin(ctx context.Context, actor domain.Actor, training *domain.TrainingEvent) (*domain.Partner, error) {
	if actor.IsAdmin() {
		return nil, nil
	}
	partner, err := s.requireActivePartner(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if partner.ID != training.PartnerID {
		return nil, domain.NewAuthorizationError("not authorized to modify this training")
	}
	return partner, nil
}

func (s *trainingService) resolveOrganizationName(ctx context.Context, actingPartner *domain.Partner, partnerID int32) (string, error) {
	if actingPartner != nil {
		return actingPartner.OrganizationName, nil
	}
	partner, err := s.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return "", err
	}
	return partner.OrganizationName, nil
}

// notifyPartner emails the owning partner about a status decision. Failures
// are logged and swallowed; notification is not part of the contract.
func (s *trainingService) notifyPartner(ctx context.Context, training *domain.TrainingEvent) {
	partner, err := s.partnerRepo.GetByID(ctx, training.PartnerID)
	if err != nil || partner.Email == "" {
		return
	}
	if err := s.emailSvc.SendTrainingStatusNotification(ctx, partner.Email, training.Title, training.Status, training.RejectionReason); err != nil {
		logger.Warn("failed to send training status notification",
			"training_id", training.ID, "partner_id", partner.ID, "error", err)
	}
}

func validateRequiredEventFields(title, theme, startDate, endDate, state, city string) error {
	required := []struct {
		field, value string
	}{
		{"title", title},
		{"theme", theme},
		{"start_date", startDate},
		{"end_date", endDate},
		{"state", state},
		{"city", city},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return domain.NewValidationError(f.field, "is required")
		}
	}
	return nil
}

func validateParticipants(participants []ParticipantInput) error {
	for i, p := range participants {
		if strings.TrimSpace(p.FullName) == "" {
			return domain.NewValidationError(fmt.Sprintf("participants[%d].full_name", i), "is required")
		}
		if !domain.ValidAadhaar(p.AadhaarNumber) {
			return domain.NewValidationError(fmt.Sprintf("participants[%d].aadhaar_number", i), "must be exactly 12 digits")
		}
		if !domain.ValidEmail(p.Email) {
			return domain.NewValidationError(fmt.Sprintf("participants[%d].email", i), "must be a valid email address")
		}
		if !domain.ValidPhone(p.Phone) {
			return domain.NewValidationError(fmt.Sprintf("participants[%d].phone", i), "must be exactly 10 digits")
		}
	}
	return nil
}

// stampParticipants freezes the event metadata onto each roster entry and
// marks certificates as issued. Issuance happens at submission time, not at
// approval; see the workflow notes in DESIGN.md.
func stampParticipants(inputs []ParticipantInput, training *domain.TrainingEvent, organization string) []domain.Participant {
	now := time.Now()
	participants := make([]domain.Participant, 0, len(inputs))
	for _, in := range inputs {
		participants = append(participants, domain.Participant{
			FullName:      in.FullName,
			AadhaarNumber: in.AadhaarNumber,
			Email:         in.Email,
			Phone:         in.Phone,
			TrainingID:    training.ID,
			Training: domain.TrainingSnapshot{
				Title: training.Title,
				Theme: training.Theme,
				Dates: domain.TrainingDates{
					Start: training.StartDate,
					End:   training.EndDate,
				},
				Organization: organization,
			},
			CertificateIssued:   true,
			CertificateIssuedAt: &now,
		})
	}
	return participants
}

func applyPatch(t *domain.TrainingEvent, patch UpdateTrainingInput) {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Theme != nil {
		t.Theme = *patch.Theme
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.StartDate != nil {
		t.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		t.EndDate = *patch.EndDate
	}
	if patch.State != nil {
		t.Location.State = *patch.State
	}
	if patch.District != nil {
		t.Location.District = *patch.District
	}
	if patch.City != nil {
		t.Location.City = *patch.City
	}
	if patch.Pincode != nil {
		t.Location.Pincode = *patch.Pincode
	}
	if patch.Latitude != nil {
		t.Location.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		t.Location.Longitude = patch.Longitude
	}
	if patch.TrainerName != nil {
		t.TrainerName = *patch.TrainerName
	}
	if patch.TrainerEmail != nil {
		t.TrainerEmail = *patch.TrainerEmail
	}
	if patch.ParticipantsCount != nil {
		t.ParticipantsCount = *patch.ParticipantsCount
	}
	if patch.ParticipantBreakdown != nil {
		t.ParticipantBreakdown = *patch.ParticipantBreakdown
	}
	if patch.Photos != nil {
		// Full replace; stored objects dropped from the list are reconciled
		// by the caller through the upload endpoints.
		t.Photos = patch.Photos
	}
	if patch.ClearAttendanceSheet {
		t.AttendanceSheet = nil
	} else if patch.AttendanceSheet != nil {
		t.AttendanceSheet = patch.AttendanceSheet
	}
}
