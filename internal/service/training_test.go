package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/service"
)

func activePartner() *domain.Partner {
	return &domain.Partner{
		ID:                 7,
		OrganizationName:   "Resilience Foundation",
		Email:              "contact@resilience.org",
		RegistrationStatus: domain.RegistrationApproved,
		AccountStatus:      domain.AccountActive,
		UserID:             42,
	}
}

func validSubmitInput() service.SubmitTrainingInput {
	return service.SubmitTrainingInput{
		Title:     "Flood Preparedness Workshop",
		Theme:     "Flood Management",
		StartDate: "2026-01-12",
		EndDate:   "2026-01-13",
		State:     "Kerala",
		City:      "Kochi",
		Participants: []service.ParticipantInput{
			{FullName: "Arun Kumar", AadhaarNumber: "123412341234", Email: "arun@example.com", Phone: "9000000001"},
		},
	}
}

func newTrainingService(trainingRepo *MockTrainingRepo, participantRepo *MockParticipantRepo, partnerRepo *MockPartnerRepo, emailSvc *MockEmailService, strict bool) service.TrainingService {
	return service.NewTrainingService(trainingRepo, participantRepo, partnerRepo, emailSvc,
		service.WorkflowPolicy{StrictTransitions: strict})
}

func TestTrainingService_Submit(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{UserID: 42, Role: domain.RolePartner}

	t.Run("Success", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		participantRepo := new(MockParticipantRepo)
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(trainingRepo, participantRepo, partnerRepo, new(MockEmailService), false)

		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(activePartner(), nil)
		trainingRepo.On("Create", ctx, mock.AnythingOfType("*domain.TrainingEvent")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.TrainingEvent).ID = 99
			}).Return(nil)
		participantRepo.On("CreateMany", ctx, mock.AnythingOfType("[]domain.Participant")).Return(nil)

		training, err := svc.Submit(ctx, actor, validSubmitInput())
		assert.NoError(t, err)
		assert.Equal(t, domain.TrainingStatusPending, training.Status)
		assert.Equal(t, int32(7), training.PartnerID)
		assert.Nil(t, training.ApprovedAt)

		// Participants carry the frozen snapshot and an issued certificate.
		saved := participantRepo.Calls[0].Arguments.Get(1).([]domain.Participant)
		assert.Len(t, saved, 1)
		assert.Equal(t, int32(99), saved[0].TrainingID)
		assert.Equal(t, "Flood Preparedness Workshop", saved[0].Training.Title)
		assert.Equal(t, "Resilience Foundation", saved[0].Training.Organization)
		assert.Equal(t, "2026-01-12", saved[0].Training.Dates.Start)
		assert.True(t, saved[0].CertificateIssued)
		assert.NotNil(t, saved[0].CertificateIssuedAt)
	})

	t.Run("Blocked partner", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(trainingRepo, new(MockParticipantRepo), partnerRepo, new(MockEmailService), false)

		blocked := activePartner()
		blocked.AccountStatus = domain.AccountBlocked
		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(blocked, nil)

		_, err := svc.Submit(ctx, actor, validSubmitInput())
		var authErr *domain.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
		trainingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unapproved partner", func(t *testing.T) {
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(new(MockTrainingRepo), new(MockParticipantRepo), partnerRepo, new(MockEmailService), false)

		pending := activePartner()
		pending.RegistrationStatus = domain.RegistrationPending
		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(pending, nil)

		_, err := svc.Submit(ctx, actor, validSubmitInput())
		var authErr *domain.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
	})

	t.Run("Admin cannot submit", func(t *testing.T) {
		svc := newTrainingService(new(MockTrainingRepo), new(MockParticipantRepo), new(MockPartnerRepo), new(MockEmailService), false)

		_, err := svc.Submit(ctx, domain.Actor{UserID: 1, Role: domain.RoleAdmin}, validSubmitInput())
		var authErr *domain.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
	})

	t.Run("Missing required field", func(t *testing.T) {
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(new(MockTrainingRepo), new(MockParticipantRepo), partnerRepo, new(MockEmailService), false)
		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(activePartner(), nil)

		input := validSubmitInput()
		input.Theme = ""
		_, err := svc.Submit(ctx, actor, input)
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
		assert.Equal(t, "theme", valErr.Field)
	})

	t.Run("No participants", func(t *testing.T) {
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(new(MockTrainingRepo), new(MockParticipantRepo), partnerRepo, new(MockEmailService), false)
		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(activePartner(), nil)

		input := validSubmitInput()
		input.Participants = nil
		_, err := svc.Submit(ctx, actor, input)
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("Bad aadhaar", func(t *testing.T) {
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(new(MockTrainingRepo), new(MockParticipantRepo), partnerRepo, new(MockEmailService), false)
		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(activePartner(), nil)

		input := validSubmitInput()
		input.Participants[0].AadhaarNumber = "12345"
		_, err := svc.Submit(ctx, actor, input)
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("Participant insert failure rolls back training", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		participantRepo := new(MockParticipantRepo)
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(trainingRepo, participantRepo, partnerRepo, new(MockEmailService), false)

		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(activePartner(), nil)
		trainingRepo.On("Create", ctx, mock.AnythingOfType("*domain.TrainingEvent")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.TrainingEvent).ID = 99
			}).Return(nil)
		participantRepo.On("CreateMany", ctx, mock.Anything).Return(errors.New("insert failed"))
		trainingRepo.On("Delete", ctx, int32(99)).Return(nil)

		_, err := svc.Submit(ctx, actor, validSubmitInput())
		assert.Error(t, err)
		trainingRepo.AssertCalled(t, "Delete", ctx, int32(99))
	})
}

func TestTrainingService_AdminCreate(t *testing.T) {
	ctx := context.Background()
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	input := service.AdminCreateTrainingInput{
		PartnerID: 7,
		Title:     "Earthquake Safety Drill",
		Theme:     "Earthquake Preparedness",
		StartDate: "2026-02-20",
		EndDate:   "2026-02-20",
		State:     "Kerala",
		City:      "Kochi",
	}

	t.Run("Created directly approved", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(trainingRepo, new(MockParticipantRepo), partnerRepo, new(MockEmailService), false)

		partnerRepo.On("GetByID", ctx, int32(7)).Return(activePartner(), nil)
		trainingRepo.On("Create", ctx, mock.AnythingOfType("*domain.TrainingEvent")).Return(nil)

		training, err := svc.AdminCreate(ctx, admin, input)
		assert.NoError(t, err)
		assert.Equal(t, domain.TrainingStatusApproved, training.Status)
		assert.NotNil(t, training.ApprovedAt)
		if assert.NotNil(t, training.ApprovedBy) {
			assert.Equal(t, int32(1), *training.ApprovedBy)
		}
	})

	t.Run("Partner role forbidden", func(t *testing.T) {
		svc := newTrainingService(new(MockTrainingRepo), new(MockParticipantRepo), new(MockPartnerRepo), new(MockEmailService), false)

		_, err := svc.AdminCreate(ctx, domain.Actor{UserID: 42, Role: domain.RolePartner}, input)
		var authErr *domain.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
	})

	t.Run("Unknown partner", func(t *testing.T) {
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(new(MockTrainingRepo), new(MockParticipantRepo), partnerRepo, new(MockEmailService), false)

		partnerRepo.On("GetByID", ctx, int32(7)).Return(nil, domain.NewNotFoundError("partner", 7))

		_, err := svc.AdminCreate(ctx, admin, input)
		var nfErr *domain.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}

func TestTrainingService_Transition(t *testing.T) {
	ctx := context.Background()
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	pendingTraining := func() *domain.TrainingEvent {
		return &domain.TrainingEvent{
			ID:        5,
			Title:     "Flood Preparedness Workshop",
			Status:    domain.TrainingStatusPending,
			PartnerID: 7,
		}
	}

	t.Run("Approve stamps audit fields", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		partnerRepo := new(MockPartnerRepo)
		emailSvc := new(MockEmailService)
		svc := newTrainingService(trainingRepo, new(MockParticipantRepo), partnerRepo, emailSvc, false)

		trainingRepo.On("GetByID", ctx, int32(5)).Return(pendingTraining(), nil)
		trainingRepo.On("Update", ctx, mock.AnythingOfType("*domain.TrainingEvent")).Return(nil)
		partnerRepo.On("GetByID", ctx, int32(7)).Return(activePartner(), nil)
		emailSvc.On("SendTrainingStatusNotification", ctx, "contact@resilience.org",
			"Flood Preparedness Workshop", domain.TrainingStatusApproved, "").Return(nil)

		training, err := svc.Transition(ctx, admin, 5, domain.TrainingStatusApproved, "")
		assert.NoError(t, err)
		assert.Equal(t, domain.TrainingStatusApproved, training.Status)
		assert.NotNil(t, training.ApprovedAt)
		if assert.NotNil(t, training.ApprovedBy) {
			assert.Equal(t, int32(1), *training.ApprovedBy)
		}
		assert.Empty(t, training.RejectionReason)
	})

	t.Run("Reject requires reason", func(t *testing.T) {
		svc := newTrainingService(new(MockTrainingRepo), new(MockParticipantRepo), new(MockPartnerRepo), new(MockEmailService), false)

		_, err := svc.Transition(ctx, admin, 5, domain.TrainingStatusRejected, "  ")
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
		assert.Equal(t, "reason", valErr.Field)
	})

	t.Run("Reject clears approval stamps", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		partnerRepo := new(MockPartnerRepo)
		emailSvc := new(MockEmailService)
		svc := newTrainingService(trainingRepo, new(MockParticipantRepo), partnerRepo, emailSvc, false)

		approvedBy := int32(1)
		tr := pendingTraining()
		tr.Status = domain.TrainingStatusApproved
		tr.ApprovedBy = &approvedBy
		trainingRepo.On("GetByID", ctx, int32(5)).Return(tr, nil)
		trainingRepo.On("Update", ctx, mock.AnythingOfType("*domain.TrainingEvent")).Return(nil)
		partnerRepo.On("GetByID", ctx, int32(7)).Return(activePartner(), nil)
		emailSvc.On("SendTrainingStatusNotification", ctx, "contact@resilience.org",
			"Flood Preparedness Workshop", domain.TrainingStatusRejected, "incomplete attendance data").Return(nil)

		training, err := svc.Transition(ctx, admin, 5, domain.TrainingStatusRejected, "incomplete attendance data")
		assert.NoError(t, err)
		assert.Equal(t, domain.TrainingStatusRejected, training.Status)
		assert.Equal(t, "incomplete attendance data", training.RejectionReason)
		assert.Nil(t, training.ApprovedAt)
		assert.Nil(t, training.ApprovedBy)
	})

	t.Run("PENDING is not a valid target", func(t *testing.T) {
		svc := newTrainingService(new(MockTrainingRepo), new(MockParticipantRepo), new(MockPartnerRepo), new(MockEmailService), false)

		_, err := svc.Transition(ctx, admin, 5, domain.TrainingStatusPending, "")
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("Partner cannot transition", func(t *testing.T) {
		svc := newTrainingService(new(MockTrainingRepo), new(MockParticipantRepo), new(MockPartnerRepo), new(MockEmailService), false)

		_, err := svc.Transition(ctx, domain.Actor{UserID: 42, Role: domain.RolePartner}, 5, domain.TrainingStatusApproved, "")
		var authErr *domain.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
	})

	t.Run("Strict mode rejects re-decision", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		svc := newTrainingService(trainingRepo, new(MockParticipantRepo), new(MockPartnerRepo), new(MockEmailService), true)

		tr := pendingTraining()
		tr.Status = domain.TrainingStatusRejected
		trainingRepo.On("GetByID", ctx, int32(5)).Return(tr, nil)

		_, err := svc.Transition(ctx, admin, 5, domain.TrainingStatusApproved, "")
		var conflictErr *domain.ConflictError
		assert.ErrorAs(t, err, &conflictErr)
		trainingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Default mode allows re-decision", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		partnerRepo := new(MockPartnerRepo)
		emailSvc := new(MockEmailService)
		svc := newTrainingService(trainingRepo, new(MockParticipantRepo), partnerRepo, emailSvc, false)

		tr := pendingTraining()
		tr.Status = domain.TrainingStatusRejected
		tr.RejectionReason = "old reason"
		trainingRepo.On("GetByID", ctx, int32(5)).Return(tr, nil)
		trainingRepo.On("Update", ctx, mock.AnythingOfType("*domain.TrainingEvent")).Return(nil)
		partnerRepo.On("GetByID", ctx, int32(7)).Return(activePartner(), nil)
		emailSvc.On("SendTrainingStatusNotification", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		training, err := svc.Transition(ctx, admin, 5, domain.TrainingStatusApproved, "")
		assert.NoError(t, err)
		assert.Equal(t, domain.TrainingStatusApproved, training.Status)
		assert.Empty(t, training.RejectionReason)
	})

	t.Run("Email failure does not fail the transition", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		partnerRepo := new(MockPartnerRepo)
		emailSvc := new(MockEmailService)
		svc := newTrainingService(trainingRepo, new(MockParticipantRepo), partnerRepo, emailSvc, false)

		trainingRepo.On("GetByID", ctx, int32(5)).Return(pendingTraining(), nil)
		trainingRepo.On("Update", ctx, mock.AnythingOfType("*domain.TrainingEvent")).Return(nil)
		partnerRepo.On("GetByID", ctx, int32(7)).Return(activePartner(), nil)
		emailSvc.On("SendTrainingStatusNotification", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp down"))

		_, err := svc.Transition(ctx, admin, 5, domain.TrainingStatusApproved, "")
		assert.NoError(t, err)
	})
}

func TestTrainingService_Update(t *testing.T) {
	ctx := context.Background()
	partnerActor := domain.Actor{UserID: 42, Role: domain.RolePartner}

	existing := func() *domain.TrainingEvent {
		return &domain.TrainingEvent{
			ID:        5,
			Title:     "Flood Preparedness Workshop",
			Theme:     "Flood Management",
			StartDate: "2026-01-12",
			EndDate:   "2026-01-13",
			Location:  domain.Location{State: "Kerala", City: "Kochi"},
			Status:    domain.TrainingStatusPending,
			PartnerID: 7,
		}
	}

	t.Run("Owner patches fields", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		participantRepo := new(MockParticipantRepo)
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(trainingRepo, participantRepo, partnerRepo, new(MockEmailService), false)

		trainingRepo.On("GetByID", ctx, int32(5)).Return(existing(), nil)
		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(activePartner(), nil)
		trainingRepo.On("Update", ctx, mock.AnythingOfType("*domain.TrainingEvent")).Return(nil)
		participantRepo.On("ListByTraining", ctx, int32(5)).Return([]domain.Participant{}, nil)

		newTitle := "Flood Preparedness Workshop v2"
		training, _, err := svc.Update(ctx, partnerActor, 5, service.UpdateTrainingInput{Title: &newTitle})
		assert.NoError(t, err)
		assert.Equal(t, newTitle, training.Title)
		assert.Equal(t, "Flood Management", training.Theme)
		participantRepo.AssertNotCalled(t, "ReplaceForTraining", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Roster patch replaces and re-stamps", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		participantRepo := new(MockParticipantRepo)
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(trainingRepo, participantRepo, partnerRepo, new(MockEmailService), false)

		trainingRepo.On("GetByID", ctx, int32(5)).Return(existing(), nil)
		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(activePartner(), nil)
		trainingRepo.On("Update", ctx, mock.AnythingOfType("*domain.TrainingEvent")).Return(nil)
		participantRepo.On("ReplaceForTraining", ctx, int32(5), mock.AnythingOfType("[]domain.Participant")).Return(nil)
		participantRepo.On("ListByTraining", ctx, int32(5)).Return([]domain.Participant{}, nil)

		newTitle := "Renamed Workshop"
		_, _, err := svc.Update(ctx, partnerActor, 5, service.UpdateTrainingInput{
			Title: &newTitle,
			Participants: []service.ParticipantInput{
				{FullName: "New Person", AadhaarNumber: "999912341234", Email: "new@example.com", Phone: "9000000009"},
			},
		})
		assert.NoError(t, err)

		var replaced []domain.Participant
		for _, call := range participantRepo.Calls {
			if call.Method == "ReplaceForTraining" {
				replaced = call.Arguments.Get(2).([]domain.Participant)
			}
		}
		// Snapshot reflects the patched title.
		if assert.Len(t, replaced, 1) {
			assert.Equal(t, "Renamed Workshop", replaced[0].Training.Title)
			assert.True(t, replaced[0].CertificateIssued)
		}
	})

	t.Run("Non-owner partner forbidden", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(trainingRepo, new(MockParticipantRepo), partnerRepo, new(MockEmailService), false)

		other := activePartner()
		other.ID = 8
		trainingRepo.On("GetByID", ctx, int32(5)).Return(existing(), nil)
		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(other, nil)

		_, _, err := svc.Update(ctx, partnerActor, 5, service.UpdateTrainingInput{})
		var authErr *domain.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
	})

	t.Run("Clear attendance sheet", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		participantRepo := new(MockParticipantRepo)
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(trainingRepo, participantRepo, partnerRepo, new(MockEmailService), false)

		tr := existing()
		tr.AttendanceSheet = &domain.MediaFile{URL: "http://x/sheet.pdf", Filename: "sheet.pdf"}
		trainingRepo.On("GetByID", ctx, int32(5)).Return(tr, nil)
		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(activePartner(), nil)
		trainingRepo.On("Update", ctx, mock.AnythingOfType("*domain.TrainingEvent")).Return(nil)
		participantRepo.On("ListByTraining", ctx, int32(5)).Return([]domain.Participant{}, nil)

		training, _, err := svc.Update(ctx, partnerActor, 5, service.UpdateTrainingInput{ClearAttendanceSheet: true})
		assert.NoError(t, err)
		assert.Nil(t, training.AttendanceSheet)
	})
}

func TestTrainingService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin deletes event only", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		participantRepo := new(MockParticipantRepo)
		svc := newTrainingService(trainingRepo, participantRepo, new(MockPartnerRepo), new(MockEmailService), false)

		trainingRepo.On("GetByID", ctx, int32(5)).Return(&domain.TrainingEvent{ID: 5, PartnerID: 7}, nil)
		trainingRepo.On("Delete", ctx, int32(5)).Return(nil)

		err := svc.Delete(ctx, domain.Actor{UserID: 1, Role: domain.RoleAdmin}, 5)
		assert.NoError(t, err)
		// Participant rows survive the deletion for verification.
		participantRepo.AssertNotCalled(t, "ReplaceForTraining", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Blocked partner cannot delete", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		partnerRepo := new(MockPartnerRepo)
		svc := newTrainingService(trainingRepo, new(MockParticipantRepo), partnerRepo, new(MockEmailService), false)

		blocked := activePartner()
		blocked.AccountStatus = domain.AccountBlocked
		trainingRepo.On("GetByID", ctx, int32(5)).Return(&domain.TrainingEvent{ID: 5, PartnerID: 7}, nil)
		partnerRepo.On("GetByUserID", ctx, int32(42)).Return(blocked, nil)

		err := svc.Delete(ctx, domain.Actor{UserID: 42, Role: domain.RolePartner}, 5)
		var authErr *domain.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
		trainingRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unknown training", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		svc := newTrainingService(trainingRepo, new(MockParticipantRepo), new(MockPartnerRepo), new(MockEmailService), false)

		trainingRepo.On("GetByID", ctx, int32(5)).Return(nil, domain.NewNotFoundError("training", 5))

		err := svc.Delete(ctx, domain.Actor{UserID: 1, Role: domain.RoleAdmin}, 5)
		var nfErr *domain.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}
