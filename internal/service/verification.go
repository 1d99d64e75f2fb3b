package service

import (
	"context"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/logger"
	"training-portal-backend/internal/repository"
)

type verificationService struct {
	participantRepo repository.ParticipantRepository
	trainingRepo    repository.TrainingRepository
}

func NewVerificationService(participantRepo repository.ParticipantRepository, trainingRepo repository.TrainingRepository) VerificationService {
	return &verificationService{
		participantRepo: participantRepo,
		trainingRepo:    trainingRepo,
	}
}

// VerifyByAadhaar answers the public certificate check. The response is built
// from the participant's frozen snapshot; the live training row only adds the
// location, and its absence never fails the lookup.
func (s *verificationService) VerifyByAadhaar(ctx context.Context, aadhaar string) (*domain.VerificationResult, error) {
	if !domain.ValidAadhaar(aadhaar) {
		return nil, domain.NewValidationError("aadhaar_number", "must be exactly 12 digits")
	}

	participant, err := s.participantRepo.FindFirstByAadhaar(ctx, aadhaar)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return &domain.VerificationResult{Verified: false}, nil
	}

	result := &domain.VerificationResult{
		Verified:            true,
		AadhaarNumber:       participant.AadhaarNumber,
		FullName:            participant.FullName,
		Email:               participant.Email,
		Phone:               participant.Phone,
		TrainingTitle:       participant.Training.Title,
		TrainingTheme:       participant.Training.Theme,
		TrainingDates:       participant.Training.Dates,
		Organization:        participant.Training.Organization,
		CertificateIssued:   participant.CertificateIssued,
		CertificateIssuedAt: participant.CertificateIssuedAt,
	}

	training, err := s.trainingRepo.GetByID(ctx, participant.TrainingID)
	if err != nil {
		// The training may have been deleted since. The snapshot already
		// carries everything the certificate attests to.
		logger.Debug("verification enrichment skipped", "training_id", participant.TrainingID, "error", err)
		return result, nil
	}
	result.TrainingLocation = &training.Location
	result.StartDate = training.StartDate
	result.EndDate = training.EndDate
	return result, nil
}
