package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"training-portal-backend/internal/config"
	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(cfg config.EmailConfig) EmailService {
	return &sendGridEmailService{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.From,
		fromName:  cfg.FromName,
	}
}

func (s *sendGridEmailService) SendPartnerStatusNotification(ctx context.Context, toEmail, orgName string, status domain.RegistrationStatus, reason string) error {
	var subject, body string
	switch status {
	case domain.RegistrationApproved:
		subject = "Your partner registration has been approved"
		body = fmt.Sprintf("Dear %s,\n\nYour partner registration has been approved. You can now log in and submit training records.\n", orgName)
	case domain.RegistrationRejected:
		subject = "Your partner registration has been rejected"
		body = fmt.Sprintf("Dear %s,\n\nYour partner registration has been rejected.\n\nReason: %s\n", orgName, reason)
	default:
		return nil
	}
	return s.send(ctx, toEmail, orgName, subject, body)
}

func (s *sendGridEmailService) SendTrainingStatusNotification(ctx context.Context, toEmail, trainingTitle string, status domain.TrainingStatus, reason string) error {
	var subject, body string
	switch status {
	case domain.TrainingStatusApproved:
		subject = fmt.Sprintf("Training approved: %s", trainingTitle)
		body = fmt.Sprintf("Your training record %q has been approved.\n", trainingTitle)
	case domain.TrainingStatusRejected:
		subject = fmt.Sprintf("Training rejected: %s", trainingTitle)
		body = fmt.Sprintf("Your training record %q has been rejected.\n\nReason: %s\n", trainingTitle, reason)
	default:
		return nil
	}
	return s.send(ctx, toEmail, "", subject, body)
}

func (s *sendGridEmailService) SendPendingTrainingsReminder(ctx context.Context, toEmail string, pendingCount int32) error {
	subject := "Trainings awaiting review"
	body := fmt.Sprintf("There are %d training submissions that have been pending review for over a week.\n", pendingCount)
	return s.send(ctx, toEmail, "", subject, body)
}

func (s *sendGridEmailService) send(ctx context.Context, toEmail, toName, subject, plainText string) error {
	if s.apiKey == "" {
		// No key configured; common in dev. Log instead of failing callers.
		logger.Info("email delivery skipped, no api key configured",
			"to", toEmail, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
