package jobs

import (
	"context"
	"time"

	"training-portal-backend/internal/logger"
)

// RemindPendingTrainings emails every admin a summary of trainings that have
// been sitting in PENDING longer than the configured reminder window.
func (jr *JobRunner) RemindPendingTrainings() {
	jr.runWithRecovery("RemindPendingTrainings", func() {
		ctx := context.Background()

		days := jr.config.Workflow.PendingReminderDays
		cutoff := time.Now().AddDate(0, 0, -days)

		pending, err := jr.store.TrainingRepository.ListPendingOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale pending trainings", "error", err)
			return
		}
		if len(pending) == 0 {
			logger.Info("No stale pending trainings")
			return
		}

		admins, err := jr.store.UserRepository.ListAdmins(ctx)
		if err != nil {
			logger.Error("Failed to list admins", "error", err)
			return
		}

		count := int32(len(pending))
		sent := 0
		for _, admin := range admins {
			if err := jr.services.Email.SendPendingTrainingsReminder(ctx, admin.Email, count); err != nil {
				logger.Error("Failed to send pending reminder", "admin_id", admin.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Pending training reminders sent",
			"stale_pending", count, "admins_notified", sent)
	})
}

// ReportOrphanedParticipants counts participant rows whose training has been
// deleted. The rows are kept on purpose so certificate verification keeps
// working; this job only surfaces the number for operators.
func (jr *JobRunner) ReportOrphanedParticipants() {
	jr.runWithRecovery("ReportOrphanedParticipants", func() {
		ctx := context.Background()

		count, err := jr.store.ParticipantRepository.CountOrphaned(ctx)
		if err != nil {
			logger.Error("Failed to count orphaned participants", "error", err)
			return
		}
		if count == 0 {
			logger.Info("No orphaned participants")
			return
		}
		logger.Warn("Orphaned participants present", "count", count)
	})
}
