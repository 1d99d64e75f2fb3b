package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/repository"
)

type participantRepository struct {
	db *sql.DB
}

func NewParticipantRepository(db *sql.DB) repository.ParticipantRepository {
	return &participantRepository{db: db}
}

const participantColumns = `id, full_name, aadhaar_number, email, phone, training_id,
	training_title, training_theme, training_start_date, training_end_date, organization,
	certificate_issued, certificate_issued_at, certificate_url, created_on`

const insertParticipant = `INSERT INTO participants (full_name, aadhaar_number, email, phone, training_id,
	training_title, training_theme, training_start_date, training_end_date, organization,
	certificate_issued, certificate_issued_at, certificate_url, created_on)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`

func (r *participantRepository) CreateMany(ctx context.Context, participants []domain.Participant) error {
	if len(participants) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := insertParticipants(ctx, tx, participants); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *participantRepository) ReplaceForTraining(ctx context.Context, trainingID int32, participants []domain.Participant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM participants WHERE training_id = $1`, trainingID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete participants for training %d: %w", trainingID, err)
	}
	if err := insertParticipants(ctx, tx, participants); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertParticipants(ctx context.Context, tx *sql.Tx, participants []domain.Participant) error {
	for i := range participants {
		p := &participants[i]
		if p.CreatedOn.IsZero() {
			p.CreatedOn = time.Now()
		}
		err := tx.QueryRowContext(ctx, insertParticipant,
			p.FullName, p.AadhaarNumber, p.Email, p.Phone, p.TrainingID,
			p.Training.Title, p.Training.Theme, p.Training.Dates.Start, p.Training.Dates.End, p.Training.Organization,
			p.CertificateIssued, p.CertificateIssuedAt, p.CertificateURL, p.CreatedOn,
		).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("failed to insert participant %q: %w", p.FullName, err)
		}
	}
	return nil
}

func (r *participantRepository) ListByTraining(ctx context.Context, trainingID int32) ([]domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE training_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, trainingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, *p)
	}
	return participants, rows.Err()
}

func (r *participantRepository) FindFirstByAadhaar(ctx context.Context, aadhaar string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE aadhaar_number = $1 ORDER BY id LIMIT 1`
	p, err := scanParticipant(r.db.QueryRowContext(ctx, query, aadhaar))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) CountOrphaned(ctx context.Context) (int32, error) {
	query := `SELECT count(*) FROM participants p WHERE NOT EXISTS (SELECT 1 FROM trainings t WHERE t.id = p.training_id)`
	var count int32
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

func scanParticipant(row rowScanner) (*domain.Participant, error) {
	p := &domain.Participant{}
	var certURL sql.NullString
	err := row.Scan(&p.ID, &p.FullName, &p.AadhaarNumber, &p.Email, &p.Phone, &p.TrainingID,
		&p.Training.Title, &p.Training.Theme, &p.Training.Dates.Start, &p.Training.Dates.End, &p.Training.Organization,
		&p.CertificateIssued, &p.CertificateIssuedAt, &certURL, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	p.CertificateURL = certURL.String
	return p, nil
}
