package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/repository"
)

type trainingRepository struct {
	db *sql.DB
}

func NewTrainingRepository(db *sql.DB) repository.TrainingRepository {
	return &trainingRepository{db: db}
}

const trainingColumns = `id, title, theme, description, start_date, end_date,
	state, district, city, pincode, latitude, longitude,
	trainer_name, trainer_email, participants_count,
	breakdown_government, breakdown_ngo, breakdown_volunteers,
	photos, attendance_sheet, status, rejection_reason,
	partner_id, approved_at, approved_by, created_on, updated_on`

func (r *trainingRepository) Create(ctx context.Context, t *domain.TrainingEvent) error {
	photos, sheet, err := marshalMedia(t)
	if err != nil {
		return err
	}

	query := `INSERT INTO trainings (title, theme, description, start_date, end_date,
	            state, district, city, pincode, latitude, longitude,
	            trainer_name, trainer_email, participants_count,
	            breakdown_government, breakdown_ngo, breakdown_volunteers,
	            photos, attendance_sheet, status, rejection_reason,
	            partner_id, approved_at, approved_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
	            $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
	          RETURNING id`
	now := time.Now()
	t.CreatedOn = now
	t.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		t.Title, t.Theme, t.Description, t.StartDate, t.EndDate,
		t.Location.State, t.Location.District, t.Location.City, t.Location.Pincode,
		t.Location.Latitude, t.Location.Longitude,
		t.TrainerName, t.TrainerEmail, t.ParticipantsCount,
		t.ParticipantBreakdown.Government, t.ParticipantBreakdown.NGO, t.ParticipantBreakdown.Volunteers,
		photos, sheet, t.Status, t.RejectionReason,
		t.PartnerID, t.ApprovedAt, t.ApprovedBy, now, now,
	).Scan(&t.ID)
}

func (r *trainingRepository) GetByID(ctx context.Context, id int32) (*domain.TrainingEvent, error) {
	query := `SELECT ` + trainingColumns + ` FROM trainings WHERE id = $1`
	t, err := scanTraining(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("training", id)
		}
		return nil, err
	}
	return t, nil
}

func (r *trainingRepository) Update(ctx context.Context, t *domain.TrainingEvent) error {
	photos, sheet, err := marshalMedia(t)
	if err != nil {
		return err
	}

	query := `UPDATE trainings SET title=$1, theme=$2, description=$3, start_date=$4, end_date=$5,
	            state=$6, district=$7, city=$8, pincode=$9, latitude=$10, longitude=$11,
	            trainer_name=$12, trainer_email=$13, participants_count=$14,
	            breakdown_government=$15, breakdown_ngo=$16, breakdown_volunteers=$17,
	            photos=$18, attendance_sheet=$19, status=$20, rejection_reason=$21,
	            approved_at=$22, approved_by=$23, updated_on=$24
	          WHERE id=$25`
	t.UpdatedOn = time.Now()
	res, err := r.db.ExecContext(ctx, query,
		t.Title, t.Theme, t.Description, t.StartDate, t.EndDate,
		t.Location.State, t.Location.District, t.Location.City, t.Location.Pincode,
		t.Location.Latitude, t.Location.Longitude,
		t.TrainerName, t.TrainerEmail, t.ParticipantsCount,
		t.ParticipantBreakdown.Government, t.ParticipantBreakdown.NGO, t.ParticipantBreakdown.Volunteers,
		photos, sheet, t.Status, t.RejectionReason,
		t.ApprovedAt, t.ApprovedBy, t.UpdatedOn, t.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NewNotFoundError("training", t.ID)
	}
	return nil
}

func (r *trainingRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trainings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NewNotFoundError("training", id)
	}
	return nil
}

func (r *trainingRepository) List(ctx context.Context, filter domain.TrainingFilter, page, pageSize int32) ([]domain.TrainingEvent, int32, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.PartnerID != 0 {
		where += fmt.Sprintf(" AND partner_id = $%d", argIdx)
		args = append(args, filter.PartnerID)
		argIdx++
	}
	if filter.Theme != "" {
		where += fmt.Sprintf(" AND theme = $%d", argIdx)
		args = append(args, filter.Theme)
		argIdx++
	}
	if filter.State != "" {
		where += fmt.Sprintf(" AND state = $%d", argIdx)
		args = append(args, filter.State)
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM trainings`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + trainingColumns + ` FROM trainings` + where +
		fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var trainings []domain.TrainingEvent
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, 0, err
		}
		trainings = append(trainings, *t)
	}
	return trainings, count, rows.Err()
}

func (r *trainingRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.TrainingEvent, error) {
	query := `SELECT ` + trainingColumns + ` FROM trainings WHERE status = $1 AND created_on < $2 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.TrainingStatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainings []domain.TrainingEvent
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, err
		}
		trainings = append(trainings, *t)
	}
	return trainings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTraining(row rowScanner) (*domain.TrainingEvent, error) {
	t := &domain.TrainingEvent{}
	var photos []byte
	var sheet sql.NullString
	var rejectionReason sql.NullString
	err := row.Scan(&t.ID, &t.Title, &t.Theme, &t.Description, &t.StartDate, &t.EndDate,
		&t.Location.State, &t.Location.District, &t.Location.City, &t.Location.Pincode,
		&t.Location.Latitude, &t.Location.Longitude,
		&t.TrainerName, &t.TrainerEmail, &t.ParticipantsCount,
		&t.ParticipantBreakdown.Government, &t.ParticipantBreakdown.NGO, &t.ParticipantBreakdown.Volunteers,
		&photos, &sheet, &t.Status, &rejectionReason,
		&t.PartnerID, &t.ApprovedAt, &t.ApprovedBy, &t.CreatedOn, &t.UpdatedOn)
	if err != nil {
		return nil, err
	}
	t.RejectionReason = rejectionReason.String
	if len(photos) > 0 {
		if err := json.Unmarshal(photos, &t.Photos); err != nil {
			return nil, fmt.Errorf("failed to decode photos: %w", err)
		}
	}
	if sheet.Valid && sheet.String != "" {
		var m domain.MediaFile
		if err := json.Unmarshal([]byte(sheet.String), &m); err != nil {
			return nil, fmt.Errorf("failed to decode attendance sheet: %w", err)
		}
		t.AttendanceSheet = &m
	}
	return t, nil
}

func marshalMedia(t *domain.TrainingEvent) ([]byte, interface{}, error) {
	photos := t.Photos
	if photos == nil {
		photos = []domain.MediaFile{}
	}
	photosJSON, err := json.Marshal(photos)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode photos: %w", err)
	}
	var sheet interface{}
	if t.AttendanceSheet != nil {
		sheetJSON, err := json.Marshal(t.AttendanceSheet)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode attendance sheet: %w", err)
		}
		sheet = string(sheetJSON)
	}
	return photosJSON, sheet, nil
}
