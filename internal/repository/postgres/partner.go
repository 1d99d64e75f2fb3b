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

type partnerRepository struct {
	db *sql.DB
}

func NewPartnerRepository(db *sql.DB) repository.PartnerRepository {
	return &partnerRepository{db: db}
}

const partnerColumns = `id, organization_name, organization_type, contact_person, email, phone,
	state, district, address, registration_status, account_status, rejection_reason,
	approved_at, approved_by, user_id, created_on`

func (r *partnerRepository) Create(ctx context.Context, p *domain.Partner) error {
	query := `INSERT INTO partners (organization_name, organization_type, contact_person, email, phone,
	            state, district, address, registration_status, account_status, rejection_reason,
	            approved_at, approved_by, user_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	p.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query,
		p.OrganizationName, p.OrganizationType, p.ContactPerson, p.Email, p.Phone,
		p.State, p.District, p.Address, p.RegistrationStatus, p.AccountStatus, p.RejectionReason,
		p.ApprovedAt, p.ApprovedBy, p.UserID, p.CreatedOn,
	).Scan(&p.ID)
}

func (r *partnerRepository) GetByID(ctx context.Context, id int32) (*domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`
	p, err := scanPartner(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("partner", id)
		}
		return nil, err
	}
	return p, nil
}

func (r *partnerRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE user_id = $1`
	p, err := scanPartner(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("partner", userID)
		}
		return nil, err
	}
	return p, nil
}

func (r *partnerRepository) Update(ctx context.Context, p *domain.Partner) error {
	query := `UPDATE partners SET organization_name=$1, organization_type=$2, contact_person=$3,
	            email=$4, phone=$5, state=$6, district=$7, address=$8,
	            registration_status=$9, account_status=$10, rejection_reason=$11,
	            approved_at=$12, approved_by=$13
	          WHERE id=$14`
	res, err := r.db.ExecContext(ctx, query,
		p.OrganizationName, p.OrganizationType, p.ContactPerson,
		p.Email, p.Phone, p.State, p.District, p.Address,
		p.RegistrationStatus, p.AccountStatus, p.RejectionReason,
		p.ApprovedAt, p.ApprovedBy, p.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NewNotFoundError("partner", p.ID)
	}
	return nil
}

func (r *partnerRepository) List(ctx context.Context, status domain.RegistrationStatus, page, pageSize int32) ([]domain.Partner, int32, error) {
	where := ""
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		where = fmt.Sprintf(" WHERE registration_status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM partners`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + partnerColumns + ` FROM partners` + where +
		fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, 0, err
		}
		partners = append(partners, *p)
	}
	return partners, count, rows.Err()
}

func scanPartner(row rowScanner) (*domain.Partner, error) {
	p := &domain.Partner{}
	var rejectionReason sql.NullString
	err := row.Scan(&p.ID, &p.OrganizationName, &p.OrganizationType, &p.ContactPerson, &p.Email, &p.Phone,
		&p.State, &p.District, &p.Address, &p.RegistrationStatus, &p.AccountStatus, &rejectionReason,
		&p.ApprovedAt, &p.ApprovedBy, &p.UserID, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	p.RejectionReason = rejectionReason.String
	return p, nil
}
