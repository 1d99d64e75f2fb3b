package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, role, partner_id, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	u.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Role, u.PartnerID, u.CreatedOn).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, password_hash, role, partner_id, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.PartnerID, &u.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("user", id)
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, password_hash, role, partner_id, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.PartnerID, &u.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) SetPartnerID(ctx context.Context, userID, partnerID int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET partner_id = $1 WHERE id = $2`, partnerID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NewNotFoundError("user", userID)
	}
	return nil
}

func (r *userRepository) ListAdmins(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, email, password_hash, role, partner_id, created_on FROM users WHERE role = $1`
	rows, err := r.db.QueryContext(ctx, query, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.PartnerID, &u.CreatedOn); err != nil {
			return nil, err
		}
		admins = append(admins, u)
	}
	return admins, rows.Err()
}
