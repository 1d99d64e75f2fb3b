package postgres

import (
	"context"
	"database/sql"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/repository"
)

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountTrainingsByStatus(ctx context.Context, status domain.TrainingStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM trainings WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *analyticsRepository) CountPartnersByRegistration(ctx context.Context, status domain.RegistrationStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM partners WHERE registration_status = $1`, status).Scan(&count)
	return count, err
}

func (r *analyticsRepository) DistinctApprovedStates(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT state FROM trainings WHERE status = $1 AND state <> ''`, domain.TrainingStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var states []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, rows.Err()
}

func (r *analyticsRepository) SumApprovedParticipants(ctx context.Context) (int32, error) {
	var total int32
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(participants_count), 0) FROM trainings WHERE status = $1`,
		domain.TrainingStatusApproved).Scan(&total)
	return total, err
}

func (r *analyticsRepository) RecentApprovedTrainings(ctx context.Context, limit int32) ([]domain.TrainingEvent, error) {
	query := `SELECT ` + trainingColumns + ` FROM trainings WHERE status = $1 ORDER BY approved_at DESC NULLS LAST LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, domain.TrainingStatusApproved, limit)
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

func (r *analyticsRepository) ApprovedCountByTheme(ctx context.Context) (map[string]int32, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT theme, count(*) FROM trainings WHERE status = $1 GROUP BY theme`, domain.TrainingStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byTheme := make(map[string]int32)
	for rows.Next() {
		var theme string
		var count int32
		if err := rows.Scan(&theme, &count); err != nil {
			return nil, err
		}
		byTheme[theme] = count
	}
	return byTheme, rows.Err()
}

func (r *analyticsRepository) ApprovedCountByState(ctx context.Context) ([]domain.StateCoverage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT state, count(*), COALESCE(SUM(participants_count), 0)
		 FROM trainings WHERE status = $1 GROUP BY state ORDER BY count(*) DESC`,
		domain.TrainingStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coverage []domain.StateCoverage
	for rows.Next() {
		var c domain.StateCoverage
		if err := rows.Scan(&c.State, &c.Count, &c.Participants); err != nil {
			return nil, err
		}
		coverage = append(coverage, c)
	}
	return coverage, rows.Err()
}

func (r *analyticsRepository) ApprovedBreakdownTotals(ctx context.Context) (domain.ParticipantBreakdown, error) {
	var b domain.ParticipantBreakdown
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(breakdown_government), 0), COALESCE(SUM(breakdown_ngo), 0), COALESCE(SUM(breakdown_volunteers), 0)
		 FROM trainings WHERE status = $1`,
		domain.TrainingStatusApproved).Scan(&b.Government, &b.NGO, &b.Volunteers)
	return b, err
}

func (r *analyticsRepository) ApprovedTrainingLocations(ctx context.Context) ([]domain.TrainingLocation, error) {
	query := `SELECT t.id, t.title, t.theme, t.latitude, t.longitude,
	            t.state, t.district, t.city, t.status, t.start_date, t.end_date,
	            COALESCE(p.organization_name, 'Unknown')
	          FROM trainings t
	          LEFT JOIN partners p ON p.id = t.partner_id
	          WHERE t.status = $1 AND t.latitude IS NOT NULL AND t.longitude IS NOT NULL`
	rows, err := r.db.QueryContext(ctx, query, domain.TrainingStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []domain.TrainingLocation
	for rows.Next() {
		var l domain.TrainingLocation
		if err := rows.Scan(&l.ID, &l.Title, &l.Theme, &l.Latitude, &l.Longitude,
			&l.State, &l.District, &l.City, &l.Status, &l.StartDate, &l.EndDate, &l.PartnerName); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *analyticsRepository) LowCoverageDistricts(ctx context.Context, limit int32) ([]domain.DistrictCoverage, error) {
	query := `SELECT district, min(state), count(*) FROM trainings
	          WHERE status = $1 AND district <> ''
	          GROUP BY district ORDER BY count(*) ASC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, domain.TrainingStatusApproved, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var districts []domain.DistrictCoverage
	for rows.Next() {
		var d domain.DistrictCoverage
		if err := rows.Scan(&d.District, &d.State, &d.Count); err != nil {
			return nil, err
		}
		districts = append(districts, d)
	}
	return districts, rows.Err()
}
