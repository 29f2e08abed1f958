package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

const experienceColumns = `
	id, company, position, location, start_date, end_date, current, description,
	achievements, company_logo_url, sort_order, created_at, updated_at`

// ExperienceRepository handles PostgreSQL operations for work experience
type ExperienceRepository struct {
	db *sql.DB
}

// NewExperienceRepository creates a new ExperienceRepository
func NewExperienceRepository(db *sql.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

func (r *ExperienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+experienceColumns+`
		FROM experiences
		ORDER BY sort_order ASC, start_date DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query experiences: %w", err)
	}
	defer rows.Close()

	out := []domain.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate experiences: %w", err)
	}
	return out, nil
}

func (r *ExperienceRepository) Get(ctx context.Context, id int64) (*domain.Experience, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id)
	e, err := scanExperience(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return e, nil
}

func (r *ExperienceRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM experiences`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count experiences: %w", err)
	}
	return n, nil
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO experiences (
			company, position, location, start_date, end_date, current, description,
			achievements, company_logo_url, sort_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, experienceArgs(e)...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

func (r *ExperienceRepository) Update(ctx context.Context, e *domain.Experience) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE experiences
		SET company = $1, position = $2, location = $3, start_date = $4, end_date = $5,
		    current = $6, description = $7, achievements = $8, company_logo_url = $9,
		    sort_order = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING created_at, updated_at
	`, append(experienceArgs(e), e.ID)...).Scan(&e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}
	return nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "experiences", id)
}

// SetCurrent marks positions as current (clearing their end date) or past.
func (r *ExperienceRepository) SetCurrent(ctx context.Context, ids []int64, current bool) (int64, error) {
	if current {
		return setFlag(ctx, r.db, "experiences", "current = TRUE, end_date = NULL", ids)
	}
	return setFlag(ctx, r.db, "experiences", "current = FALSE", ids)
}

func experienceArgs(e *domain.Experience) []interface{} {
	return []interface{}{
		e.Company, e.Position, e.Location, e.StartDate.Time, nullDate(e.EndDate), e.Current,
		e.Description, e.Achievements, e.CompanyLogoURL, e.Order,
	}
}

func scanExperience(row rowScanner) (*domain.Experience, error) {
	var (
		e     domain.Experience
		start time.Time
		end   sql.NullTime
	)
	if err := row.Scan(
		&e.ID, &e.Company, &e.Position, &e.Location, &start, &end, &e.Current, &e.Description,
		&e.Achievements, &e.CompanyLogoURL, &e.Order, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.StartDate = domain.DateOf(start)
	e.EndDate = dateFromNull(end)
	return &e, nil
}
