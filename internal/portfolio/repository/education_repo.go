package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

const educationColumns = `
	id, institution, degree, field_of_study, start_year, start_month, end_year,
	end_month, current, grade, description, institution_logo_url,
	certificate_image_url, sort_order, created_at, updated_at`

// EducationRepository handles PostgreSQL operations for education entries
type EducationRepository struct {
	db *sql.DB
}

// NewEducationRepository creates a new EducationRepository
func NewEducationRepository(db *sql.DB) *EducationRepository {
	return &EducationRepository{db: db}
}

func (r *EducationRepository) List(ctx context.Context) ([]domain.Education, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+educationColumns+`
		FROM education
		ORDER BY sort_order ASC, end_year DESC NULLS FIRST, start_year DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query education: %w", err)
	}
	defer rows.Close()

	out := []domain.Education{}
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate education: %w", err)
	}
	return out, nil
}

func (r *EducationRepository) Get(ctx context.Context, id int64) (*domain.Education, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+educationColumns+` FROM education WHERE id = $1`, id)
	e, err := scanEducation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get education: %w", err)
	}
	return e, nil
}

func (r *EducationRepository) Create(ctx context.Context, e *domain.Education) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO education (
			institution, degree, field_of_study, start_year, start_month, end_year,
			end_month, current, grade, description, institution_logo_url,
			certificate_image_url, sort_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, educationArgs(e)...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create education: %w", err)
	}
	return nil
}

func (r *EducationRepository) Update(ctx context.Context, e *domain.Education) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE education
		SET institution = $1, degree = $2, field_of_study = $3, start_year = $4,
		    start_month = $5, end_year = $6, end_month = $7, current = $8, grade = $9,
		    description = $10, institution_logo_url = $11, certificate_image_url = $12,
		    sort_order = $13, updated_at = NOW()
		WHERE id = $14
		RETURNING created_at, updated_at
	`, append(educationArgs(e), e.ID)...).Scan(&e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update education: %w", err)
	}
	return nil
}

func (r *EducationRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "education", id)
}

// SetCurrent marks entries as ongoing (clearing the end year and month) or
// completed.
func (r *EducationRepository) SetCurrent(ctx context.Context, ids []int64, current bool) (int64, error) {
	if current {
		return setFlag(ctx, r.db, "education", "current = TRUE, end_year = NULL, end_month = NULL", ids)
	}
	return setFlag(ctx, r.db, "education", "current = FALSE", ids)
}

func educationArgs(e *domain.Education) []interface{} {
	return []interface{}{
		e.Institution, e.Degree, e.FieldOfStudy,
		nullInt(e.StartYear), nullInt(e.StartMonth), nullInt(e.EndYear), nullInt(e.EndMonth),
		e.Current, e.Grade, e.Description, e.InstitutionLogoURL, e.CertificateImageURL, e.Order,
	}
}

func scanEducation(row rowScanner) (*domain.Education, error) {
	var (
		e                                      domain.Education
		startYear, startMonth, endYear, endMon sql.NullInt64
	)
	if err := row.Scan(
		&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy, &startYear, &startMonth, &endYear,
		&endMon, &e.Current, &e.Grade, &e.Description, &e.InstitutionLogoURL,
		&e.CertificateImageURL, &e.Order, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.StartYear = intFromNull(startYear)
	e.StartMonth = intFromNull(startMonth)
	e.EndYear = intFromNull(endYear)
	e.EndMonth = intFromNull(endMon)
	return &e, nil
}
