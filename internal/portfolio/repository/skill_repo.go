package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

const skillColumns = `id, name, category, proficiency, icon, custom_svg, sort_order, created_at, updated_at`

// SkillRepository handles PostgreSQL operations for skills
type SkillRepository struct {
	db *sql.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *sql.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// List returns all skills ordered by sort order then name.
func (r *SkillRepository) List(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+skillColumns+`
		FROM skills
		ORDER BY sort_order ASC, name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate skills: %w", err)
	}
	return skills, nil
}

func (r *SkillRepository) Get(ctx context.Context, id int64) (*domain.Skill, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	s, err := scanSkill(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return s, nil
}

func (r *SkillRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM skills`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count skills: %w", err)
	}
	return n, nil
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO skills (name, category, proficiency, icon, custom_svg, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, s.Name, string(s.Category), s.Proficiency, s.Icon, s.CustomSVG, s.Order,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

func (r *SkillRepository) Update(ctx context.Context, s *domain.Skill) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE skills
		SET name = $2, category = $3, proficiency = $4, icon = $5, custom_svg = $6,
		    sort_order = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, s.ID, s.Name, string(s.Category), s.Proficiency, s.Icon, s.CustomSVG, s.Order,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "skills", id)
}

func scanSkill(row rowScanner) (*domain.Skill, error) {
	var (
		s        domain.Skill
		category string
	)
	if err := row.Scan(&s.ID, &s.Name, &category, &s.Proficiency, &s.Icon, &s.CustomSVG,
		&s.Order, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Category = domain.SkillCategory(category)
	return &s, nil
}
