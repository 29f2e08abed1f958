package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

const projectColumns = `
	id, title, description, detailed_description, image_url, technologies,
	project_url, github_url, featured, status, category, key_achievements,
	sort_order, date_completed, created_at, updated_at`

// Store order for projects: featured first, then sort order, newest completion.
const projectOrder = `ORDER BY featured DESC, sort_order ASC, date_completed DESC NULLS LAST, id ASC`

// ProjectRepository handles PostgreSQL operations for projects and their
// gallery images.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns every project in store order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects `+projectOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return n, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO projects (
			title, description, detailed_description, image_url, technologies,
			project_url, github_url, featured, status, category, key_achievements,
			sort_order, date_completed
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, projectArgs(p)...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE projects
		SET title = $1, description = $2, detailed_description = $3, image_url = $4,
		    technologies = $5, project_url = $6, github_url = $7, featured = $8,
		    status = $9, category = $10, key_achievements = $11, sort_order = $12,
		    date_completed = $13, updated_at = NOW()
		WHERE id = $14
		RETURNING created_at, updated_at
	`, append(projectArgs(p), p.ID)...).Scan(&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete removes a project; its images go with it (ON DELETE CASCADE).
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "projects", id)
}

// SetFeatured flips the featured flag on the given projects.
func (r *ProjectRepository) SetFeatured(ctx context.Context, ids []int64, featured bool) (int64, error) {
	if featured {
		return setFlag(ctx, r.db, "projects", "featured = TRUE", ids)
	}
	return setFlag(ctx, r.db, "projects", "featured = FALSE", ids)
}

// Duplicate copies a project as a non-featured " (Copy)". Gallery images are
// not copied.
func (r *ProjectRepository) Duplicate(ctx context.Context, id int64) (*domain.Project, error) {
	src, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *src
	cp.ID = 0
	cp.Title = src.Title + " (Copy)"
	cp.Featured = false
	cp.Images = nil
	if err := r.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// ListImages returns a project's gallery ordered by sort order then age.
func (r *ProjectRepository) ListImages(ctx context.Context, projectID int64) ([]domain.ProjectImage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, project_id, image_url, caption, sort_order, created_at
		FROM project_images
		WHERE project_id = $1
		ORDER BY sort_order ASC, created_at ASC, id ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project images: %w", err)
	}
	defer rows.Close()

	images := []domain.ProjectImage{}
	for rows.Next() {
		var img domain.ProjectImage
		if err := rows.Scan(&img.ID, &img.ProjectID, &img.ImageURL, &img.Caption, &img.Order, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project images: %w", err)
	}
	return images, nil
}

func (r *ProjectRepository) AddImage(ctx context.Context, img *domain.ProjectImage) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO project_images (project_id, image_url, caption, sort_order)
		SELECT $1::bigint, $2::text, $3::text, $4::integer
		WHERE EXISTS (SELECT 1 FROM projects WHERE id = $1::bigint)
		RETURNING id, created_at
	`, img.ProjectID, img.ImageURL, img.Caption, img.Order).Scan(&img.ID, &img.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to add project image: %w", err)
	}
	return nil
}

func (r *ProjectRepository) DeleteImage(ctx context.Context, projectID, imageID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM project_images WHERE id = $1 AND project_id = $2`, imageID, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project image: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func projectArgs(p *domain.Project) []interface{} {
	return []interface{}{
		p.Title, p.Description, p.DetailedDescription, p.ImageURL, p.Technologies,
		p.ProjectURL, p.GitHubURL, p.Featured, string(p.Status), string(p.Category),
		p.KeyAchievements, p.Order, nullDate(p.DateCompleted),
	}
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p                domain.Project
		status, category string
		completed        sql.NullTime
	)
	if err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.DetailedDescription, &p.ImageURL, &p.Technologies,
		&p.ProjectURL, &p.GitHubURL, &p.Featured, &status, &category, &p.KeyAchievements,
		&p.Order, &completed, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Status = domain.ProjectStatus(status)
	p.Category = domain.ProjectCategory(category)
	p.DateCompleted = dateFromNull(completed)
	return &p, nil
}
