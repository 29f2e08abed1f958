package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

const aboutColumns = `
	name, title, bio, email, phone, location, profile_image_url, resume_url,
	linkedin_url, github_url, twitter_url, hero_heading, hero_tagline,
	hero_description, hero_cta_primary, hero_cta_secondary, show_profile_picture,
	footer_tagline, footer_show_social_links, footer_show_resume_link,
	footer_copyright_text, stat_projects, stat_skills, stat_certifications,
	stat_experience, availability_status, availability_text`

// AboutRepository stores the singleton profile row (id = 1).
type AboutRepository struct {
	db *sql.DB
}

// NewAboutRepository creates a new AboutRepository
func NewAboutRepository(db *sql.DB) *AboutRepository {
	return &AboutRepository{db: db}
}

// Get returns the profile, or domain.ErrNotFound when none has been created.
func (r *AboutRepository) Get(ctx context.Context) (*domain.About, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+aboutColumns+`, created_at, updated_at
		FROM about
		WHERE id = $1
	`, domain.AboutID)

	var (
		a                          domain.About
		statP, statS, statC, statE sql.NullInt64
	)
	err := row.Scan(
		&a.Name, &a.Title, &a.Bio, &a.Email, &a.Phone, &a.Location,
		&a.ProfileImageURL, &a.ResumeURL, &a.LinkedInURL, &a.GitHubURL, &a.TwitterURL,
		&a.HeroHeading, &a.HeroTagline, &a.HeroDescription, &a.HeroCTAPrimary, &a.HeroCTASecondary,
		&a.ShowProfilePicture, &a.FooterTagline, &a.FooterShowSocialLinks, &a.FooterShowResumeLink,
		&a.FooterCopyrightText, &statP, &statS, &statC, &statE,
		&a.AvailabilityStatus, &a.AvailabilityText, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get about: %w", err)
	}

	a.StatProjects = intFromNull(statP)
	a.StatSkills = intFromNull(statS)
	a.StatCertifications = intFromNull(statC)
	a.StatExperience = intFromNull(statE)
	return &a, nil
}

// Exists reports whether the profile row has been created.
func (r *AboutRepository) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM about WHERE id = $1)`, domain.AboutID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check about: %w", err)
	}
	return exists, nil
}

// Create inserts the profile. It fails with domain.ErrAboutAlreadyExists
// when the row is already present.
func (r *AboutRepository) Create(ctx context.Context, a *domain.About) error {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO about (id, `+aboutColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		ON CONFLICT (id) DO NOTHING
		RETURNING created_at, updated_at
	`, append([]interface{}{domain.AboutID}, aboutArgs(a)...)...)

	err := row.Scan(&a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrAboutAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("failed to create about: %w", err)
	}
	return nil
}

// Upsert writes the profile, creating it on first use.
func (r *AboutRepository) Upsert(ctx context.Context, a *domain.About) error {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO about (id, `+aboutColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			profile_image_url = EXCLUDED.profile_image_url,
			resume_url = EXCLUDED.resume_url,
			linkedin_url = EXCLUDED.linkedin_url,
			github_url = EXCLUDED.github_url,
			twitter_url = EXCLUDED.twitter_url,
			hero_heading = EXCLUDED.hero_heading,
			hero_tagline = EXCLUDED.hero_tagline,
			hero_description = EXCLUDED.hero_description,
			hero_cta_primary = EXCLUDED.hero_cta_primary,
			hero_cta_secondary = EXCLUDED.hero_cta_secondary,
			show_profile_picture = EXCLUDED.show_profile_picture,
			footer_tagline = EXCLUDED.footer_tagline,
			footer_show_social_links = EXCLUDED.footer_show_social_links,
			footer_show_resume_link = EXCLUDED.footer_show_resume_link,
			footer_copyright_text = EXCLUDED.footer_copyright_text,
			stat_projects = EXCLUDED.stat_projects,
			stat_skills = EXCLUDED.stat_skills,
			stat_certifications = EXCLUDED.stat_certifications,
			stat_experience = EXCLUDED.stat_experience,
			availability_status = EXCLUDED.availability_status,
			availability_text = EXCLUDED.availability_text,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`, append([]interface{}{domain.AboutID}, aboutArgs(a)...)...)

	if err := row.Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert about: %w", err)
	}
	return nil
}

func aboutArgs(a *domain.About) []interface{} {
	return []interface{}{
		a.Name, a.Title, a.Bio, a.Email, a.Phone, a.Location,
		a.ProfileImageURL, a.ResumeURL, a.LinkedInURL, a.GitHubURL, a.TwitterURL,
		a.HeroHeading, a.HeroTagline, a.HeroDescription, a.HeroCTAPrimary, a.HeroCTASecondary,
		a.ShowProfilePicture, a.FooterTagline, a.FooterShowSocialLinks, a.FooterShowResumeLink,
		a.FooterCopyrightText,
		nullInt(a.StatProjects), nullInt(a.StatSkills), nullInt(a.StatCertifications), nullInt(a.StatExperience),
		a.AvailabilityStatus, a.AvailabilityText,
	}
}
