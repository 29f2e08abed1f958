package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

const certificateColumns = `
	id, certificate_name, issuing_organization, issue_date, expiry_date,
	credential_id, credential_url, image_url, description, sort_order,
	created_at, updated_at`

// CertificateRepository handles PostgreSQL operations for certificates
type CertificateRepository struct {
	db *sql.DB
}

// NewCertificateRepository creates a new CertificateRepository
func NewCertificateRepository(db *sql.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) List(ctx context.Context) ([]domain.Certificate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+certificateColumns+`
		FROM certificates
		ORDER BY sort_order ASC, issue_date DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query certificates: %w", err)
	}
	defer rows.Close()

	certs := []domain.Certificate{}
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certs = append(certs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate certificates: %w", err)
	}
	return certs, nil
}

func (r *CertificateRepository) Get(ctx context.Context, id int64) (*domain.Certificate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+certificateColumns+` FROM certificates WHERE id = $1`, id)
	c, err := scanCertificate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	return c, nil
}

func (r *CertificateRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM certificates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count certificates: %w", err)
	}
	return n, nil
}

func (r *CertificateRepository) Create(ctx context.Context, c *domain.Certificate) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO certificates (
			certificate_name, issuing_organization, issue_date, expiry_date,
			credential_id, credential_url, image_url, description, sort_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, certificateArgs(c)...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}
	return nil
}

func (r *CertificateRepository) Update(ctx context.Context, c *domain.Certificate) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE certificates
		SET certificate_name = $1, issuing_organization = $2, issue_date = $3,
		    expiry_date = $4, credential_id = $5, credential_url = $6, image_url = $7,
		    description = $8, sort_order = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING created_at, updated_at
	`, append(certificateArgs(c), c.ID)...).Scan(&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update certificate: %w", err)
	}
	return nil
}

func (r *CertificateRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "certificates", id)
}

// Duplicate copies a certificate with " (Copy)" appended to its name.
func (r *CertificateRepository) Duplicate(ctx context.Context, id int64) (*domain.Certificate, error) {
	src, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *src
	cp.ID = 0
	cp.CertificateName = src.CertificateName + " (Copy)"
	if err := r.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func certificateArgs(c *domain.Certificate) []interface{} {
	return []interface{}{
		c.CertificateName, c.IssuingOrganization, c.IssueDate.Time, nullDate(c.ExpiryDate),
		c.CredentialID, c.CredentialURL, c.ImageURL, c.Description, c.Order,
	}
}

func scanCertificate(row rowScanner) (*domain.Certificate, error) {
	var (
		c      domain.Certificate
		issued time.Time
		expiry sql.NullTime
	)
	if err := row.Scan(
		&c.ID, &c.CertificateName, &c.IssuingOrganization, &issued, &expiry,
		&c.CredentialID, &c.CredentialURL, &c.ImageURL, &c.Description, &c.Order,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.IssueDate = domain.DateOf(issued)
	c.ExpiryDate = dateFromNull(expiry)
	return &c, nil
}
