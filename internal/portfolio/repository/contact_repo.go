package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// ContactRepository stores inbound contact messages. Rows are immutable
// except for the read flag.
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts an unread message; the server assigns id and created_at.
func (r *ContactRepository) Create(ctx context.Context, m *domain.ContactMessage) error {
	m.Read = false
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO contact_messages (name, email, phone, subject, message, read)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id, created_at
	`, m.Name, m.Email, m.Phone, m.Subject, m.Message).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// List returns messages newest first, optionally only unread ones.
func (r *ContactRepository) List(ctx context.Context, unreadOnly bool) ([]domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, phone, subject, message, read, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
	`
	if unreadOnly {
		query = `
			SELECT id, name, email, phone, subject, message, read, created_at
			FROM contact_messages
			WHERE read = FALSE
			ORDER BY created_at DESC, id DESC
		`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	out := []domain.ContactMessage{}
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact messages: %w", err)
	}
	return out, nil
}

func (r *ContactRepository) Get(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, subject, message, read, created_at
		FROM contact_messages
		WHERE id = $1
	`, id)
	m, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	return m, nil
}

// SetRead updates the read flag, the only mutable column.
func (r *ContactRepository) SetRead(ctx context.Context, ids []int64, read bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `UPDATE contact_messages SET read = $1 WHERE id = ANY($2)`, read, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to update contact messages: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

func (r *ContactRepository) CountUnread(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages WHERE read = FALSE`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return n, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "contact_messages", id)
}

func scanContact(row rowScanner) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
