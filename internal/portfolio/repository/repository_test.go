package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

var projectCols = []string{
	"id", "title", "description", "detailed_description", "image_url", "technologies",
	"project_url", "github_url", "featured", "status", "category", "key_achievements",
	"sort_order", "date_completed", "created_at", "updated_at",
}

func TestProjectRepository_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProjectRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM projects ORDER BY featured DESC, sort_order ASC, date_completed DESC NULLS LAST, id ASC")).
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow(1, "Sales", "d", "", "", "SQL, Python", "", "", true, "completed", "dashboard", "", 0,
				time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), now, now).
			AddRow(2, "Churn", "d", "", "", "", "", "", false, "in_progress", "machine_learning", "", 1,
				nil, now, now))

	projects, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, domain.CategoryDashboard, projects[0].Category)
	require.NotNil(t, projects[0].DateCompleted)
	assert.Equal(t, "2024-01-10", projects[0].DateCompleted.String())
	assert.Equal(t, []string{"SQL", "Python"}, projects[0].TechnologiesList())

	assert.Equal(t, domain.ProjectInProgress, projects[1].Status)
	assert.Nil(t, projects[1].DateCompleted)
}

func TestProjectRepository_GetNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM projects WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectRepository_CreateWritesNullDate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProjectRepository(db)
	now := time.Now()

	p := &domain.Project{Title: "Maps", Description: "d", Status: domain.ProjectCompleted, Category: domain.CategoryOther}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO projects")).
		WithArgs("Maps", "d", "", "", "", "", "", false, "completed", "other", "", 0, sql.NullTime{}).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))

	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, int64(7), p.ID)
}

func TestProjectRepository_SetFeatured(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProjectRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE projects SET featured = TRUE, updated_at = NOW() WHERE id = ANY($1)")).
		WithArgs(pq.Array([]int64{1, 2})).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.SetFeatured(context.Background(), []int64{1, 2}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.SetFeatured(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProjectRepository_Duplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProjectRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM projects WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow(1, "Sales", "d", "", "", "", "", "", true, "completed", "dashboard", "", 0, nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO projects")).
		WithArgs("Sales (Copy)", "d", "", "", "", "", "", false, "completed", "dashboard", "", 0, sql.NullTime{}).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(8, now, now))

	cp, err := repo.Duplicate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), cp.ID)
	assert.Equal(t, "Sales (Copy)", cp.Title)
	assert.False(t, cp.Featured)
}

func TestProjectRepository_Images(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProjectRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO project_images")).
		WithArgs(int64(5), "https://img/x.png", "", 0).
		WillReturnError(sql.ErrNoRows)
	err := repo.AddImage(context.Background(), &domain.ProjectImage{ProjectID: 5, ImageURL: "https://img/x.png"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mock.ExpectQuery(regexp.QuoteMeta("FROM project_images")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "image_url", "caption", "sort_order", "created_at"}).
			AddRow(3, 1, "https://img/a.png", "A", 0, now))
	images, err := repo.ListImages(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "A", images[0].Caption)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM project_images WHERE id = $1 AND project_id = $2")).
		WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteImage(context.Background(), 1, 3), domain.ErrNotFound)
}

func TestAboutRepository_Get(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAboutRepository(db)
	now := time.Now()

	cols := []string{
		"name", "title", "bio", "email", "phone", "location", "profile_image_url", "resume_url",
		"linkedin_url", "github_url", "twitter_url", "hero_heading", "hero_tagline",
		"hero_description", "hero_cta_primary", "hero_cta_secondary", "show_profile_picture",
		"footer_tagline", "footer_show_social_links", "footer_show_resume_link",
		"footer_copyright_text", "stat_projects", "stat_skills", "stat_certifications",
		"stat_experience", "availability_status", "availability_text", "created_at", "updated_at",
	}
	mock.ExpectQuery(regexp.QuoteMeta("FROM about")).
		WithArgs(domain.AboutID).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"Jane", "Analyst", "bio", "jane@example.com", "", "", "", "", "", "", "",
			"Heading", "", "", "View My Work", "Get In Touch", true,
			"tag", true, true, "", 42, nil, 0, nil, true, "Available", now, now,
		))

	about, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, about.StatProjects)
	assert.Equal(t, 42, *about.StatProjects)
	assert.Nil(t, about.StatSkills)
	require.NotNil(t, about.StatCertifications)
	assert.Equal(t, 0, *about.StatCertifications)
}

func TestAboutRepository_GetMissing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAboutRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM about")).WillReturnError(sql.ErrNoRows)
	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAboutRepository_CreateTwice(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAboutRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (id) DO NOTHING")).WillReturnError(sql.ErrNoRows)
	a := domain.DefaultAbout()
	assert.ErrorIs(t, repo.Create(context.Background(), &a), domain.ErrAboutAlreadyExists)
}

func TestCertificateRepository_ListAndDuplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCertificateRepository(db)
	now := time.Now()
	cols := []string{
		"id", "certificate_name", "issuing_organization", "issue_date", "expiry_date",
		"credential_id", "credential_url", "image_url", "description", "sort_order",
		"created_at", "updated_at",
	}
	issued := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM certificates")).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "AWS", "Amazon", issued, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "", "", "", "", 0, now, now))
	certs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, "2023-03-01", certs[0].IssueDate.String())
	assert.Equal(t, "2026-03-01", certs[0].ExpiryDate.String())

	mock.ExpectQuery(regexp.QuoteMeta("FROM certificates WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(1, "AWS", "Amazon", issued, nil, "", "", "", "", 0, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO certificates")).
		WithArgs("AWS (Copy)", "Amazon", issued, sql.NullTime{}, "", "", "", "", 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(2, now, now))

	cp, err := repo.Duplicate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "AWS (Copy)", cp.CertificateName)
	assert.Nil(t, cp.ExpiryDate)
}

func TestExperienceRepository_SetCurrentClearsEndDate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewExperienceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE experiences SET current = TRUE, end_date = NULL, updated_at = NOW() WHERE id = ANY($1)")).
		WithArgs(pq.Array([]int64{4})).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.SetCurrent(context.Background(), []int64{4}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestEducationRepository_Get(t *testing.T) {
	db, mock := newMock(t)
	repo := NewEducationRepository(db)
	now := time.Now()

	cols := []string{
		"id", "institution", "degree", "field_of_study", "start_year", "start_month", "end_year",
		"end_month", "current", "grade", "description", "institution_logo_url",
		"certificate_image_url", "sort_order", "created_at", "updated_at",
	}
	mock.ExpectQuery(regexp.QuoteMeta("FROM education WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "MIT", "BSc", "CS", 2018, 9, nil, nil, true, "", "", "", "", 0, now, now))

	edu, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Sep 2018 - Present", edu.DateRange())
}

func TestContactRepository_CreateAndMarkRead(t *testing.T) {
	db, mock := newMock(t)
	repo := NewContactRepository(db)
	now := time.Now()

	msg := &domain.ContactMessage{Name: "A", Email: "a@b.com", Subject: "s", Message: "m", Read: true}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contact_messages")).
		WithArgs("A", "a@b.com", "", "s", "m").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))
	require.NoError(t, repo.Create(context.Background(), msg))
	assert.Equal(t, int64(11), msg.ID)
	assert.False(t, msg.Read)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contact_messages SET read = $1 WHERE id = ANY($2)")).
		WithArgs(true, pq.Array([]int64{11})).
		WillReturnResult(sqlmock.NewResult(0, 1))
	n, err := repo.SetRead(context.Background(), []int64{11}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestContactRepository_ListUnread(t *testing.T) {
	db, mock := newMock(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE read = FALSE")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "subject", "message", "read", "created_at"}).
			AddRow(1, "A", "a@b.com", "", "s", "m", false, time.Now()))

	msgs, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.False(t, msgs[0].Read)
}

func TestSkillRepository_DeleteMissing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSkillRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM skills WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), domain.ErrNotFound)
}

func TestSkillRepository_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSkillRepository(db)
	now := time.Now()

	s := &domain.Skill{ID: 2, Name: "SQL", Category: domain.SkillTechnical, Proficiency: 90, Icon: "sql"}
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE skills")).
		WithArgs(int64(2), "SQL", "technical", 90, "sql", "", 0).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, repo.Update(context.Background(), s))
	assert.Equal(t, now, s.UpdatedAt)
}
