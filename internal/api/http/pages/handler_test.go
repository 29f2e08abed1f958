package pages

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/flash"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/web"
)

type fakePages struct {
	err         error
	filter      string
	sort        string
	detailCalls int
}

func (f *fakePages) Home(context.Context) (*domain.HomeView, error) {
	if f.err != nil {
		return nil, f.err
	}
	about := domain.DefaultAbout()
	return &domain.HomeView{About: &about, Stats: domain.Stats{Projects: 42}}, nil
}

func (f *fakePages) About(context.Context) (*domain.AboutView, error) {
	return &domain.AboutView{}, f.err
}

func (f *fakePages) Skills(context.Context) (*domain.SkillsView, error) {
	return &domain.SkillsView{}, f.err
}

func (f *fakePages) Projects(_ context.Context, filter, sortBy string) (*domain.ProjectsView, error) {
	f.filter, f.sort = filter, sortBy
	return &domain.ProjectsView{Filter: domain.FilterAll, Sort: domain.SortRecent, Projects: []domain.Project{}}, nil
}

func (f *fakePages) ProjectDetail(_ context.Context, id int64) (*domain.ProjectDetailView, error) {
	f.detailCalls++
	if id != 1 {
		return nil, domain.ErrNotFound
	}
	return &domain.ProjectDetailView{Project: domain.Project{ID: 1, Title: "Churn Model"}}, nil
}

func (f *fakePages) Certificates(context.Context) (*domain.CertificatesView, error) {
	return &domain.CertificatesView{Counts: domain.CertificateCounts{Total: 3, Active: 2, ExpiringSoon: 1}}, nil
}

func (f *fakePages) Contact(_ context.Context, fl *domain.Flash) (*domain.ContactView, error) {
	return &domain.ContactView{Flash: fl}, nil
}

type fakeContact struct {
	got []domain.ContactInput
	err error
}

func (f *fakeContact) Submit(_ context.Context, in domain.ContactInput) (*domain.ContactMessage, error) {
	f.got = append(f.got, in)
	if f.err != nil {
		return nil, f.err
	}
	if in.Email == "" {
		return nil, domain.NewValidationError(domain.KindMissingField, "email", "Please fill in all required fields.")
	}
	return &domain.ContactMessage{ID: 1, Name: in.Name}, nil
}

func setup(t *testing.T) (*gin.Engine, *fakePages, *fakeContact) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pages := &fakePages{}
	contact := &fakeContact{}
	h := NewHandler(pages, contact, flash.NewMemoryStore(time.Minute), nil)

	r := gin.New()
	r.HTMLRender = web.MustNewRenderer()
	h.RegisterRoutes(r, nil)
	r.NoRoute(h.NoRoute)
	return r, pages, contact
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomeNegotiatesFormat(t *testing.T) {
	r, _, _ := setup(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<strong>42</strong>")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	w = do(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Stats domain.Stats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 42, body.Stats.Projects)

	w = do(r, httptest.NewRequest(http.MethodGet, "/?format=json", nil))
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestProjectsPassesQuery(t *testing.T) {
	r, pages, _ := setup(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/projects?filter=bogus&sort=bogus&format=json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bogus", pages.filter)
	assert.Equal(t, "bogus", pages.sort)
	assert.Contains(t, w.Body.String(), `"filter":"all"`)
	assert.Contains(t, w.Body.String(), `"sort":"recent"`)
}

func TestProjectDetailNotFound(t *testing.T) {
	r, pages, _ := setup(t)

	tests := []struct {
		path  string
		code  int
		calls int
	}{
		{"/projects/1?format=json", http.StatusOK, 1},
		{"/projects/99?format=json", http.StatusNotFound, 1},
		{"/projects/abc?format=json", http.StatusNotFound, 0},
		{"/projects/-3?format=json", http.StatusNotFound, 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			pages.detailCalls = 0
			w := do(r, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.calls, pages.detailCalls)
		})
	}

	w := do(r, httptest.NewRequest(http.MethodGet, "/projects/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestPageErrorIs500(t *testing.T) {
	r, pages, _ := setup(t)
	pages.err = assert.AnError

	w := do(r, httptest.NewRequest(http.MethodGet, "/?format=json", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestCertificatesJSON(t *testing.T) {
	r, _, _ := setup(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/certificates?format=json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"counts":{"total":3,"active":2,"expiring_soon":1}`)
}

func TestSubmitContactAJAX(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		code int
		want string
	}{
		{"success", `{"name":"A","email":"a@b.co","subject":"Hi","message":"Hello"}`, nil, http.StatusOK, msgContactSent},
		{"validation", `{"name":"A","subject":"Hi","message":"Hello"}`, nil, http.StatusBadRequest, "Please fill in all required fields."},
		{"store failure", `{"name":"A","email":"a@b.co","subject":"Hi","message":"Hello"}`, assert.AnError, http.StatusInternalServerError, msgContactFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, contact := setup(t)
			contact.err = tt.err

			req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Requested-With", "XMLHttpRequest")
			w := do(r, req)

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
			assert.Len(t, contact.got, 1)
		})
	}
}

func TestSubmitContactFormRedirectsWithFlash(t *testing.T) {
	r, _, contact := setup(t)

	form := url.Values{
		"name":    {"Grace"},
		"email":   {"grace@example.com"},
		"subject": {"Hello"},
		"message": {"Hi there"},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := do(r, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/contact", w.Header().Get("Location"))
	require.Len(t, contact.got, 1)
	assert.Equal(t, "Grace", contact.got[0].Name)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, flash.CookieName, cookies[0].Name)

	// The flash is shown once.
	get := httptest.NewRequest(http.MethodGet, "/contact", nil)
	get.AddCookie(cookies[0])
	w = do(r, get)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thank you for your message!")

	get = httptest.NewRequest(http.MethodGet, "/contact", nil)
	get.AddCookie(cookies[0])
	w = do(r, get)
	assert.NotContains(t, w.Body.String(), "Thank you for your message!")
}

func TestSubmitContactFormValidationFlash(t *testing.T) {
	r, _, _ := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=A&subject=B&message=C"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := do(r, req)
	require.Equal(t, http.StatusSeeOther, w.Code)

	get := httptest.NewRequest(http.MethodGet, "/contact?format=json", nil)
	get.AddCookie(w.Result().Cookies()[0])
	w = do(r, get)
	assert.Contains(t, w.Body.String(), `"level":"error"`)
	assert.Contains(t, w.Body.String(), "Please fill in all required fields.")
}

func TestNoRoute(t *testing.T) {
	r, _, _ := setup(t)
	w := do(r, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
