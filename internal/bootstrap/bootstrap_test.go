package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/admin"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/pages"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/flash"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/observability"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/service"
)

func TestParseRedisURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		addr    string
		user    string
		pass    string
		db      int
		tls     bool
		wantErr bool
	}{
		{name: "plain", url: "redis://localhost:6379", addr: "localhost:6379"},
		{name: "auth and db", url: "redis://app:pw@cache:6380/2", addr: "cache:6380", user: "app", pass: "pw", db: 2},
		{name: "tls", url: "rediss://:pw@cache.example.com:6379/0", addr: "cache.example.com:6379", pass: "pw", tls: true},
		{name: "bad scheme", url: "http://localhost:6379", wantErr: true},
		{name: "bad db", url: "redis://localhost:6379/abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseRedisURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.addr, opts.Addr)
			assert.Equal(t, tt.user, opts.Username)
			assert.Equal(t, tt.pass, opts.Password)
			assert.Equal(t, tt.db, opts.DB)
			assert.Equal(t, tt.tls, opts.TLSConfig != nil)
		})
	}
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()

	client, err := NewRedisClient(context.Background(), "redis://"+addr)
	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, client.Ping(context.Background()).Err())

	mr.Close()
	_, err = NewRedisClient(context.Background(), "redis://"+addr)
	assert.Error(t, err)
}

func TestAdminAuth(t *testing.T) {
	h, err := AdminAuth(context.Background(), config.AdminConfig{AuthMode: config.AuthModeAPIKey, APIKey: "k"})
	require.NoError(t, err)
	assert.NotNil(t, h)

	_, err = AdminAuth(context.Background(), config.AdminConfig{AuthMode: config.AuthModeFirebase})
	assert.Error(t, err, "credentials path is required")

	_, err = AdminAuth(context.Background(), config.AdminConfig{AuthMode: "basic"})
	assert.Error(t, err)
}

func TestNewAppDatabaseFailureShutsDownTracing(t *testing.T) {
	var shutdowns int
	orig := initTracing
	initTracing = func(context.Context, *logger.Logger, observability.TracingConfig) (observability.Shutdown, error) {
		return func(context.Context) error { shutdowns++; return nil }, nil
	}
	t.Cleanup(func() { initTracing = orig })

	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:"},
		Tracing:  config.TracingConfig{Enabled: true, SampleRatio: 1},
	}
	app, err := NewApp(context.Background(), cfg, logger.NewNop())
	require.Error(t, err)
	assert.Nil(t, app)
	assert.Equal(t, 1, shutdowns)
}

func newRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	stores := NewStores(db)
	auth, err := AdminAuth(context.Background(), config.AdminConfig{AuthMode: config.AuthModeAPIKey, APIKey: "k"})
	require.NoError(t, err)

	r, err := BuildRouter(RouterDeps{
		ServiceName:    "portfolio",
		Version:        "test",
		AllowedOrigins: []string{"https://admin.example.com"},
		DB:             db,
		Pages: pages.NewHandler(
			service.NewPageService(stores.Readers()),
			service.NewContactService(nil, nil, "", nil),
			flash.NewMemoryStore(time.Minute),
			nil,
		),
		Admin:     admin.NewHandler(service.NewAdminService(stores, nil), nil),
		AdminAuth: auth,
	})
	require.NoError(t, err)
	return r, mock
}

func TestBuildRouter(t *testing.T) {
	r, mock := newRouter(t)

	mock.ExpectPing()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"db":"up"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/api/summary", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects/abc", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildRouterCORSPreflight(t *testing.T) {
	r, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/admin/api/skills", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsConfigWildcard(t *testing.T) {
	cfg := corsConfig([]string{"*"})
	assert.True(t, cfg.AllowAllOrigins)
	assert.False(t, cfg.AllowCredentials)

	cfg = corsConfig([]string{"https://a.example.com"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example.com"}, cfg.AllowOrigins)
}
