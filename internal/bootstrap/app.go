package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/admin"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/pages"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth"
	authmw "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/middleware"
	cronjob "github.com/GoSim-25-26J-441/portfolio-backend/internal/cron"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/flash"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/notify"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/observability"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/service"
)

// App holds the wired server: stores, services, router and scheduler.
type App struct {
	Config    *config.Config
	Log       *logger.Logger
	DB        *sql.DB
	Redis     *redis.Client
	Router    *gin.Engine
	Scheduler *cronjob.Scheduler

	shutdownTracing observability.Shutdown
}

// initTracing is replaced in tests.
var initTracing = observability.InitTracing

// NewApp connects to the backing services and wires every component.
func NewApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	app := &App{Config: cfg, Log: log}

	shutdown, err := initTracing(ctx, log, observability.TracingConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Environment,
		Version:     cfg.App.Version,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}
	app.shutdownTracing = shutdown

	app.DB, err = OpenDB(ctx, cfg.Database)
	if err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("database: %w", err)
	}

	var flashes flash.Store
	var redisPing httpapi.Pinger
	if cfg.Redis.URL != "" {
		client, err := NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			app.Close(ctx)
			return nil, fmt.Errorf("redis: %w", err)
		}
		app.Redis = client
		flashes = flash.NewRedisStore(app.Redis, cfg.Contact.FlashTTL)
		redisPing = httpapi.PingFunc(func(ctx context.Context) error { return app.Redis.Ping(ctx).Err() })
	} else {
		log.Info("REDIS_URL not set, using in-memory flash store")
		flashes = flash.NewMemoryStore(cfg.Contact.FlashTTL)
	}

	notifier, err := notify.New(ctx, cfg.Mail, log)
	if err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("notifier: %w", err)
	}

	adminAuth, err := AdminAuth(ctx, cfg.Admin)
	if err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("admin auth: %w", err)
	}

	stores := NewStores(app.DB)
	pageSvc := service.NewPageService(stores.Readers())
	contactSvc := service.NewContactService(repository.NewContactRepository(app.DB), notifier, cfg.Contact.Recipient, log)
	adminSvc := service.NewAdminService(stores, log)
	digestSvc := service.NewDigestService(stores.Certificates, notifier, cfg.Contact.Recipient, log)

	app.Router, err = BuildRouter(RouterDeps{
		ServiceName:    cfg.App.Name,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
		Tracing:        cfg.Tracing.Enabled,
		DB:             app.DB,
		Redis:          redisPing,
		Pages:          pages.NewHandler(pageSvc, contactSvc, flashes, log),
		Admin:          admin.NewHandler(adminSvc, log),
		AdminAuth:      adminAuth,
		ContactLimit:   middleware.NewIPRateLimiter(cfg.Contact.RatePerMinute, cfg.Contact.Burst),
		Log:            log,
	})
	if err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("router: %w", err)
	}

	app.Scheduler = cronjob.NewScheduler(log)
	if err := app.Scheduler.Add("certificate_digest", cfg.Cron.CertificateDigest, digestSvc.Run); err != nil {
		app.Close(ctx)
		return nil, err
	}

	return app, nil
}

// AdminAuth returns the middleware guarding the admin API.
func AdminAuth(ctx context.Context, cfg config.AdminConfig) (gin.HandlerFunc, error) {
	switch cfg.AuthMode {
	case config.AuthModeFirebase:
		client, err := auth.InitializeFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			return nil, err
		}
		return authmw.FirebaseAuthMiddleware(client, cfg.Emails), nil
	case config.AuthModeAPIKey, "":
		return authmw.APIKeyMiddleware(cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("unsupported admin auth mode %q", cfg.AuthMode)
	}
}

// Server returns the HTTP server for the configured port.
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// Close releases connections and flushes traces.
func (a *App) Close(ctx context.Context) {
	if a.Scheduler != nil {
		a.Scheduler.Stop(ctx)
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Log.Warn("redis close failed", "error", err.Error())
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("db close failed", "error", err.Error())
		}
	}
	if a.shutdownTracing != nil {
		if err := a.shutdownTracing(ctx); err != nil {
			a.Log.Warn("tracing shutdown failed", "error", err.Error())
		}
	}
}
