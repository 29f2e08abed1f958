package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/admin"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/pages"
	authmw "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/middleware"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/web"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	TrustedProxies []string
	Tracing        bool

	DB    httpapi.Pinger
	Redis httpapi.Pinger

	Pages        *pages.Handler
	Admin        *admin.Handler
	AdminAuth    gin.HandlerFunc
	ContactLimit *middleware.IPRateLimiter

	Log *logger.Logger
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		return nil, err
	}
	if dep.Tracing {
		r.Use(otelgin.Middleware(dep.ServiceName))
	}
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	r.HTMLRender = renderer

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	var contactLimit gin.HandlerFunc
	if dep.ContactLimit != nil {
		contactLimit = middleware.RateLimitMiddleware(dep.ContactLimit)
	}
	dep.Pages.RegisterRoutes(r, contactLimit)
	r.NoRoute(dep.Pages.NoRoute)

	adminAPI := r.Group("/admin/api")
	adminAPI.Use(dep.AdminAuth)
	dep.Admin.RegisterRoutes(adminAPI)

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader, authmw.APIKeyHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
