package pages

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/flash"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/web"
)

const (
	msgContactSent   = "Thank you for your message! I will get back to you soon."
	msgContactFailed = "There was an error sending your message. Please try again."
)

// Pages builds the public page views.
type Pages interface {
	Home(ctx context.Context) (*domain.HomeView, error)
	About(ctx context.Context) (*domain.AboutView, error)
	Skills(ctx context.Context) (*domain.SkillsView, error)
	Projects(ctx context.Context, filter, sortBy string) (*domain.ProjectsView, error)
	ProjectDetail(ctx context.Context, id int64) (*domain.ProjectDetailView, error)
	Certificates(ctx context.Context) (*domain.CertificatesView, error)
	Contact(ctx context.Context, f *domain.Flash) (*domain.ContactView, error)
}

type ContactSubmitter interface {
	Submit(ctx context.Context, in domain.ContactInput) (*domain.ContactMessage, error)
}

// Handler serves the public site. Every page renders HTML, or JSON when the
// client asks for it.
type Handler struct {
	pages   Pages
	contact ContactSubmitter
	flashes flash.Store
	log     *logger.Logger
}

func NewHandler(pages Pages, contact ContactSubmitter, flashes flash.Store, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		pages:   pages,
		contact: contact,
		flashes: flashes,
		log:     log.With("handler", "pages"),
	}
}

// RegisterRoutes mounts the public pages. contactLimit guards POST /contact
// and may be nil.
func (h *Handler) RegisterRoutes(r gin.IRouter, contactLimit gin.HandlerFunc) {
	r.GET("/", h.Home)
	r.GET("/about", h.About)
	r.GET("/skills", h.Skills)
	r.GET("/projects", h.Projects)
	r.GET("/projects/:id", h.ProjectDetail)
	r.GET("/certificates", h.Certificates)
	r.GET("/contact", h.ContactPage)

	post := []gin.HandlerFunc{h.SubmitContact}
	if contactLimit != nil {
		post = append([]gin.HandlerFunc{contactLimit}, post...)
	}
	r.POST("/contact", post...)
}

func (h *Handler) Home(c *gin.Context) {
	view, err := h.pages.Home(c.Request.Context())
	h.respond(c, web.PageHome, view, err)
}

func (h *Handler) About(c *gin.Context) {
	view, err := h.pages.About(c.Request.Context())
	h.respond(c, web.PageAbout, view, err)
}

func (h *Handler) Skills(c *gin.Context) {
	view, err := h.pages.Skills(c.Request.Context())
	h.respond(c, web.PageSkills, view, err)
}

func (h *Handler) Projects(c *gin.Context) {
	view, err := h.pages.Projects(c.Request.Context(), c.Query("filter"), c.Query("sort"))
	h.respond(c, web.PageProjects, view, err)
}

func (h *Handler) ProjectDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.notFound(c)
		return
	}
	view, err := h.pages.ProjectDetail(c.Request.Context(), id)
	h.respond(c, web.PageProjectDetail, view, err)
}

func (h *Handler) Certificates(c *gin.Context) {
	view, err := h.pages.Certificates(c.Request.Context())
	h.respond(c, web.PageCertificates, view, err)
}

func (h *Handler) ContactPage(c *gin.Context) {
	view, err := h.pages.Contact(c.Request.Context(), h.popFlash(c))
	h.respond(c, web.PageContact, view, err)
}

// SubmitContact accepts the contact form. AJAX and JSON clients get a status
// code and JSON body; browsers are redirected back to /contact with a flash.
func (h *Handler) SubmitContact(c *gin.Context) {
	var in domain.ContactInput
	if err := c.ShouldBind(&in); err != nil {
		h.contactResult(c, http.StatusBadRequest, domain.FlashError, "invalid request body")
		return
	}

	_, err := h.contact.Submit(c.Request.Context(), in)
	if err != nil {
		if verr, ok := domain.IsValidation(err); ok {
			h.contactResult(c, http.StatusBadRequest, domain.FlashError, verr.Message)
			return
		}
		h.log.Error("contact submission failed", "error", err.Error())
		h.contactResult(c, http.StatusInternalServerError, domain.FlashError, msgContactFailed)
		return
	}
	h.contactResult(c, http.StatusOK, domain.FlashSuccess, msgContactSent)
}

func (h *Handler) contactResult(c *gin.Context, status int, level, message string) {
	if isAJAX(c) {
		body := gin.H{"success": status == http.StatusOK, "message": message}
		if status != http.StatusOK {
			body["error"] = message
		}
		c.JSON(status, body)
		return
	}

	if h.flashes != nil {
		id, err := h.flashes.Put(c.Request.Context(), domain.Flash{Level: level, Message: message})
		if err != nil {
			h.log.Warn("failed to store flash", "error", err.Error())
		} else {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(flash.CookieName, id, 300, "/", "", c.Request.TLS != nil, true)
		}
	}
	c.Redirect(http.StatusSeeOther, "/contact")
}

// popFlash consumes the flash referenced by the cookie, if any.
func (h *Handler) popFlash(c *gin.Context) *domain.Flash {
	if h.flashes == nil {
		return nil
	}
	id, err := c.Cookie(flash.CookieName)
	if err != nil || id == "" {
		return nil
	}
	c.SetCookie(flash.CookieName, "", -1, "/", "", c.Request.TLS != nil, true)

	f, err := h.flashes.Pop(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, flash.ErrNotFound) {
			h.log.Warn("failed to load flash", "error", err.Error())
		}
		return nil
	}
	return &f
}

func (h *Handler) respond(c *gin.Context, page string, view any, err error) {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.log.Error("failed to build page", "page", page, "error", err.Error())
		if wantsJSON(c) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, view)
		return
	}
	c.HTML(http.StatusOK, page, view)
}

func (h *Handler) notFound(c *gin.Context) {
	if wantsJSON(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.HTML(http.StatusNotFound, web.PageNotFound, gin.H{})
}

// NoRoute renders the not-found page for unmatched paths.
func (h *Handler) NoRoute(c *gin.Context) {
	h.notFound(c)
}

func wantsJSON(c *gin.Context) bool {
	if c.Query("format") == "json" {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

func isAJAX(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" || wantsJSON(c) {
		return true
	}
	return strings.HasPrefix(c.ContentType(), gin.MIMEJSON)
}
