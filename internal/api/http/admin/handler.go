package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/service"
)

// Handler exposes the admin content API as JSON.
type Handler struct {
	svc *service.AdminService
	log *logger.Logger
}

func NewHandler(svc *service.AdminService, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{svc: svc, log: log.With("handler", "admin")}
}

// idsRequest is the body of every bulk action.
type idsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// RegisterRoutes mounts the admin API on rg. Authentication is applied by
// the caller.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/summary", h.Summary)

	rg.GET("/about", h.GetAbout)
	rg.PUT("/about", h.SaveAbout)
	rg.DELETE("/about", func(c *gin.Context) { h.writeError(c, domain.ErrAboutNotDeletable) })

	registerCRUD(rg.Group("/skills"), h, crud[domain.Skill]{
		list:   h.svc.ListSkills,
		get:    h.svc.GetSkill,
		create: h.svc.CreateSkill,
		update: h.svc.UpdateSkill,
		delete: h.svc.DeleteSkill,
		setID:  func(v *domain.Skill, id int64) { v.ID = id },
	})

	projects := rg.Group("/projects")
	registerCRUD(projects, h, crud[domain.Project]{
		list:   h.svc.ListProjects,
		get:    h.svc.GetProject,
		create: h.svc.CreateProject,
		update: h.svc.UpdateProject,
		delete: h.svc.DeleteProject,
		setID:  func(v *domain.Project, id int64) { v.ID = id },
	})
	projects.POST("/actions/feature", h.bulk(func(ctx context.Context, ids []int64) (int64, error) {
		return h.svc.SetProjectsFeatured(ctx, ids, true)
	}))
	projects.POST("/actions/unfeature", h.bulk(func(ctx context.Context, ids []int64) (int64, error) {
		return h.svc.SetProjectsFeatured(ctx, ids, false)
	}))
	projects.POST("/:id/duplicate", h.DuplicateProject)
	projects.POST("/:id/images", h.AddProjectImage)
	projects.DELETE("/:id/images/:image_id", h.DeleteProjectImage)

	certificates := rg.Group("/certificates")
	registerCRUD(certificates, h, crud[domain.Certificate]{
		list:   h.svc.ListCertificates,
		get:    h.svc.GetCertificate,
		create: h.svc.CreateCertificate,
		update: h.svc.UpdateCertificate,
		delete: h.svc.DeleteCertificate,
		setID:  func(v *domain.Certificate, id int64) { v.ID = id },
	})
	certificates.POST("/:id/duplicate", h.DuplicateCertificate)

	experiences := rg.Group("/experiences")
	registerCRUD(experiences, h, crud[domain.Experience]{
		list:   h.svc.ListExperiences,
		get:    h.svc.GetExperience,
		create: h.svc.CreateExperience,
		update: h.svc.UpdateExperience,
		delete: h.svc.DeleteExperience,
		setID:  func(v *domain.Experience, id int64) { v.ID = id },
	})
	experiences.POST("/actions/current", h.bulk(func(ctx context.Context, ids []int64) (int64, error) {
		return h.svc.SetExperiencesCurrent(ctx, ids, true)
	}))
	experiences.POST("/actions/past", h.bulk(func(ctx context.Context, ids []int64) (int64, error) {
		return h.svc.SetExperiencesCurrent(ctx, ids, false)
	}))

	education := rg.Group("/education")
	registerCRUD(education, h, crud[domain.Education]{
		list:   h.svc.ListEducation,
		get:    h.svc.GetEducation,
		create: h.svc.CreateEducation,
		update: h.svc.UpdateEducation,
		delete: h.svc.DeleteEducation,
		setID:  func(v *domain.Education, id int64) { v.ID = id },
	})
	education.POST("/actions/current", h.bulk(func(ctx context.Context, ids []int64) (int64, error) {
		return h.svc.SetEducationCurrent(ctx, ids, true)
	}))
	education.POST("/actions/completed", h.bulk(func(ctx context.Context, ids []int64) (int64, error) {
		return h.svc.SetEducationCurrent(ctx, ids, false)
	}))

	messages := rg.Group("/messages")
	messages.GET("", h.ListMessages)
	messages.GET("/:id", h.GetMessage)
	messages.DELETE("/:id", h.DeleteMessage)
	messages.POST("/actions/read", h.bulk(func(ctx context.Context, ids []int64) (int64, error) {
		return h.svc.SetMessagesRead(ctx, ids, true)
	}))
	messages.POST("/actions/unread", h.bulk(func(ctx context.Context, ids []int64) (int64, error) {
		return h.svc.SetMessagesRead(ctx, ids, false)
	}))
}

func (h *Handler) Summary(c *gin.Context) {
	sum, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) GetAbout(c *gin.Context) {
	a, err := h.svc.GetAbout(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) SaveAbout(c *gin.Context) {
	var a domain.About
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := h.svc.SaveAbout(c.Request.Context(), &a); err != nil {
		h.writeError(c, err)
		return
	}
	h.log.Info("about updated", "admin", auth.AdminID(c))
	c.JSON(http.StatusOK, a)
}

func (h *Handler) DuplicateProject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.DuplicateProject(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) AddProjectImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var img domain.ProjectImage
	if err := c.ShouldBindJSON(&img); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	img.ProjectID = id
	if err := h.svc.AddProjectImage(c.Request.Context(), &img); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (h *Handler) DeleteProjectImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	imageID, ok := paramID(c, "image_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteProjectImage(c.Request.Context(), id, imageID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DuplicateCertificate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	cert, err := h.svc.DuplicateCertificate(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cert)
}

func (h *Handler) ListMessages(c *gin.Context) {
	unread, _ := strconv.ParseBool(c.DefaultQuery("unread", "false"))
	msgs, err := h.svc.ListMessages(c.Request.Context(), unread)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *Handler) GetMessage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, err := h.svc.GetMessage(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMessage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteMessage(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bulk wraps an action over a set of ids and reports how many rows changed.
func (h *Handler) bulk(action func(ctx context.Context, ids []int64) (int64, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req idsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ids is required"})
			return
		}
		n, err := action(c.Request.Context(), req.IDs)
		if err != nil {
			h.writeError(c, err)
			return
		}
		h.log.Info("bulk action", "path", c.FullPath(), "ids", len(req.IDs), "updated", n, "admin", auth.AdminID(c))
		c.JSON(http.StatusOK, gin.H{"updated": n})
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if verr, ok := domain.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "kind": verr.Kind, "field": verr.Field})
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAboutAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAboutNotDeletable):
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": err.Error()})
	default:
		h.log.Error("admin request failed", "path", c.FullPath(), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return id, true
}
