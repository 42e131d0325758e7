package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirelane/hirelane/internal/auth"
	"github.com/hirelane/hirelane/internal/dtos"
	"github.com/hirelane/hirelane/internal/models"
	"github.com/hirelane/hirelane/internal/services"
	"github.com/hirelane/hirelane/internal/storage"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Uploader     storage.Uploader
}

func NewApplicationHandler(apps *services.ApplicationService, up storage.Uploader) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps, Uploader: up}
}

// Create is POST /api/applications/create (multipart: resume). Job seekers
// only; the resume comes from the uploaded file or the profile URL.
func (h *ApplicationHandler) Create(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only job seekers can apply"})
		return
	}

	var req dtos.CreateApplicationRequest
	if err := c.ShouldBind(&req); err != nil || req.Job == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Job ID is required"})
		return
	}

	resume, err := uploadField(c, h.Uploader, "resume", storage.FolderResumes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if resume == "" {
		resume = req.ResumeURL
	}
	if resume == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Resume file or URL is required"})
		return
	}

	app, err := h.Applications.Create(user.ID, req.Job, resume, req.CoverLetter)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		log.Printf("Application create error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully", "application": app})
}

// List is GET /api/applications. Scoped to the caller: job seekers see their
// own submissions, companies see applications against their jobs.
func (h *ApplicationHandler) List(c *gin.Context) {
	var (
		apps []models.Application
		err  error
	)
	switch auth.Role(c) {
	case models.RoleJobSeeker:
		user, _ := auth.CurrentUser(c)
		apps, err = h.Applications.ListForApplicant(user.ID)
	case models.RoleEmployer:
		company, _ := auth.CurrentCompany(c)
		apps, err = h.Applications.ListForCompany(company.ID)
	default:
		c.JSON(http.StatusForbidden, gin.H{"message": "Not allowed"})
		return
	}
	if err != nil {
		log.Printf("Get applications error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// GetByID is GET /api/applications/:id, restricted to the applicant or the
// company that owns the job.
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application id"})
		return
	}

	app, err := h.Applications.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
			return
		}
		log.Printf("Get application error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if !h.canView(c, app) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not allowed"})
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) canView(c *gin.Context, app *models.Application) bool {
	if user, ok := auth.CurrentUser(c); ok {
		return app.ApplicantID == user.ID
	}
	if company, ok := auth.CurrentCompany(c); ok {
		return app.Job != nil && app.Job.CompanyID == company.ID
	}
	return false
}
