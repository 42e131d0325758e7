package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hirelane/hirelane/internal/auth"
	"github.com/hirelane/hirelane/internal/dtos"
	"github.com/hirelane/hirelane/internal/models"
	"github.com/hirelane/hirelane/internal/services"
	"github.com/hirelane/hirelane/internal/storage"
	"gorm.io/datatypes"
)

type JobHandler struct {
	Jobs     *services.JobService
	Uploader storage.Uploader
}

func NewJobHandler(jobs *services.JobService, up storage.Uploader) *JobHandler {
	return &JobHandler{Jobs: jobs, Uploader: up}
}

// jobFromForm normalizes the multipart job form into a model. All legacy
// list encodings are resolved here so nothing untyped reaches the store.
func jobFromForm(c *gin.Context, req *dtos.JobRequest) *models.Job {
	location, workMode := models.NormalizeLocation(req.Location)

	department := models.NormalizeDepartment(req.Department)
	salaryRange := req.SalaryRange
	if salaryRange == "" {
		salaryRange = "Not specified"
	}

	return &models.Job{
		JobTitle:         req.JobTitle,
		JobDescription:   req.JobDescription,
		Responsibilities: dtos.ParseStringList(c.PostFormArray("responsibilities")),
		Qualifications: models.Qualifications{
			Essential: dtos.ParseStringList(c.PostFormArray("essential")),
			Preferred: dtos.ParseStringList(c.PostFormArray("preferred")),
		},
		Location:                location,
		WorkMode:                workMode,
		Department:              department,
		Address:                 req.Address,
		CompanyOverview:         req.CompanyOverview,
		SalaryRange:             salaryRange,
		Benefits:                dtos.ParseStringList(c.PostFormArray("benefits")),
		CompanyInfo:             req.CompanyInfo,
		ApplicationInstructions: req.ApplicationInstructions,
		ApplicationDeadline:     dtos.ParseDeadline(req.ApplicationDeadline),
		RequiredDocuments:       dtos.ParseStringList(c.PostFormArray("requiredDocuments")),
		ContactInformation:      datatypes.JSONMap(dtos.ParseContactMap(req.ContactInformation)),
	}
}

// jobUpdatesFromForm builds the sparse column set for a job update. List
// fields and location are always recomputed from the form; scalar text
// fields are only touched when the client sent them, so an omitted field
// keeps its stored value.
func jobUpdatesFromForm(c *gin.Context, req *dtos.JobRequest) map[string]any {
	location, workMode := models.NormalizeLocation(req.Location)

	updates := map[string]any{
		"job_title":           req.JobTitle,
		"location":            location,
		"work_mode":           workMode,
		"responsibilities":    datatypes.JSONSlice[string](dtos.ParseStringList(c.PostFormArray("responsibilities"))),
		"qual_essential":      datatypes.JSONSlice[string](dtos.ParseStringList(c.PostFormArray("essential"))),
		"qual_preferred":      datatypes.JSONSlice[string](dtos.ParseStringList(c.PostFormArray("preferred"))),
		"benefits":            datatypes.JSONSlice[string](dtos.ParseStringList(c.PostFormArray("benefits"))),
		"required_documents":  datatypes.JSONSlice[string](dtos.ParseStringList(c.PostFormArray("requiredDocuments"))),
		"contact_information": datatypes.JSONMap(dtos.ParseContactMap(req.ContactInformation)),
	}

	for form, column := range map[string]string{
		"jobDescription":          "job_description",
		"address":                 "address",
		"companyOverview":         "company_overview",
		"companyInfo":             "company_info",
		"applicationInstructions": "application_instructions",
	} {
		if v, ok := c.GetPostForm(form); ok {
			updates[column] = v
		}
	}
	if v, ok := c.GetPostForm("salaryRange"); ok {
		if v == "" {
			v = "Not specified"
		}
		updates["salary_range"] = v
	}
	if v, ok := c.GetPostForm("department"); ok {
		updates["department"] = models.NormalizeDepartment(v)
	}
	if v, ok := c.GetPostForm("applicationDeadline"); ok {
		updates["application_deadline"] = dtos.ParseDeadline(v)
	}
	return updates
}

// Create is POST /api/jobs (multipart: companyLogo).
func (h *JobHandler) Create(c *gin.Context) {
	company, ok := auth.CurrentCompany(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Only companies can post jobs"})
		return
	}

	var req dtos.JobRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Job title is required"})
		return
	}

	logoURL, err := uploadField(c, h.Uploader, "companyLogo", storage.FolderLogos)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if logoURL == "" {
		logoURL = storage.DefaultLogo
	}

	job := jobFromForm(c, &req)
	job.CompanyID = company.ID
	job.CompanyLogo = logoURL

	job, err = h.Jobs.Create(job)
	if err != nil {
		log.Printf("Error creating job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Job posted successfully!", "job": job})
}

// Update is PATCH /api/jobs/:id (multipart). Owner only.
func (h *JobHandler) Update(c *gin.Context) {
	company, ok := auth.CurrentCompany(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Only companies can update jobs"})
		return
	}
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid job id"})
		return
	}

	var req dtos.JobRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Job title is required"})
		return
	}

	logoURL, err := uploadField(c, h.Uploader, "companyLogo", storage.FolderLogos)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updates := jobUpdatesFromForm(c, &req)
	if logoURL != "" {
		updates["company_logo"] = logoURL
	}

	job, err := h.Jobs.Update(id, company.ID, updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Unauthorized: You can update only your own posted jobs"})
		default:
			log.Printf("Error updating job: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job updated successfully!", "job": job})
}

// Delete is DELETE /api/jobs/:id. Owner only; applications go with the job.
func (h *JobHandler) Delete(c *gin.Context) {
	company, ok := auth.CurrentCompany(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only companies can delete jobs"})
		return
	}
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Job ID is required"})
		return
	}

	if err := h.Jobs.Delete(id, company.ID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized: You can delete only your own posted jobs"})
		default:
			log.Printf("Delete job error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while deleting job"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// List is GET /api/jobs with optional filters.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.Jobs.List(services.JobFilters{
		Search:     c.Query("search"),
		Department: c.Query("department"),
		WorkMode:   c.Query("workMode"),
		Location:   c.Query("location"),
		Salary:     c.Query("salary"),
	})
	if err != nil {
		log.Printf("Error fetching jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

// GetByID is GET /api/jobs/:id.
func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid job id"})
		return
	}
	job, err := h.Jobs.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
			return
		}
		log.Printf("Error fetching job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

// MyJobs is GET /api/jobs/my-jobs for the authenticated company.
func (h *JobHandler) MyJobs(c *gin.Context) {
	company, ok := auth.CurrentCompany(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Employer account required"})
		return
	}
	jobs, err := h.Jobs.ListByCompany(company.ID)
	if err != nil {
		log.Printf("Error fetching company jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
