package services

import (
	"errors"
	"fmt"

	"github.com/hirelane/hirelane/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Create records an application. The referenced job must exist; the resume
// URL is resolved by the handler before this point.
func (s *ApplicationService) Create(applicantID, jobID uint, resume, coverLetter string) (*models.Application, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup job: %w", err)
	}

	app := &models.Application{
		ApplicantID: applicantID,
		JobID:       jobID,
		Resume:      resume,
		CoverLetter: coverLetter,
		Status:      models.ApplicationPending,
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

// ListForApplicant returns the job seeker's own applications.
func (s *ApplicationService) ListForApplicant(applicantID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.populated().Where("applicant_id = ?", applicantID).
		Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// ListForCompany returns applications against any of the company's jobs.
func (s *ApplicationService) ListForCompany(companyID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.populated().
		Joins("JOIN jobs ON jobs.id = applications.job_id AND jobs.company_id = ?", companyID).
		Order("applications.created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list company applications: %w", err)
	}
	return apps, nil
}

func (s *ApplicationService) GetByID(id uint) (*models.Application, error) {
	var app models.Application
	if err := s.populated().First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &app, nil
}

func (s *ApplicationService) populated() *gorm.DB {
	return s.DB.Preload("Applicant").Preload("Job")
}
