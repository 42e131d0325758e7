package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hirelane/hirelane/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// JobFilters are the public listing predicates. Empty or "All" means the
// predicate is skipped.
type JobFilters struct {
	Search     string
	Department string
	WorkMode   string
	Location   string
	Salary     string
}

func (s *JobService) Create(job *models.Job) (*models.Job, error) {
	job.PostedOn = time.Now()
	if err := s.DB.Create(job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// Update applies the given columns after checking the requester owns the
// job. Columns absent from the map keep their stored values, so the owning
// id, posting time and logo survive a plain field edit.
func (s *JobService) Update(id, companyID uint, updates map[string]any) (*models.Job, error) {
	job, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job.CompanyID != companyID {
		return nil, ErrNotOwner
	}

	if len(updates) > 0 {
		err := s.DB.Model(&models.Job{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, fmt.Errorf("update job: %w", err)
		}
	}
	return s.GetByID(id)
}

// Delete removes a job and its applications together, after the ownership
// check. Cascading keeps the application listings free of dangling jobs.
func (s *JobService) Delete(id, companyID uint) error {
	job, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if job.CompanyID != companyID {
		return ErrNotOwner
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return fmt.Errorf("delete applications: %w", err)
		}
		if err := tx.Delete(&models.Job{}, id).Error; err != nil {
			return fmt.Errorf("delete job: %w", err)
		}
		return nil
	})
}

func (s *JobService) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.Preload("Company").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &job, nil
}

// List returns all matching jobs, newest first.
func (s *JobService) List(f JobFilters) ([]models.Job, error) {
	q := s.DB.Preload("Company")

	if f.Search != "" {
		q = q.Where("LOWER(job_title) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	if active(f.Department) {
		q = q.Where("department = ?", f.Department)
	}
	if active(f.WorkMode) {
		q = q.Where("work_mode = ?", f.WorkMode)
	}
	if active(f.Location) {
		q = q.Where("location = ?", f.Location)
	}
	if active(f.Salary) {
		q = q.Where("salary_range LIKE ?", "%"+f.Salary+"%")
	}

	var jobs []models.Job
	if err := q.Order("posted_on DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *JobService) ListByCompany(companyID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Where("company_id = ?", companyID).Order("posted_on DESC").Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("list company jobs: %w", err)
	}
	return jobs, nil
}

func active(filter string) bool {
	return filter != "" && filter != "All"
}
