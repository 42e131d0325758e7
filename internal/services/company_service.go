package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hirelane/hirelane/internal/dtos"
	"github.com/hirelane/hirelane/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

// Register creates the employer user and the company profile together.
// Both inserts run in one transaction so a failure leaves no half-registered
// employer behind.
func (s *CompanyService) Register(req *dtos.RegisterCompanyRequest, logoURL string) (*models.Company, *models.User, error) {
	email := NormalizeEmail(req.Email)

	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(req.Password)), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    email,
		Password: string(hash),
		Role:     models.RoleEmployer,
	}
	company := &models.Company{
		Name:        req.Name,
		Email:       email,
		Description: req.Description,
		Location:    req.Location,
		Website:     req.Website,
		Phone:       req.Phone,
		Logo:        logoURL,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("create employer: %w", err)
		}
		company.OwnerID = user.ID
		if err := tx.Create(company).Error; err != nil {
			return fmt.Errorf("create company: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return company, user, nil
}

// Login verifies employer credentials and resolves the owned company.
func (s *CompanyService) Login(email, password string) (*models.Company, *models.User, error) {
	users := NewUserService(s.DB)
	user, err := users.Login(email, password, models.RoleEmployer)
	if err != nil {
		return nil, nil, err
	}
	company, err := s.GetByOwner(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return company, user, nil
}

func (s *CompanyService) GetByOwner(ownerID uint) (*models.Company, error) {
	var company models.Company
	err := s.DB.Preload("Owner").Where("owner_id = ?", ownerID).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &company, nil
}

// Update applies a sparse set of fields to the company profile.
func (s *CompanyService) Update(id uint, updates map[string]any) (*models.Company, error) {
	if len(updates) > 0 {
		res := s.DB.Model(&models.Company{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("update company: %w", res.Error)
		}
	}
	var company models.Company
	if err := s.DB.Preload("Owner").First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &company, nil
}
