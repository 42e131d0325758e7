package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hirelane/hirelane/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// NormalizeEmail is applied before every store or lookup so the uniqueness
// check is case- and whitespace-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register persists a new user with a hashed password. The caller has
// already resolved avatar/resume uploads to URLs.
func (s *UserService) Register(user *models.User, password string) (*models.User, error) {
	user.Email = NormalizeEmail(user.Email)

	var existing models.User
	err := s.DB.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(password)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hash)

	if err := s.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials for the given role filter; an empty role
// matches any account.
func (s *UserService) Login(email, password, role string) (*models.User, error) {
	var user models.User
	q := s.DB.Where("email = ?", NormalizeEmail(email))
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(strings.TrimSpace(password))) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies a sparse set of fields. Last writer wins; there is
// no version check.
func (s *UserService) UpdateProfile(id uint, updates map[string]any) (*models.User, error) {
	if len(updates) > 0 {
		res := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("update user: %w", res.Error)
		}
	}
	return s.GetByID(id)
}
