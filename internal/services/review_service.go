package services

import (
	"fmt"

	"github.com/hirelane/hirelane/internal/models"
	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

func (s *ReviewService) Create(authorID, companyID uint, rating float64, comment string) (*models.Review, error) {
	review := &models.Review{
		UserID:    authorID,
		CompanyID: companyID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.DB.Create(review).Error; err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// ListByCompany returns a company's reviews with the author populated for
// the name/avatar display.
func (s *ReviewService) ListByCompany(companyID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Preload("User").Where("company_id = ?", companyID).
		Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
