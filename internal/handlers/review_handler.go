package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirelane/hirelane/internal/auth"
	"github.com/hirelane/hirelane/internal/dtos"
	"github.com/hirelane/hirelane/internal/services"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

// Create is POST /api/reviews. Any authenticated identity may review; the
// author is the credential's user id for either role.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dtos.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Company is required"})
		return
	}

	review, err := h.Reviews.Create(auth.CurrentUserID(c), req.Company, req.Rating, req.Comment)
	if err != nil {
		log.Printf("Create review error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListByCompany is GET /api/reviews/:id where :id is the company id.
func (h *ReviewHandler) ListByCompany(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid company id"})
		return
	}
	reviews, err := h.Reviews.ListByCompany(id)
	if err != nil {
		log.Printf("List reviews error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
