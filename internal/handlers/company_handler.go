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

type CompanyHandler struct {
	Companies *services.CompanyService
	Uploader  storage.Uploader
	Secret    []byte
}

func NewCompanyHandler(companies *services.CompanyService, up storage.Uploader, secret []byte) *CompanyHandler {
	return &CompanyHandler{Companies: companies, Uploader: up, Secret: secret}
}

// Register is POST /api/companies/register (multipart: logo). Creates the
// employer account and the company profile together.
func (h *CompanyHandler) Register(c *gin.Context) {
	var req dtos.RegisterCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, and password are required"})
		return
	}

	logoURL, err := uploadField(c, h.Uploader, "logo", storage.FolderLogos)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	company, user, err := h.Companies.Register(&req, logoURL)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
			return
		}
		log.Printf("Register company error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	token, err := auth.Sign(h.Secret, user.ID, models.RoleEmployer, auth.CompanyTokenTTL)
	if err != nil {
		log.Printf("Register company token error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Company registered successfully",
		"token":   token,
		"company": company,
		"user":    gin.H{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}

// Login is POST /api/companies/login.
func (h *CompanyHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	company, user, err := h.Companies.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Company profile not found"})
		default:
			log.Printf("Login company error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	token, err := auth.Sign(h.Secret, user.ID, models.RoleEmployer, auth.CompanyTokenTTL)
	if err != nil {
		log.Printf("Login company token error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"company": company,
		"user":    gin.H{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}

// Me is GET /api/companies/me. The auth gate already resolved the company.
func (h *CompanyHandler) Me(c *gin.Context) {
	company, ok := auth.CurrentCompany(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Employer account required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

// Update is PUT /api/companies/update (multipart: logo). Sparse field update.
func (h *CompanyHandler) Update(c *gin.Context) {
	company, ok := auth.CurrentCompany(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Employer account required"})
		return
	}

	updates := map[string]any{}
	for _, field := range []string{"name", "description", "location", "website", "phone"} {
		if v, ok := c.GetPostForm(field); ok && v != "" {
			updates[field] = v
		}
	}

	logoURL, err := uploadField(c, h.Uploader, "logo", storage.FolderLogos)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if logoURL != "" {
		updates["logo"] = logoURL
	}

	updated, err := h.Companies.Update(company.ID, updates)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Company not found"})
			return
		}
		log.Printf("Update company error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Company updated successfully",
		"company": updated,
	})
}
