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

type UserHandler struct {
	Users    *services.UserService
	Uploader storage.Uploader
	Secret   []byte
}

func NewUserHandler(users *services.UserService, up storage.Uploader, secret []byte) *UserHandler {
	return &UserHandler{Users: users, Uploader: up, Secret: secret}
}

// Register is POST /api/users/register (multipart: avatar, resume).
func (h *UserHandler) Register(c *gin.Context) {
	var req dtos.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, and password are required"})
		return
	}
	if req.Role != models.RoleJobSeeker && req.Role != models.RoleEmployer {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	avatarURL, err := uploadField(c, h.Uploader, "avatar", storage.FolderImages)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	resumeURL, err := uploadField(c, h.Uploader, "resume", storage.FolderResumes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	workStatus := req.WorkStatus
	if workStatus == "" {
		workStatus = models.WorkStatusFresher
	}
	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		Role:          req.Role,
		Mobile:        req.Mobile,
		WorkStatus:    workStatus,
		Notifications: req.Notifications == "true",
		Avatar:        avatarURL,
		Resume:        resumeURL,
	}

	user, err = h.Users.Register(user, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already exists"})
			return
		}
		log.Printf("Register error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	token, err := auth.Sign(h.Secret, user.ID, user.Role, auth.UserTokenTTL)
	if err != nil {
		log.Printf("Register token error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login is POST /api/users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	user, err := h.Users.Login(req.Email, req.Password, "")
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		log.Printf("Login error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	token, err := auth.Sign(h.Secret, user.ID, user.Role, auth.UserTokenTTL)
	if err != nil {
		log.Printf("Login token error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GetProfile is GET /api/users/profile. Works for both roles: the employer's
// credential carries the owning user's id.
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.Users.GetByID(auth.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("Get profile error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile is PUT /api/users/profile (multipart). Only sent fields are
// applied.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	updates := map[string]any{}
	for form, column := range map[string]string{
		"name":       "name",
		"mobile":     "mobile",
		"workStatus": "work_status",
	} {
		if v, ok := c.GetPostForm(form); ok && v != "" {
			updates[column] = v
		}
	}
	if v, ok := c.GetPostForm("notifications"); ok {
		updates["notifications"] = v == "true"
	}

	avatarURL, err := uploadField(c, h.Uploader, "avatar", storage.FolderImages)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if avatarURL != "" {
		updates["avatar"] = avatarURL
	}
	resumeURL, err := uploadField(c, h.Uploader, "resume", storage.FolderResumes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if resumeURL != "" {
		updates["resume"] = resumeURL
	}

	user, err := h.Users.UpdateProfile(auth.CurrentUserID(c), updates)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("Update profile error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}
