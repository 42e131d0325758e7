package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hirelane/hirelane/internal/models"
	"gorm.io/gorm"
)

// Context keys set by the middleware.
const (
	ctxRole    = "auth.role"
	ctxUser    = "auth.user"
	ctxCompany = "auth.company"
	ctxUserID  = "auth.userID"
)

// Middleware validates the bearer credential and attaches the resolved
// identity to the request context. Job seekers resolve to their User row;
// employers resolve to the Company owned by the token's user id, with the
// owner populated. Every protected route shares this one gate.
func Middleware(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Token missing"})
			return
		}

		claims, err := Verify(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Token invalid or expired"})
			return
		}
		if claims.UserID == 0 || claims.Role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid token payload"})
			return
		}

		switch claims.Role {
		case models.RoleJobSeeker:
			var user models.User
			if err := db.First(&user, claims.UserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "User not found"})
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error in authentication"})
				return
			}
			c.Set(ctxUser, &user)
			c.Set(ctxUserID, user.ID)
			c.Set(ctxRole, models.RoleJobSeeker)

		case models.RoleEmployer:
			var company models.Company
			err := db.Preload("Owner").Where("owner_id = ?", claims.UserID).First(&company).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Company profile not found"})
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error in authentication"})
				return
			}
			c.Set(ctxCompany, &company)
			c.Set(ctxUserID, claims.UserID)
			c.Set(ctxRole, models.RoleEmployer)

		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid user role"})
			return
		}

		c.Next()
	}
}

// Role returns the authenticated role tag, or "" on public routes.
func Role(c *gin.Context) string {
	return c.GetString(ctxRole)
}

// CurrentUser returns the authenticated job seeker, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// CurrentCompany returns the authenticated company, if any.
func CurrentCompany(c *gin.Context) (*models.Company, bool) {
	v, ok := c.Get(ctxCompany)
	if !ok {
		return nil, false
	}
	company, ok := v.(*models.Company)
	return company, ok
}

// CurrentUserID returns the token's identity id for either role.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}
