package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirelane/hirelane/internal/storage"
)

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API is running..."})
}

// uploadField resolves an optional file part to a URL. Returns "" when the
// field was not sent; a type-policy violation or storage failure is an error.
func uploadField(c *gin.Context, up storage.Uploader, field, folder string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", field, err)
	}
	if err := storage.CheckContentType(field, file); err != nil {
		return "", err
	}
	url, err := up.Upload(c.Request.Context(), file, folder)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", field, err)
	}
	return url, nil
}
