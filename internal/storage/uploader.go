// Package storage converts uploaded multipart file parts into durable URLs.
// The primary backend is an S3-compatible object store; a local-disk backend
// covers development and the /uploads static mount.
package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
)

// Folders group uploads by purpose inside the bucket or upload dir.
const (
	FolderResumes = "resumes"
	FolderImages  = "images"
	FolderLogos   = "company_logos"
)

// DefaultLogo is used when a job is posted without a logo file.
const DefaultLogo = "https://via.placeholder.com/100x100?text=Logo"

type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
}

var resumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// CheckContentType enforces the per-field upload policy: resumes must be
// PDF/DOC/DOCX, avatars and logos must be images.
func CheckContentType(field string, file *multipart.FileHeader) error {
	ct := file.Header.Get("Content-Type")
	switch field {
	case "resume":
		if !resumeTypes[ct] {
			return fmt.Errorf("only PDF, DOC, DOCX allowed for resume")
		}
	case "avatar", "logo", "companyLogo":
		if !strings.HasPrefix(ct, "image/") {
			return fmt.Errorf("only images allowed for %s", field)
		}
	}
	return nil
}

// objectKey builds a collision-free key keeping the original filename visible.
func objectKey(folder, filename string) string {
	name := strings.ReplaceAll(filename, "/", "_")
	return folder + "/" + uuid.NewString() + "-" + name
}
