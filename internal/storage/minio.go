package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/hirelane/hirelane/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioUploader stores files in an S3-compatible bucket and returns
// publicly addressable URLs.
type MinioUploader struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinioUploader(cfg config.MinioConfig, publicURL string) (*MinioUploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &MinioUploader{client: client, bucket: cfg.Bucket, publicURL: publicURL}, nil
}

func (u *MinioUploader) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := objectKey(folder, file.Filename)
	opts := minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")}
	if _, err := u.client.PutObject(ctx, u.bucket, key, src, file.Size, opts); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", u.publicURL, u.bucket, key), nil
}
