package config

import "os"

// Config holds everything read from the environment. Values come from
// os.Getenv after main has loaded .env via godotenv.
type Config struct {
	Port      string
	JWTSecret string

	// "postgres" or "sqlite"
	DBDriver    string
	DatabaseURL string
	DBPath      string

	// Local fallback storage, also served at /uploads
	UploadDir string
	// Base URL prepended to locally stored upload paths
	PublicURL string

	Minio MinioConfig
}

// MinioConfig configures the S3-compatible object store. An empty Endpoint
// means uploads stay on local disk.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() *Config {
	return &Config{
		Port:        getenv("PORT", "8080"),
		JWTSecret:   getenv("JWT_SECRET", ""),
		DBDriver:    getenv("DB_DRIVER", "postgres"),
		DatabaseURL: getenv("DATABASE_URL", "host=localhost user=postgres password=password dbname=hirelane port=5432 sslmode=disable"),
		DBPath:      getenv("DB_PATH", "data/hirelane.db"),
		UploadDir:   getenv("UPLOAD_DIR", "uploads"),
		PublicURL:   getenv("PUBLIC_URL", "http://localhost:8080"),
		Minio: MinioConfig{
			Endpoint:  getenv("MINIO_ENDPOINT", ""),
			AccessKey: getenv("MINIO_ACCESS_KEY", ""),
			SecretKey: getenv("MINIO_SECRET_KEY", ""),
			Bucket:    getenv("MINIO_BUCKET", "hirelane"),
			UseSSL:    getenv("MINIO_USE_SSL", "") == "true",
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
