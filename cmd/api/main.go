package main

import (
	"log"

	"github.com/hirelane/hirelane/internal/config"
	"github.com/hirelane/hirelane/internal/database"
	"github.com/hirelane/hirelane/internal/handlers"
	"github.com/hirelane/hirelane/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// 2. Database Connection
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// 3. Upload backend: object store when configured, local disk otherwise
	var uploader storage.Uploader
	if cfg.Minio.Endpoint != "" {
		uploader, err = storage.NewMinioUploader(cfg.Minio, cfg.PublicURL)
		if err != nil {
			log.Fatal("Failed to connect to object storage: ", err)
		}
		log.Println("Object storage connected")
	} else {
		uploader = storage.NewDiskUploader(cfg.UploadDir, cfg.PublicURL)
		log.Printf("Storing uploads locally in %s", cfg.UploadDir)
	}

	// 4. Router & Routes
	r := handlers.NewRouter(db, cfg, uploader)

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
