package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hirelane/hirelane/internal/auth"
	"github.com/hirelane/hirelane/internal/config"
	"github.com/hirelane/hirelane/internal/services"
	"github.com/hirelane/hirelane/internal/storage"
	"gorm.io/gorm"
)

// NewRouter wires every handler onto the REST surface. Protected routes all
// go through the one auth gate.
func NewRouter(db *gorm.DB, cfg *config.Config, uploader storage.Uploader) *gin.Engine {
	secret := []byte(cfg.JWTSecret)

	userHandler := NewUserHandler(services.NewUserService(db), uploader, secret)
	companyHandler := NewCompanyHandler(services.NewCompanyService(db), uploader, secret)
	jobHandler := NewJobHandler(services.NewJobService(db), uploader)
	appHandler := NewApplicationHandler(services.NewApplicationService(db), uploader)
	reviewHandler := NewReviewHandler(services.NewReviewService(db))

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	protect := auth.Middleware(db, secret)

	// Locally stored uploads (fallback path when no object store is set)
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.GET("/profile", protect, userHandler.GetProfile)
			users.PUT("/profile", protect, userHandler.UpdateProfile)
		}

		companies := api.Group("/companies")
		{
			companies.POST("/register", companyHandler.Register)
			companies.POST("/login", companyHandler.Login)
			companies.GET("/me", protect, companyHandler.Me)
			companies.PUT("/update", protect, companyHandler.Update)
		}

		jobs := api.Group("/jobs")
		{
			jobs.POST("", protect, jobHandler.Create)
			jobs.GET("", jobHandler.List)
			jobs.GET("/my-jobs", protect, jobHandler.MyJobs)
			jobs.GET("/:id", jobHandler.GetByID)
			jobs.PATCH("/:id", protect, jobHandler.Update)
			jobs.DELETE("/:id", protect, jobHandler.Delete)
		}

		applications := api.Group("/applications")
		{
			applications.POST("/create", protect, appHandler.Create)
			applications.GET("", protect, appHandler.List)
			applications.GET("/:id", protect, appHandler.GetByID)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", protect, reviewHandler.Create)
			reviews.GET("/:id", reviewHandler.ListByCompany)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}
