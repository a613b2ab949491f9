package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobboard/backend/internal/config"
	"jobboard/backend/internal/database"
	"jobboard/backend/internal/handlers"
	"jobboard/backend/internal/middleware"
	"jobboard/backend/internal/models"
	"jobboard/backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Println("Database connection established")

	authService := services.NewAuthService(db)
	companyService := services.NewCompanyService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecret)
	companyHandler := handlers.NewCompanyHandler(companyService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	r.GET("/health", handlers.HealthCheck)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	// Company creation stays open: a company must exist before its first
	// admin can register, so gating it on a company_admin token would
	// deadlock onboarding.
	r.POST("/companies", companyHandler.Create)

	jobRoutes := r.Group("/jobs")
	{
		jobRoutes.GET("", jobHandler.List)
		jobRoutes.GET("/:id", jobHandler.Get)
		jobRoutes.POST("", requireAuth, middleware.RequireRole(models.RoleCompanyAdmin), jobHandler.Create)
	}

	applicationRoutes := r.Group("/applications")
	applicationRoutes.Use(requireAuth)
	{
		applicationRoutes.POST("", applicationHandler.Create)
		applicationRoutes.GET("/me", applicationHandler.ListMine)
		applicationRoutes.GET("/company", middleware.RequireRole(models.RoleCompanyAdmin), applicationHandler.ListCompany)
	}

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
