package main

import (
	"net/http"

	"github.com/Dirk1989/ideal-car/config"
	"github.com/Dirk1989/ideal-car/handlers"
	"github.com/Dirk1989/ideal-car/services"
	"github.com/Dirk1989/ideal-car/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	cfg := config.AppConfig

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if cfg.Environment == "production" {
		log.SetLevel(log.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.SetLevel(log.DebugLevel)
	}

	// Initialize storage and services
	store := storage.New(cfg.DataDir)

	uploads, err := services.NewImageService(cfg.UploadDir)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize uploads directory")
	}

	mailer := services.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.NotifyEmail)
	if !mailer.Configured() {
		log.Info("SMTP not configured, notification emails disabled")
	}

	if err := handlers.Initialize(store, uploads, mailer); err != nil {
		log.WithError(err).Fatal("Failed to initialize storage")
	}

	// Create Gin router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "IdealCar server is running",
		})
	})

	// Uploaded images are served straight from disk
	router.Static("/uploads", cfg.UploadDir)

	// API routes
	api := router.Group("/api")
	{
		api.POST("/auth", handlers.Login)

		// Vehicle listings
		api.GET("/vehicles", handlers.GetVehicles)
		api.POST("/vehicles", handlers.AdminAuthMiddleware(), handlers.CreateVehicle)
		api.PUT("/vehicles", handlers.AdminAuthMiddleware(), handlers.UpdateVehicle)
		api.DELETE("/vehicles", handlers.AdminAuthMiddleware(), handlers.DeleteVehicle)

		// Dealers
		api.GET("/dealers", handlers.GetDealers)
		api.POST("/dealers", handlers.AdminAuthMiddleware(), handlers.CreateDealer)
		api.PUT("/dealers", handlers.AdminAuthMiddleware(), handlers.UpdateDealer)
		api.DELETE("/dealers", handlers.AdminAuthMiddleware(), handlers.DeleteDealer)

		// Blog posts (no update endpoint)
		api.GET("/blogs", handlers.GetBlogs)
		api.POST("/blogs", handlers.AdminAuthMiddleware(), handlers.CreateBlog)
		api.DELETE("/blogs", handlers.AdminAuthMiddleware(), handlers.DeleteBlog)

		// Sell-car leads; creation is the public form submission
		api.GET("/leads", handlers.GetLeads)
		api.POST("/leads", handlers.CreateLead)
		api.DELETE("/leads", handlers.AdminAuthMiddleware(), handlers.DeleteLead)

		// Site configuration singleton
		api.GET("/site", handlers.GetSiteConfig)
		api.POST("/site", handlers.AdminAuthMiddleware(), handlers.UpdateSiteConfig)

		// Fire-and-forget notification forms
		api.POST("/contact", handlers.SubmitContact)
		api.POST("/inspection", handlers.SubmitInspection)
		api.POST("/vehicle-enquiry", handlers.SubmitVehicleEnquiry)
	}

	// CORS wraps the whole engine
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)

	addr := ":" + cfg.ServerPort
	log.WithField("addr", addr).Info("Starting IdealCar server")
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		log.WithError(err).Fatal("Server exited")
	}
}
