// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seahome/seahome-backend/internal/config"
	"github.com/seahome/seahome-backend/internal/handlers"
	"github.com/seahome/seahome-backend/internal/middleware"
	"github.com/seahome/seahome-backend/internal/services"
	"github.com/seahome/seahome-backend/internal/state"
	"github.com/seahome/seahome-backend/internal/utils"
)

func Initialize(container *state.Container, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	catalogService := services.NewCatalogService(container)
	listingService := services.NewListingService(container)
	moderationService := services.NewModerationService(container)
	reviewService := services.NewReviewService(container)
	descriptionService := services.NewDescriptionService(cfg.Generator)
	authService, err := services.NewAuthService(container, cfg)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, container)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	listingHandler := handlers.NewListingHandler(listingService, reviewService, descriptionService, container)
	adminHandler := handlers.NewAdminHandler(moderationService, listingService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Session and role routes
		auth := v1.Group("/auth")
		{
			auth.POST("/session", authHandler.CreateSession)
			auth.GET("/me", middleware.SessionRequired(), authHandler.GetProfile)
			auth.POST("/role", middleware.SessionRequired(), authHandler.SwitchRole)
			auth.POST("/admin", middleware.AuthRateLimit(), middleware.SessionRequired(), authHandler.UnlockAdmin)
		}

		// Catalog browsing routes
		v1.GET("/regions", catalogHandler.GetRegions)
		v1.GET("/regions/:region/cities", middleware.OptionalSession(), catalogHandler.GetCities)
		v1.GET("/catalog", middleware.OptionalSession(), catalogHandler.GetCatalog)
		v1.GET("/catalog/counts", middleware.OptionalSession(), catalogHandler.GetCategoryCounts)

		// Listing routes
		listings := v1.Group("/listings")
		{
			listings.GET("/:id", middleware.OptionalSession(), catalogHandler.GetListing)

			protected := listings.Group("")
			protected.Use(middleware.SessionRequired())
			{
				protected.POST("", listingHandler.CreateListing)
				protected.POST("/:id/reviews", listingHandler.AddReview)
			}
		}

		// Owner dashboard and authoring helpers
		v1.GET("/dashboard", middleware.SessionRequired(), catalogHandler.GetDashboard)
		v1.POST("/describe", middleware.SessionRequired(), listingHandler.GenerateDescription)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.SessionRequired(), middleware.AdminRequired())
		{
			admin.GET("/queue", adminHandler.GetQueue)
			admin.GET("/listings", adminHandler.GetListings)
			admin.PUT("/listings/:id", adminHandler.UpdateListing)
			admin.DELETE("/listings/:id", adminHandler.DeleteListing)
			admin.POST("/listings/:id/approve", adminHandler.ApproveListing)
			admin.POST("/listings/:id/reject", adminHandler.RejectListing)
			admin.GET("/users", adminHandler.GetUsers)
			admin.POST("/users/:id/ban", adminHandler.ToggleBan)
			admin.POST("/reset", adminHandler.ResetToSeed)
		}
	}

	return r, nil
}
