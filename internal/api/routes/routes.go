package routes

import (
	"net/http"

	"linkedlist-backend/internal/api/handlers"
	"linkedlist-backend/internal/api/middleware"
	"linkedlist-backend/internal/auth"
	"linkedlist-backend/internal/config"
	"linkedlist-backend/internal/repository"
	"linkedlist-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(store repository.Store, authService *auth.AuthService, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := service.NewValidator()

	// Services share the single store bound at startup
	linkService := service.NewLinkService(store, validator, cfg.DefaultUserID)
	noteService := service.NewNoteService(store, validator)
	labelService := service.NewLabelService(store, validator, cfg.DefaultUserID)

	healthHandler := handlers.NewHealthHandler(store, Version)
	linkHandler := handlers.NewLinkHandler(linkService, noteService, labelService)
	noteHandler := handlers.NewNoteHandler(noteService)
	labelHandler := handlers.NewLabelHandler(labelService)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Every remaining route sees the session identity, if any
	router.Use(authMiddleware.SessionMiddleware())

	authRoutes := router.Group("/auth")
	{
		authRoutes.GET("/github", authHandler.Login)
		authRoutes.GET("/callback/github", authHandler.Callback)
		authRoutes.GET("/logout", authHandler.Logout)
	}

	api := router.Group("/api")
	api.GET("/auth/me", authHandler.Me)

	data := api.Group("")
	if cfg.RequireAuth {
		data.Use(auth.RequireAuth())
	}
	{
		links := data.Group("/links")
		{
			links.GET("", linkHandler.ListLinks)
			links.POST("", linkHandler.CreateLink)
			links.GET("/:id", linkHandler.GetLink)
			links.PATCH("/:id", linkHandler.UpdateLink)
			links.DELETE("/:id", linkHandler.DeleteLink)
			links.GET("/:id/full", linkHandler.GetFullLink)
			links.GET("/:id/notes", linkHandler.ListNotes)
			links.GET("/:id/labels", linkHandler.ListLabels)
			links.PUT("/:id/labels/:labelId", linkHandler.AddLabel)
			links.DELETE("/:id/labels/:labelId", linkHandler.RemoveLabel)
		}

		notes := data.Group("/notes")
		{
			notes.POST("", noteHandler.CreateNote)
			notes.PATCH("/:id", noteHandler.UpdateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}

		labels := data.Group("/labels")
		{
			labels.GET("", labelHandler.ListLabels)
			labels.POST("", labelHandler.CreateLabel)
			labels.PATCH("/:id", labelHandler.UpdateLabel)
			labels.DELETE("/:id", labelHandler.DeleteLabel)
			labels.GET("/:id/links", labelHandler.ListLinks)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "Not found"})
	})

	return router
}
