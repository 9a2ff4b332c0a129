package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pridecenter/pride-backend/internal/config"
	"github.com/pridecenter/pride-backend/internal/handlers"
	"github.com/pridecenter/pride-backend/internal/middleware"
	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/services"
	"go.uber.org/zap"
)

// HandlerDependencies holds everything the router wires together
type HandlerDependencies struct {
	AuthService       services.AuthService
	AuthHandler       *handlers.AuthHandler
	AdminUserHandler  *handlers.AdminUserHandler
	ModerationHandler *handlers.ModerationHandler
	WizardHandler     *handlers.WizardHandler
	ReferenceHandler  *handlers.ReferenceHandler
	// Ping reports backing store health; nil means always healthy.
	Ping   func(ctx context.Context) error
	Logger *zap.Logger
}

// SetupRouter sets up the router and wraps it in the CORS handler
func SetupRouter(cfg *config.Config, deps HandlerDependencies) http.Handler {
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.LoggerMiddleware(deps.Logger))

	public := router.Group("/api/v1")
	{
		public.GET("/health", health(deps.Ping))

		public.POST("/auth/login", deps.AuthHandler.Login)

		wizard := public.Group("/wizard")
		{
			wizard.POST("", deps.WizardHandler.Start)
			wizard.GET("/:id", deps.WizardHandler.Get)
			wizard.DELETE("/:id", deps.WizardHandler.Discard)
			wizard.PUT("/:id/draft", deps.WizardHandler.UpdateDraft)
			wizard.POST("/:id/next", deps.WizardHandler.Next)
			wizard.POST("/:id/back", deps.WizardHandler.Back)
			wizard.POST("/:id/presents", deps.WizardHandler.TogglePresents)
			wizard.POST("/:id/submit", deps.WizardHandler.Submit)
		}

		reference := public.Group("/reference")
		{
			reference.GET("/venues", deps.ReferenceHandler.Venues)
			reference.GET("/artists", deps.ReferenceHandler.Artists)
			reference.GET("/organization", deps.ReferenceHandler.Organization)
			reference.GET("/event-types", deps.ReferenceHandler.EventTypes)
		}

		public.GET("/sponsors", deps.ReferenceHandler.Sponsors)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(deps.AuthService, deps.Logger))
	{
		protected.POST("/auth/logout", deps.AuthHandler.Logout)
		protected.GET("/auth/me", deps.AuthHandler.Me)
		protected.GET("/admin/submissions", deps.WizardHandler.ListSubmissions)

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", deps.AdminUserHandler.List)
			admin.POST("/users", deps.AdminUserHandler.Create)
			admin.GET("/users/:id", deps.AdminUserHandler.Get)
			admin.PUT("/users/:id", deps.AdminUserHandler.Update)
			admin.DELETE("/users/:id", deps.AdminUserHandler.Delete)

			admin.GET("/devices", deps.ModerationHandler.ListDevices)
			admin.DELETE("/devices/:deviceId", deps.ModerationHandler.UnblockDevice)
		}
	}

	return middleware.NewCORS(cfg.Server.AllowedOrigins).Handler(router)
}

func health(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
