package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rmalhotra23/flightdeck_backend/cmd/docs"
	portssvc "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/services"
	"github.com/rmalhotra23/flightdeck_backend/internal/middleware"
	"github.com/rmalhotra23/flightdeck_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	dataClients DataClients,
) {
	// Health check and welcome routes
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", GetHome)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Protected API routes behind the access token guard
	setupAPIRoutes(r, cfg, services, dataClients)

	// Swagger routes (not available in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific route
// registrations.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	dataClients DataClients,
) {
	api := r.Group("/api", middleware.VerifyToken(services.Token, cfg.AccessTokenCookieName))

	registerDataRoutes(api, dataClients)
	registerTestRoutes(api, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
