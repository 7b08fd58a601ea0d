package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/portfel_tracker/cmd/docs"
	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/middleware"
	"github.com/SscSPs/portfel_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	var authLimit gin.HandlerFunc
	if cfg.AuthRateLimit != "" {
		l, err := middleware.NewLimiter(cfg.AuthRateLimit)
		if err != nil {
			return fmt.Errorf("auth rate limiter: %w", err)
		}
		authLimit = middleware.RateLimit(l)
	}
	registerAuthRoutes(r, authLimit, services.User, services.Token)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, service.User)
	registerEntryRoutes(v1, service.Entry)
	registerInvestmentRoutes(v1, service.Investment)
	registerGoalRoutes(v1, service.Goal)
	registerNotificationRoutes(v1, service.Notification)
	registerAnalyticsRoutes(v1, service.Analytics)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
