package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/notmyst33d/schedapi-ssr/internal/config"
	"github.com/notmyst33d/schedapi-ssr/internal/handler"
	"github.com/notmyst33d/schedapi-ssr/internal/middleware"
	"github.com/notmyst33d/schedapi-ssr/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Schedule *handler.ScheduleHandler
}

// SetupRouter configures the Gin engine: global middlewares, the static
// assets directory and the page route.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.ClassifyDevice())

	// Stylesheet and logo referenced from the page head.
	router.Static("/public", cfg.StaticDir)

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", handlers.Schedule.GetPage)

	return router
}
