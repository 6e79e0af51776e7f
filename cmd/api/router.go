package main

import (
	"net/http"
	"time"

	"blogform-backend/internal/shared/middleware"
	"blogform-backend/pkg/container"
	"blogform-backend/web"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigin),
	)

	// ========================================
	// STATIC PAGE
	// ========================================
	// Page + assets được embed vào binary, serve thẳng từ memory
	// Không có route động nào khác - đây là single-page form
	router.GET("/", serveAsset("text/html; charset=utf-8", web.IndexHTML))
	router.GET("/app.js", serveAsset("application/javascript; charset=utf-8", web.AppJS))
	router.GET("/style.css", serveAsset("text/css; charset=utf-8", web.StyleCSS))

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupSubmissionRoutes(v1, c)
	}

	return router
}

// ========================================
// SUBMISSION ROUTES
// ========================================
func setupSubmissionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	submissions := v1.Group("/submissions")
	{
		submissions.POST("", c.SubmissionHandler.Submit)
		submissions.GET("/stats", c.SubmissionHandler.Stats)
	}
}

func serveAsset(contentType string, body []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, contentType, body)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		})
	}
}
