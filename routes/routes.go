package routes

import (
	"time"

	"shebacare/handlers"
	"shebacare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMatchingRoutes registers the caregiver-matching endpoints.
func RegisterMatchingRoutes(r *gin.Engine, mh *handlers.MatchingHandler) {
	api := r.Group("/api/matching")
	{
		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/find-matches", mh.FindMatchesHandler)
		api.GET("/stats", mh.StatsHandler)
	}
}

// RegisterCaregiverRoutes registers caregiver lookup endpoints.
func RegisterCaregiverRoutes(r *gin.Engine, ch *handlers.CaregiverHandler) {
	api := r.Group("/api/caregivers")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", ch.ListCaregiversHandler)
		api.GET("/:id", ch.GetCaregiverByIDHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// SetupCORS configures cross-origin access for the web client.
func SetupCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}
