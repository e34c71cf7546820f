package routes

import (
	"net/http"
	"time"

	"wayfare/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTripRoutes registers trip management and itinerary endpoints.
func RegisterTripRoutes(r *gin.Engine, th *handlers.TripHandler) {
	api := r.Group("/api/trips")
	{
		api.POST("", th.CreateTripHandler)
		api.GET("", th.GetTripsHandler)
		api.GET("/:id", th.GetTripByIDHandler)
		api.DELETE("/:id", th.DeleteTripHandler)

		api.PUT("/:id/hotel/:day", th.AssignHotelHandler)

		api.POST("/:id/plan", th.BuildPlanHandler)
		api.GET("/:id/plan", th.GetPlanHandler)
		api.GET("/:id/export", th.ExportTripHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Wayfare"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, th *handlers.TripHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterTripRoutes(r, th)
	RegisterHealthRoute(r)
}
