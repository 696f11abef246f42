package routes

import (
	"time"

	"slotify/handlers"
	"slotify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers host registration and login.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", handlers.RegisterHost)
		api.POST("/login", handlers.LoginHost)
	}
}

// RegisterAvailabilityRoutes registers schedule management and the public
// slot listing.
func RegisterAvailabilityRoutes(r *gin.Engine) {
	api := r.Group("/api/availability")
	{
		// Public: invitees list slots from the booking page.
		api.GET("/slots", handlers.GetAvailableSlots)

		// Protected routes (Require Authentication)
		api.Use(middleware.HostAuth())
		api.GET("", handlers.GetAvailability)
		api.POST("", handlers.UpdateAvailability)
	}
}

// RegisterEventTypeRoutes registers booking template endpoints.
func RegisterEventTypeRoutes(r *gin.Engine) {
	api := r.Group("/api/event-types")
	{
		// Public: the booking page loads the template by ID.
		api.GET("/:id", handlers.GetEventType)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.HostAuth())
		protected.POST("", handlers.CreateEventType)
		protected.GET("", handlers.ListEventTypes)
		protected.PUT("/:id", handlers.UpdateEventType)
		protected.DELETE("/:id", handlers.DeleteEventType)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/bookings")
	{
		// Public: invitees book without an account.
		api.POST("", handlers.CreateBooking)
		api.GET("/:id", middleware.OptionalHostAuth(), handlers.GetBooking)

		// Manage endpoints accept a host session or a manage token.
		api.PUT("/:id/reschedule", middleware.OptionalHostAuth(), handlers.RescheduleBooking)
		api.PUT("/:id/cancel", middleware.OptionalHostAuth(), handlers.CancelBooking)

		// Host-only endpoints.
		protected := api.Group("")
		protected.Use(middleware.HostAuth())
		protected.GET("", handlers.ListBookings)
		protected.PUT("/:id/status", handlers.UpdateBookingStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthCheck)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r)
	RegisterAvailabilityRoutes(r)
	RegisterEventTypeRoutes(r)
	RegisterBookingRoutes(r)
	RegisterHealthRoute(r)
}
