package routes

import (
	"net/http"
	"time"

	"staygrid/handlers"
	"staygrid/middleware"
	"staygrid/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers admin authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)

		// Creating further admin accounts requires an authenticated admin.
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("/register", hb.Auth.Register)
	}
}

// RegisterAvailabilityRoutes registers the calendar and availability
// check endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("/calendar", hb.Availability.GetCalendar)
		api.GET("/check", hb.Availability.CheckAvailability)
	}
}

// RegisterGridRoutes registers the grid selection session endpoints.
func RegisterGridRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/grid")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("/session", hb.Grid.OpenSession)
		api.GET("/session/:sessionID", hb.Grid.GetSession)
		api.PUT("/session/:sessionID/window", hb.Grid.NavigateSession)
		api.DELETE("/session/:sessionID", hb.Grid.CloseSession)

		api.POST("/session/:sessionID/pointer-down", hb.Grid.PointerDown)
		api.POST("/session/:sessionID/pointer-enter", hb.Grid.PointerEnter)
		api.POST("/session/:sessionID/pointer-up", hb.Grid.PointerUp)
		api.POST("/session/:sessionID/click", hb.Grid.Click)

		api.POST("/session/:sessionID/block", hb.Grid.BlockSelection)
		api.POST("/session/:sessionID/unblock", hb.Grid.UnblockSelection)
	}
}

// RegisterRoomRoutes registers the room catalogue endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("/types", hb.Room.ListRoomTypes)
		api.POST("/types", hb.Room.CreateRoomType)
		api.GET("", hb.Room.ListRooms)
		api.POST("", hb.Room.CreateRoom)
		api.DELETE("/:roomID", hb.Room.DeactivateRoom)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/:bookingID", hb.Booking.GetBooking)
		api.POST("/:bookingID/cancel", hb.Booking.CancelBooking)
	}
}

// RegisterNotificationRoutes registers the toast feed endpoint.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("", hb.Notification.Recent)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterGridRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
}
