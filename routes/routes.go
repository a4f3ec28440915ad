package routes

import (
	"net/http"
	"time"

	"tutorlink/handlers"
	"tutorlink/middleware"
	"tutorlink/models"
	"tutorlink/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/firebase", hb.Auth.FirebaseSignInHandler)
	}
}

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetMeHandler)
		api.PUT("/me/role", hb.User.SelectRoleHandler)
	}
}

// RegisterTutorRoutes registers the tutor directory. The profile read is
// public; the list requires auth.
func RegisterTutorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tutors")
	{
		api.GET("/:id", hb.Tutor.GetTutorHandler)
		api.GET("", middleware.JWTAuthMiddleware(hb.UserRepo), hb.Tutor.ListTutorsHandler)
	}
}

// RegisterAvailabilityRoutes registers the tutor scheduler endpoints.
// Only tutors may manage availability.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleTutor))
		api.GET("", hb.Availability.GetAvailabilityHandler)
		api.GET("/:date", hb.Availability.GetDayHandler)
		api.PUT("/:date", hb.Availability.SaveDayHandler)
	}
}

// RegisterBookingRoutes registers the student/parent booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleStudent, models.RoleParent))
		api.GET("/tutors", hb.Booking.ListTutorsHandler)
		api.GET("/tutors/:id/dates", hb.Booking.GetTutorDatesHandler)
		api.GET("/tutors/:id/slots/:date", hb.Booking.GetTutorSlotsHandler)
		api.POST("/selections/toggle", hb.Booking.ToggleSelectionHandler)
		api.POST("/selections/custom", hb.Booking.CustomSelectionHandler)
		api.POST("", hb.Booking.SubmitBookingHandler)
	}
}

// RegisterSessionRoutes registers booked-session reads.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Session.ListSessionsHandler)
		api.GET("/:id", hb.Session.GetSessionHandler)
	}
}

// RegisterStudentRoutes registers student dashboard endpoints.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/students")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me/dates", hb.Student.GetClassDatesHandler)
		api.GET("/mine", middleware.RequireRole(models.RoleParent), hb.Student.ListMyStudentsHandler)
	}
}

// RegisterAdminRoutes registers the admin console lists.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleAdmin))
		api.GET("/users", hb.Admin.ListUsersHandler)
		api.GET("/tutors", hb.Admin.ListTutorsHandler)
	}
}

// RegisterStubRoutes registers surfaces that are routed but not built yet.
func RegisterStubRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/billing/checkout", handlers.BillingCheckoutHandler)
		api.GET("/chats", handlers.ChatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterLogRoute registers the client log sink.
func RegisterLogRoute(r *gin.Engine) {
	r.POST("/api/log", handlers.ClientLogHandler)
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
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterLogRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterTutorRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterStudentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterStubRoutes(r, hb)
}
