package routes

import (
	"time"

	"docbook/handlers"
	"docbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-in and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", middleware.AuthMiddleware(hb.AuthSvc), hb.LogoutHandler)
	}

	users := r.Group("/api/users")
	{
		users.Use(middleware.AuthMiddleware(hb.AuthSvc))
		users.GET("/me", hb.MeHandler)
	}
}

// RegisterDoctorRoutes registers the public directory endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hb.ListDoctorsHandler)
		api.GET("/specialties", hb.SpecialtiesHandler)
		api.GET("/:id", hb.GetDoctorHandler)
		api.GET("/:id/slots", hb.TimeSlotsHandler)
	}
}

// RegisterAppointmentRoutes registers the signed-in user's appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.AuthMiddleware(hb.AuthSvc))
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.POST("/:id/cancel", hb.CancelAppointmentHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints of the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking/sessions")
	{
		bookingGroup.Use(middleware.AuthMiddleware(hb.AuthSvc))
		bookingGroup.POST("", hb.StartSession)
		bookingGroup.GET("/:sessionID", hb.GetSession)
		bookingGroup.PUT("/:sessionID/date", hb.SelectDate)
		bookingGroup.PUT("/:sessionID/time", hb.SelectTime)
		bookingGroup.PUT("/:sessionID/patient", hb.UpdatePatientInfo)
		bookingGroup.POST("/:sessionID/next", hb.NextStep)
		bookingGroup.POST("/:sessionID/back", hb.PreviousStep)
		bookingGroup.POST("/:sessionID/submit", hb.SubmitBooking)
		bookingGroup.DELETE("/:sessionID", hb.CancelSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
