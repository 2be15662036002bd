package api

import (
	"gravity-server/internal/api/handlers"
	"gravity-server/internal/api/interfaces"
	"gravity-server/internal/api/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes with proper middleware. Every
// protected route runs the same ordered guard pipeline: verify the session
// token, then (where required) authorize the exact role against the user
// store, then execute the handler.
func SetupRoutes(router *gin.Engine, services interfaces.Services) {
	cfg := services.GetConfig()

	// Global middleware
	router.Use(middlewares.Recovery())
	router.Use(middlewares.CORS(&cfg.API.CORS))
	router.Use(middlewares.Security())
	router.Use(middlewares.RequestLogging(services.GetLogger()))
	router.Use(middlewares.RateLimit(cfg.API.RateLimit))

	// Liveness (no auth required)
	router.GET("/", handlers.Landing())
	router.GET("/health", handlers.HealthCheck(services))

	setupPublicRoutes(router, services)
	setupAuthenticatedRoutes(router, services)
}

// setupPublicRoutes configures routes that don't require authentication
func setupPublicRoutes(router *gin.Engine, services interfaces.Services) {
	// Session lifecycle
	router.POST("/jwt", handlers.IssueToken(services))
	router.GET("/logout", handlers.Logout(services))

	// First-login user save happens before a token exists
	router.PUT("/user", handlers.UpsertUser(services))

	// Public service listings
	router.GET("/services", handlers.ListServices(services))
	router.GET("/service/:id", handlers.GetService(services))

	// Contact form
	router.POST("/contact", handlers.SubmitContact(services))
}

// setupAuthenticatedRoutes configures routes behind the verify -> authorize
// pipeline
func setupAuthenticatedRoutes(router *gin.Engine, services interfaces.Services) {
	verified := router.Group("/")
	verified.Use(middlewares.AuthRequired(services.TokenManager(), services.SessionCookie()))
	{
		// Authenticated, no role constraint
		verified.GET("/user/:email", handlers.GetUser(services))
		verified.POST("/employee-work", handlers.CreateWorkEntry(services))
		verified.GET("/employee-works/:email", handlers.GetEmployeeWork(services))

		// Admin-only user management. The user listing is deliberately
		// admin-gated; an earlier unrestricted variant of this route was an
		// authorization gap.
		admin := verified.Group("/")
		admin.Use(middlewares.AdminRequired(services.UserRepository()))
		{
			admin.GET("/users", handlers.ListUsers(services))
			admin.PATCH("/users/update/:email", handlers.UpdateUser(services))
			admin.PUT("/users/fire/:id", handlers.FireUser(services))
			admin.POST("/services", handlers.CreateService(services))
		}

		// HR-only employee management and payroll
		hr := verified.Group("/")
		hr.Use(middlewares.HRRequired(services.UserRepository()))
		{
			hr.GET("/users/employee", handlers.ListEmployees(services))
			hr.PATCH("/users/status/:id", handlers.VerifyEmployee(services))
			hr.GET("/employee-works", handlers.ListWork(services))
			hr.POST("/create-payment-intent", handlers.CreatePaymentIntent(services))
		}
	}
}
