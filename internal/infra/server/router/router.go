// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/resto-reports/backend/internal/integration/entrypoint/controller"
	"github.com/resto-reports/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	authController    *controller.AuthController
	reportController  *controller.ReportController
	summaryController *controller.SummaryController
	loginRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	reportController *controller.ReportController,
	summaryController *controller.SummaryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		reportController:  reportController,
		summaryController: summaryController,
		loginRateLimiter:  loginRateLimiter,
		authMiddleware:    authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Report routes sit behind
// the optional auth middleware: a valid token scopes documents to the user
// and the remote store, no token means anonymous local-only mode.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		reports := v1.Group("/reports")
		if r.authMiddleware != nil {
			reports.Use(r.authMiddleware.OptionalAuthenticate())
		}
		{
			// Comparison is registered before the :month routes so the
			// literal segment wins.
			reports.GET("/comparison", r.summaryController.CompareMonths)

			reports.GET("/:month", r.reportController.Load)
			reports.PUT("/:month", r.reportController.Save)

			reports.POST("/:month/items", r.reportController.AddItem)
			reports.POST("/:month/items/rename", r.reportController.RenameItem)
			reports.PATCH("/:month/items", r.reportController.UpdateItem)
			reports.DELETE("/:month/items", r.reportController.DeleteItem)

			reports.GET("/:month/summary", r.summaryController.GetSummary)
			reports.GET("/:month/summary/simple", r.summaryController.GetSimpleSummary)

			reports.PUT("/:month/budget", r.reportController.SetBudget)
			reports.GET("/:month/budget/variance", r.summaryController.GetBudgetVariance)
		}
	}
}
