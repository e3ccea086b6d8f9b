// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/resto-reports/backend/config"
	"github.com/resto-reports/backend/internal/application/usecase/auth"
	"github.com/resto-reports/backend/internal/application/usecase/report"
	"github.com/resto-reports/backend/internal/application/usecase/summary"
	"github.com/resto-reports/backend/internal/infra/server/router"
	"github.com/resto-reports/backend/internal/integration/adapters"
	"github.com/resto-reports/backend/internal/integration/entrypoint/controller"
	"github.com/resto-reports/backend/internal/integration/entrypoint/middleware"
	"github.com/resto-reports/backend/internal/integration/localstore"
	"github.com/resto-reports/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The remote database may be nil; report routes then serve the local store
// only and auth routes are not wired.
func NewInjector(cfg *config.Config, db *gorm.DB, local *localstore.Store, redisClient *redis.Client) *Injector {
	// Storage tiers
	stores := report.Stores{Local: local}
	if db != nil {
		stores.Remote = persistence.NewReportRepository(db)
	}

	// Report use cases
	loadUseCase := report.NewLoadReportUseCase(stores)
	saveUseCase := report.NewSaveReportUseCase(stores)
	addItemUseCase := report.NewAddItemUseCase(stores)
	renameItemUseCase := report.NewRenameItemUseCase(stores)
	updateItemUseCase := report.NewUpdateItemUseCase(stores)
	deleteItemUseCase := report.NewDeleteItemUseCase(stores)
	setBudgetUseCase := report.NewSetBudgetUseCase(stores)

	// Summary use cases are derived views over the loader
	summaryUseCase := summary.NewGetSummaryUseCase(loadUseCase)
	simpleSummaryUseCase := summary.NewGetSimpleSummaryUseCase(loadUseCase)
	compareMonthsUseCase := summary.NewCompareMonthsUseCase(loadUseCase)
	budgetVarianceUseCase := summary.NewBudgetVarianceUseCase(loadUseCase)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		if db == nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	reportController := controller.NewReportController(
		loadUseCase,
		saveUseCase,
		addItemUseCase,
		renameItemUseCase,
		updateItemUseCase,
		deleteItemUseCase,
		setBudgetUseCase,
	)

	summaryController := controller.NewSummaryController(
		summaryUseCase,
		simpleSummaryUseCase,
		compareMonthsUseCase,
		budgetVarianceUseCase,
	)

	// Auth needs both the user table and the token store
	var authController *controller.AuthController
	var authMiddleware *middleware.AuthMiddleware
	if db != nil && redisClient != nil {
		userRepo := persistence.NewUserRepository(db)
		tokenRepo := persistence.NewTokenRepository(redisClient)

		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

		authController = controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
		)
		authMiddleware = middleware.NewAuthMiddleware(tokenService)
	}

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	r := router.NewRouter(healthController, authController, reportController, summaryController, loginRateLimiter, authMiddleware)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
