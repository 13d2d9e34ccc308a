package app

import (
	"fmt"

	"signlearn_backend/internal/auth"
	"signlearn_backend/internal/config"
	"signlearn_backend/internal/database"
	"signlearn_backend/internal/handlers"
	"signlearn_backend/internal/logger"
	"signlearn_backend/internal/middleware"
	"signlearn_backend/internal/payments"
	"signlearn_backend/internal/pkg/email"
	"signlearn_backend/internal/repositories"
	"signlearn_backend/internal/routes"
	"signlearn_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the whole application: config, logging, database,
// migrations, seeding and the HTTP server.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := Bootstrap(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed roles and admin user", "error", err)
	}

	if err := repositories.NewRefreshTokenRepository(gormDB).DeleteExpired(); err != nil {
		logger.Warn("Failed to purge expired refresh tokens", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with all middleware and routes.
// Separated from Run so tests can construct the router directly.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TTLDays)
	sender := email.NewSMTPSender(cfg)
	paymentClient := payments.NewStripeClient(cfg)

	serviceContainer := services.NewServiceContainer(gormDB, cfg, tokens, sender, paymentClient)
	appHandlers := handlers.NewAppHandlers(serviceContainer, tokens)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.Static("/uploads", cfg.Upload.BasePath)

	routes.RegisterRoutes(router, appHandlers)
	return router
}
