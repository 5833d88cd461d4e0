package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cep.backend/internal/config"
	"cep.backend/internal/infrastructure/jobs"
	"cep.backend/internal/infrastructure/mail"
	"cep.backend/internal/infrastructure/models"
	"cep.backend/internal/infrastructure/repositories"
	"cep.backend/internal/interfaces/http/handlers"
	"cep.backend/internal/interfaces/http/middleware"
	"cep.backend/internal/usecases"
	"cep.backend/pkg/jwt"
	"cep.backend/pkg/logger"
	"cep.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis. Rate limiting degrades to pass-through without it,
	// everything else works, so a missing Redis is not fatal.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, rate limiting disabled", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Redis initialized")
	}

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
		if err := models.Migrate(db); err != nil {
			logger.Error(context.Background(), "Auto migration failed", zap.Error(err))
		}
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	otpRepo := repositories.NewOtpRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, otpRepo, notificationRepo, uow, jwtService)
	candidateUsecase := usecases.NewCandidateUsecase(candidateRepo, companyRepo, userRepo, notificationRepo, uow, cfg.Mail)
	companyUsecase := usecases.NewCompanyUsecase(companyRepo)
	interviewUsecase := usecases.NewInterviewUsecase(interviewRepo, candidateRepo, companyRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	candidateHandler := handlers.NewCandidateHandler(candidateUsecase)
	companyHandler := handlers.NewCompanyHandler(companyUsecase)
	interviewHandler := handlers.NewInterviewHandler(interviewUsecase)
	profileHandler := handlers.NewProfileHandler(candidateUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)
	limiter := middleware.NewRedisLimiter(redis.GetClient())

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := mail.NewSMTPSender(cfg.SMTP, cfg.Mail)
	dispatcher := jobs.NewNotificationDispatcher(notificationRepo, sender, cfg.Outbox)
	go dispatcher.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:      authHandler,
		candidateHandler: candidateHandler,
		companyHandler:   companyHandler,
		interviewHandler: interviewHandler,
		profileHandler:   profileHandler,
		authMiddleware:   authMiddleware,
		limiter:          limiter,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		dispatcher.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 CEP Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
