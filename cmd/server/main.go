package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bookingapp "github.com/rentops/backend/internal/application/booking"
	documentapp "github.com/rentops/backend/internal/application/document"
	fleetapp "github.com/rentops/backend/internal/application/fleet"
	identityapp "github.com/rentops/backend/internal/application/identity"
	partnerapp "github.com/rentops/backend/internal/application/partner"
	reportapp "github.com/rentops/backend/internal/application/report"
	"github.com/rentops/backend/internal/infrastructure/auth"
	"github.com/rentops/backend/internal/infrastructure/cache"
	"github.com/rentops/backend/internal/infrastructure/config"
	"github.com/rentops/backend/internal/infrastructure/logger"
	"github.com/rentops/backend/internal/infrastructure/notification"
	"github.com/rentops/backend/internal/infrastructure/persistence"
	"github.com/rentops/backend/internal/infrastructure/printing"
	"github.com/rentops/backend/internal/infrastructure/scheduler"
	"github.com/rentops/backend/internal/infrastructure/storage"
	"github.com/rentops/backend/internal/interfaces/http/handler"
	"github.com/rentops/backend/internal/interfaces/http/middleware"
	"github.com/rentops/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting rental back office",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	maintenanceRepo := persistence.NewGormMaintenanceRecordRepository(db.DB)
	bookingRepo := persistence.NewGormBookingRepository(db.DB)
	depositorRepo := persistence.NewGormDepositorRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Booking creation idempotency store
	var idempotencyStore bookingapp.IdempotencyStore
	if cfg.Booking.IdempotencyEnabled {
		redisStore, err := cache.NewRedisIdempotencyStore(cache.RedisOptions{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("Redis unavailable, using in-memory idempotency store", zap.Error(err))
			memStore := cache.NewInMemoryIdempotencyStore()
			defer func() { _ = memStore.Close() }()
			idempotencyStore = memStore
		} else {
			defer func() { _ = redisStore.Close() }()
			idempotencyStore = redisStore
			log.Info("Redis idempotency store connected", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	// Application services
	vehicleService := fleetapp.NewVehicleService(vehicleRepo, depositorRepo)
	maintenanceService := fleetapp.NewMaintenanceService(vehicleRepo, maintenanceRepo)
	depositorService := partnerapp.NewDepositorService(depositorRepo)
	bookingService := bookingapp.NewBookingService(
		bookingRepo,
		vehicleRepo,
		decimal.NewFromFloat(cfg.Booking.DepositRatio),
		idempotencyStore,
		cfg.Booking.IdempotencyWindow,
		log,
	)
	reportService := reportapp.NewCommissionReportService(vehicleRepo, bookingRepo, depositorRepo, log)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	userService := identityapp.NewUserService(userRepo)

	// Contract generation (optional, needs object storage)
	var contractService *documentapp.ContractService
	if cfg.Storage.Enabled {
		objectStorage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		if err := objectStorage.EnsureBucket(context.Background()); err != nil {
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}

		var renderer documentapp.PDFRenderer
		if cfg.Printing.Enabled {
			chromeRenderer := printing.NewChromedpRenderer(cfg.Printing, log)
			defer func() { _ = chromeRenderer.Close() }()
			renderer = chromeRenderer
		}
		if renderer != nil {
			contractService, err = documentapp.NewContractService(bookingRepo, vehicleRepo, renderer, objectStorage, log)
			if err != nil {
				log.Fatal("Failed to initialize contract service", zap.Error(err))
			}
			log.Info("Contract generation enabled", zap.String("bucket", objectStorage.GetBucket()))
		}
	}

	// Email delivery
	var emailSender notification.EmailSender
	if cfg.Email.Enabled {
		emailSender = notification.NewSendGridSender(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName, log)
	} else {
		emailSender = notification.NewNoopSender(log)
	}

	// Monthly report scheduler
	var reportScheduler *scheduler.MonthlyReportScheduler
	if cfg.Scheduler.Enabled {
		reportScheduler, err = scheduler.NewMonthlyReportScheduler(
			scheduler.MonthlyReportSchedulerConfig{
				Enabled:             true,
				MonthlyCronSchedule: cfg.Scheduler.MonthlyCronSchedule,
				JobTimeout:          cfg.Scheduler.JobTimeout,
				Recipients:          cfg.Scheduler.ReportRecipients,
			},
			reportService,
			emailSender,
			log,
		)
		if err != nil {
			log.Fatal("Invalid scheduler configuration", zap.Error(err))
		}
		if err := reportScheduler.Start(context.Background()); err != nil {
			log.Fatal("Failed to start report scheduler", zap.Error(err))
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := reportScheduler.Stop(stopCtx); err != nil {
				log.Error("Error stopping report scheduler", zap.Error(err))
			}
		}()
	}

	// HTTP handlers
	healthHandler := handler.NewHealthHandler(db, cfg.App.Name, version)
	authHandler := handler.NewAuthHandler(authService, userService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, maintenanceService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	depositorHandler := handler.NewDepositorHandler(depositorService)
	reportHandler := handler.NewReportHandler(reportService, reportScheduler)
	contractHandler := handler.NewContractHandler(contractService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddleware(jwtService))
	r.Register(healthHandler).
		Register(authHandler).
		Register(vehicleHandler).
		Register(bookingHandler).
		Register(depositorHandler).
		Register(reportHandler).
		Register(contractHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
