package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/incident_reporting_system/internal/auth"
	"github.com/shenikar/incident_reporting_system/internal/config"
	v1 "github.com/shenikar/incident_reporting_system/internal/handler/http/v1"
	"github.com/shenikar/incident_reporting_system/internal/metrics"
	"github.com/shenikar/incident_reporting_system/internal/repository"
	"github.com/shenikar/incident_reporting_system/internal/service"
	"github.com/shenikar/incident_reporting_system/internal/webhook"
	"github.com/shenikar/incident_reporting_system/pkg/logger"
	"github.com/shenikar/incident_reporting_system/pkg/postgres"
	redisclient "github.com/shenikar/incident_reporting_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/incident_reporting_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

// @title MDRRMO Pio Duran Emergency App API
// @version 1.0
// @description Incident reporting, moderation and crowd validation for the MDRRMO Pio Duran emergency app.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFile)

	// Контекст отменяется по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	log.Info("Running database migrations...")
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Info("Database migrations applied successfully")

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	// Инициализация издателя событий
	publisher := webhook.NewRedisPublisher(redisClient)

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool)
	revocations := repository.NewTokenRevocationRepository(redisClient)
	incidentRepo := repository.NewIncidentRepository(dbpool)
	validationRepo := repository.NewValidationRepository(dbpool)
	hotlineRepo := repository.NewHotlineRepository(dbpool)
	locationRepo := repository.NewMapLocationRepository(dbpool)
	userDataRepo := repository.NewUserDataRepository(dbpool)

	// Инициализация сервисов
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, revocations, tokens, log)
	incidentService := service.NewIncidentService(incidentRepo, publisher, appMetrics, log)
	validationService := service.NewValidationService(validationRepo, appMetrics, log)
	referenceService := service.NewReferenceService(hotlineRepo, locationRepo, appMetrics, log)
	userDataService := service.NewUserDataService(userDataRepo, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(authService, incidentService, validationService, referenceService, userDataService, log, cfg)

	authLimiter, err := v1.NewAuthRateLimiter(redisClient, cfg.AuthRateLimit, log)
	if err != nil {
		log.Fatalf("Failed to create auth rate limiter: %v", err)
	}

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestLogger(log), v1.CORS(cfg.CORSOrigins))

	api := router.Group("/api", v1.BodyLimit(cfg.MaxBodyBytes), v1.ConnScope(dbpool, log))
	handler.RegisterRoutes(api, authLimiter)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Запуск воркера вебхуков
	if cfg.WebhookURL != "" {
		worker := webhook.NewWorker(redisClient, log, webhook.Options{
			URL:        cfg.WebhookURL,
			Secret:     cfg.WebhookSecret,
			Timeout:    cfg.WebhookTimeout,
			MaxRetries: cfg.WebhookMaxRetries,
			BaseDelay:  cfg.WebhookBaseDelay,
		})
		done := worker.Start(gctx)
		g.Go(func() error {
			<-done
			return nil
		})
	} else {
		log.Warn("WEBHOOK_URL is not set, incident events stay in the queue")
	}

	// Запуск HTTP-сервера
	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Errorf("Server stopped with error: %v", err)
		return
	}
	log.Info("Server gracefully stopped")
}
