package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/wildfire_risk_service/internal/config"
	v1 "github.com/shenikar/wildfire_risk_service/internal/handler/http/v1"
	"github.com/shenikar/wildfire_risk_service/internal/notifier"
	"github.com/shenikar/wildfire_risk_service/internal/observability"
	"github.com/shenikar/wildfire_risk_service/internal/repository"
	"github.com/shenikar/wildfire_risk_service/internal/service"
	"github.com/shenikar/wildfire_risk_service/pkg/logger"
	"github.com/shenikar/wildfire_risk_service/pkg/postgres"
	redisclient "github.com/shenikar/wildfire_risk_service/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/wildfire_risk_service/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Wildfire Risk Service API
// @version 1.0
// @description Wildfire risk zone monitoring and alerting API.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Alert event queue and delivery worker
	alertPublisher := notifier.NewRedisAlertPublisher(redisClient, metrics)
	alertWorker := notifier.NewWorker(redisClient, log, cfg, metrics)
	alertWorker.Start(ctx)

	// Repositories
	zoneRepo := repository.NewZoneRepository(dbpool, redisClient)
	incidentRepo := repository.NewIncidentRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool)
	regionRepo := repository.NewRegionRepository(dbpool)
	userRepo := repository.NewUserRepository(dbpool)

	// Services
	zoneService := service.NewZoneService(zoneRepo, log, cfg, clock)
	incidentService := service.NewIncidentService(incidentRepo, zoneRepo, log)
	alertService := service.NewAlertService(alertRepo, regionRepo, alertPublisher, log, cfg, clock)
	regionService := service.NewRegionService(regionRepo, log, clock)
	userService := service.NewUserService(userRepo, log, clock)
	predictionService := service.NewPredictionService(zoneService, zoneRepo, alertService, log, cfg, clock)

	handler := v1.NewHandler(zoneService, incidentService, alertService, regionService, userService, predictionService, log, cfg)

	router := gin.Default()
	router.Use(metrics.GinMiddleware())

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
