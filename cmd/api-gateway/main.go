package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/renkids/homeschool-hub-api/api/swagger"
	"github.com/renkids/homeschool-hub-api/internal/handler"
	"github.com/renkids/homeschool-hub-api/internal/middleware"
	"github.com/renkids/homeschool-hub-api/internal/repository"
	"github.com/renkids/homeschool-hub-api/internal/service"
	"github.com/renkids/homeschool-hub-api/pkg/cache"
	"github.com/renkids/homeschool-hub-api/pkg/config"
	"github.com/renkids/homeschool-hub-api/pkg/database"
	"github.com/renkids/homeschool-hub-api/pkg/export"
	"github.com/renkids/homeschool-hub-api/pkg/logger"
	corsmiddleware "github.com/renkids/homeschool-hub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/renkids/homeschool-hub-api/pkg/middleware/requestid"
)

// @title Homeschool Hub API
// @version 0.1.0
// @description Messaging and IHIP compliance reporting for Renaissance Kids Homeschool Hub
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	var redisClient *redis.Client
	if cfg.Reports.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, report caching disabled", "error", err)
			redisClient = nil
		}
	}

	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Reports.CacheTTL, logr, cfg.Reports.CacheEnabled && redisClient != nil)

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	messageSvc := service.NewMessageService(messageRepo, validate, logr)
	reportSvc := service.NewReportService(reportRepo, cacheSvc, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	messageHandler := handler.NewMessageHandler(messageSvc)
	reportHandler := handler.NewReportHandler(reportSvc, export.NewIHIPExporter())
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))
	protected.POST("/messages/send", messageHandler.Send)
	protected.GET("/messages", messageHandler.List)
	protected.GET("/reports/ihip/quarterly", reportHandler.Quarterly)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
