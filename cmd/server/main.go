package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cribinfo/internal/config"
	"cribinfo/internal/handler"
	"cribinfo/internal/observability/logging"
	"cribinfo/internal/observability/metrics"
	"cribinfo/internal/provider"
	"cribinfo/internal/repository"
	"cribinfo/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSONLogger("cribinfo", cfg.Logging.Level)
	logger.Info("starting", "version", Version, "build_time", BuildTime, "git_commit", GitCommit)

	gin.SetMode(cfg.Server.GinMode)

	repo, err := repository.NewPostgresRepository(
		cfg.PostgresDSN(),
		cfg.Postgres.MaxConnections,
		cfg.Postgres.MaxIdleConnections,
	)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to postgres")

	registry := provider.NewRegistry(cfg, logger)
	parser := service.NewQueryParser(registry.LLM(), logger)
	engine := service.NewEngine(repo, registry.Embedder(), logger)

	serverMetrics := metrics.NewHTTPServerMetrics()

	searchHandler := handler.NewSearchHandler(parser, engine, serverMetrics, logger,
		cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
	propertyHandler := handler.NewPropertyHandler(repo, logger)
	cityHandler := handler.NewCityHandler(repo, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(serverMetrics.Middleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "cribinfo",
			"version": Version,
		})
	})
	router.GET("/metrics", gin.WrapH(serverMetrics.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/search", searchHandler.Search)
		apiV1.GET("/properties/:id", propertyHandler.GetProperty)
		apiV1.POST("/compare", propertyHandler.Compare)
		apiV1.GET("/cities", cityHandler.Cities)
		apiV1.GET("/cities/:city/areas", cityHandler.Areas)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
