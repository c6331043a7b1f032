package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fashion-catalog/internal/catalog"
	cataloghttp "fashion-catalog/internal/catalog/http"
	"fashion-catalog/internal/catalog/messaging"
	"fashion-catalog/internal/catalog/repository"
	"fashion-catalog/internal/catalog/service"
	"fashion-catalog/internal/config"

	_ "fashion-catalog/docs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	metricCreatedTotal = "products_created_total"
	metricUpdatedTotal = "products_updated_total"
	metricDeletedTotal = "products_deleted_total"
)

// @title        Fashion Catalog API
// @version      1.0
// @description  CRUD catalog of fashion products held in process memory.
// @host         localhost:8080
// @BasePath     /
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadCatalog()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	var publisher service.Publisher = messaging.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		rabbitConn, err := amqp.Dial(cfg.RabbitMQURL)
		if err != nil {
			logger.Error("connect rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitConn.Close()

		rabbitPublisher, err := messaging.NewRabbitPublisher(rabbitConn, catalog.EventsQueue)
		if err != nil {
			logger.Error("init publisher", "error", err)
			os.Exit(1)
		}
		defer rabbitPublisher.Close()

		publisher = rabbitPublisher
	} else {
		logger.Info("RABBITMQ_URL not set, catalog events disabled")
	}

	createdCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricCreatedTotal,
		Help: "Total number of products created",
	})
	updatedCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricUpdatedTotal,
		Help: "Total number of products updated",
	})
	deletedCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricDeletedTotal,
		Help: "Total number of products deleted",
	})
	prometheus.MustRegister(createdCounter, updatedCounter, deletedCounter)

	repo := repository.NewMemory(repository.SeedProducts())
	svc := service.New(repo, publisher, logger, createdCounter, updatedCounter, deletedCounter)
	handler := cataloghttp.NewHandler(svc)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(cataloghttp.RecoveryMiddleware(logger, !cfg.Production()))
	router.Use(cataloghttp.RequestIDMiddleware())
	router.Use(cataloghttp.AccessLogMiddleware(logger))
	cataloghttp.RegisterRoutes(router, handler, repo)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("catalog service started", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("http server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog service stopped")
}
