package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appledger "github.com/Wh0mever/Palma-backend-sub000/internal/application/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/application/report"
	appshift "github.com/Wh0mever/Palma-backend-sub000/internal/application/shift"
	"github.com/Wh0mever/Palma-backend-sub000/internal/infrastructure/config"
	"github.com/Wh0mever/Palma-backend-sub000/internal/infrastructure/logger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/infrastructure/persistence"
	"github.com/Wh0mever/Palma-backend-sub000/internal/interfaces/http/handler"
	"github.com/Wh0mever/Palma-backend-sub000/internal/interfaces/http/middleware"
	"github.com/Wh0mever/Palma-backend-sub000/internal/interfaces/http/router"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Palma finance backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.HTTP.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
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
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	entryRepo := persistence.NewGormAccountEntryRepository(db.DB)
	shiftRepo := persistence.NewGormShiftRepository(db.DB)
	scope := persistence.NewGormLedgerTransactionScope(db.DB)

	// Application services
	paymentService := appledger.NewPaymentService(scope, entryRepo, paymentRepo, log)
	shiftService := appshift.NewService(scope, shiftRepo, log)
	debtAllocator := report.NewDebtAllocator(scope)

	// HTTP handlers
	paymentHandler := handler.NewPaymentHandler(paymentService)
	shiftHandler := handler.NewShiftHandler(shiftService)
	reportHandler := handler.NewReportHandler(debtAllocator, paymentService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(paymentHandler)
	r.Register(shiftHandler)
	r.Register(reportHandler)
	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	}
}
