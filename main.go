package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"booking-wizard/config"
	"booking-wizard/controllers"
	"booking-wizard/logger"
	"booking-wizard/middleware"
	"booking-wizard/repositories"
	"booking-wizard/routes"
	"booking-wizard/services"
)

func main() {
	// .env is optional
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, "booking-wizard")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	if envErr != nil {
		zl.Info(".env not loaded; using process environment", zap.Error(envErr))
	}

	db, err := config.ConnectDatabase(cfg, zl)
	if err != nil {
		zl.Fatal("database connect failed", zap.Error(err))
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			zl.Warn("database close failed", zap.Error(err))
		}
	}()
	zl.Info("database connection established")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entryRepo := repositories.NewEntryRepository(db)
	bookingRepo := repositories.NewRoomBookingRepository(db)

	entryService := services.NewEntryService(entryRepo, zl.Named("entry"))
	bookingService := services.NewRoomBookingService(bookingRepo, entryRepo, zl.Named("room_booking"))

	entryController := controllers.NewEntryController(entryService, zl)
	bookingController := controllers.NewRoomBookingController(bookingService, zl)

	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	router, err := routes.SetupRouter(entryController, bookingController, limiter, routes.Options{
		CorsOrigins:    cfg.CorsOrigins,
		TrustedProxies: cfg.TrustedProxies,
	}, zl)
	if err != nil {
		zl.Fatal("router setup failed", zap.Error(err))
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		zl.Info("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			zl.Error("listen failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server stopped")
}
