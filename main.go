package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "campusbooking/internal/config"
	intdb "campusbooking/internal/db"
	router "campusbooking/internal/http"
	"campusbooking/internal/http/handlers"
	"campusbooking/internal/services"
	"campusbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	log := utils.NewLogger(env.LogLevel)
	slog.SetDefault(log)

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx := context.Background()
	db, dialect, err := intconfig.ConnectDB(ctx, env)
	if err != nil {
		log.Error("failed to connect database", "driver", env.DBDriver, "err", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected", "driver", env.DBDriver)

	if err := intdb.EnsureSchema(ctx, db, dialect); err != nil {
		log.Error("failed to ensure schema", "err", err)
		os.Exit(1)
	}

	seed := services.DefaultVenues
	if env.VenueSeedFile != "" {
		if seed, err = services.LoadVenueSeedFile(env.VenueSeedFile); err != nil {
			log.Error("failed to load venue seed file", "path", env.VenueSeedFile, "err", err)
			os.Exit(1)
		}
	}
	if _, err := services.NewSeedService(db, dialect).SeedDefaults(ctx, seed); err != nil {
		log.Error("failed to seed venues", "err", err)
		os.Exit(1)
	}

	admission := services.NewAdmissionService(db, dialect,
		services.WithLockTimeout(env.AdmitLockTimeout),
		services.WithRetries(env.AdmitMaxRetries, env.AdmitRetryBackoff),
	)
	hd := handlers.New(admission, services.NewQueryService(db, dialect))
	r := router.NewRouter(env, hd, log)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", "addr", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "err", err)
		return
	}

	log.Info("server stopped")
}
