// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anvogue/anvogue-admin/internal/backend"
	"github.com/anvogue/anvogue-admin/internal/config"
	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/logger"
	"github.com/anvogue/anvogue-admin/internal/router"
	"github.com/anvogue/anvogue-admin/internal/services"
	"github.com/anvogue/anvogue-admin/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logging
	if err := logger.Init(&cfg.Log); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	appLog := logger.GetAppLogger()

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		log.Fatal("Failed to initialize i18n:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	client := backend.NewClient(cfg.Backend, logger.GetLogger("backend"))
	articles := store.NewArticleStore(nil)
	catalog := services.NewCatalogService(client, articles, appLog, cfg.I18n.DefaultLocale)
	workspaces := services.NewWorkspaces(client, articles, appLog, cfg.I18n.DefaultLocale)

	// The backend may come up after us; the list can be reloaded from the API.
	loadCtx, cancelLoad := context.WithTimeout(ctx, time.Duration(cfg.Backend.Timeout)*time.Second)
	if err := catalog.Load(loadCtx); err != nil {
		appLog.WithError(err).Warn("Initial catalog load failed")
	}
	cancelLoad()

	go sweepWorkspaces(ctx, workspaces, cfg.Auth)

	// Initialize router
	r := router.Initialize(ctx, cfg, router.Services{
		Catalog:    catalog,
		Auth:       services.NewAuthService(client, appLog, cfg.I18n.DefaultLocale),
		Workspaces: workspaces,
	}, logger.GetLogger("http"))

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLog.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")
	stop()

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Fatal("Server forced to shutdown")
	}

	appLog.Info("Server exited")
}

func sweepWorkspaces(ctx context.Context, workspaces *services.Workspaces, cfg config.AuthConfig) {
	if cfg.WorkspaceIdle <= 0 || cfg.WorkspaceSweep <= 0 {
		return
	}
	ticker := time.NewTicker(time.Duration(cfg.WorkspaceSweep) * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			workspaces.Sweep(time.Duration(cfg.WorkspaceIdle) * time.Minute)
		}
	}
}
