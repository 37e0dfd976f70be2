// cmd/server/main.go
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

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shelflife/internal/config"
	"github.com/javajoker/shelflife/internal/database"
	"github.com/javajoker/shelflife/internal/expiry"
	"github.com/javajoker/shelflife/internal/i18n"
	"github.com/javajoker/shelflife/internal/router"
	"github.com/javajoker/shelflife/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	cfg.ConfigureLogger()
	log := logrus.StandardLogger()

	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		log.WithError(err).Fatal("Failed to initialize i18n")
	}

	clock := expiry.SystemClock{}
	var (
		productRepo services.ProductRepository
		prefsRepo   services.PreferencesRepository
	)

	if cfg.Database.Enabled {
		db, err := database.Initialize(cfg.Database)
		if err != nil {
			log.WithError(err).Fatal("Failed to initialize database")
		}
		defer database.Close(db)

		if err := database.RunMigrations(db); err != nil {
			log.WithError(err).Fatal("Failed to run migrations")
		}
		productRepo = database.NewProductRepository(db)
		prefsRepo = database.NewPreferencesRepository(db)
	} else {
		log.Info("Database disabled, products are kept in memory")
	}

	store := services.NewProductStore(productRepo, clock, log)
	if err := store.Load(); err != nil {
		log.WithError(err).Fatal("Failed to load products")
	}

	catalog := services.NewCatalog(store, services.DefaultSeedProducts, services.DefaultSamplePool, nil)
	if cfg.Catalog.SeedOnStart {
		if err := catalog.SeedIfEmpty(); err != nil {
			log.WithError(err).Fatal("Failed to seed sample products")
		}
	}

	prefs := services.NewPreferencesService(prefsRepo, cfg.DefaultPreferences())
	if err := prefs.Load(); err != nil {
		log.WithError(err).Fatal("Failed to load preferences")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	r := router.Initialize(appCtx, cfg, router.Dependencies{
		Store:       store,
		Catalog:     catalog,
		Preferences: prefs,
		Clock:       clock,
		Logger:      log,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")
	stopApp()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return
	}

	log.Info("Server exited")
}
