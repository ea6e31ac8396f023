// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the storefront server. It loads
// configuration, connects to services, sets up routing, and starts the
// HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ihsantack/internal/catalog"
	"ihsantack/internal/config"
	"ihsantack/internal/database"
	"ihsantack/internal/handlers"
	"ihsantack/internal/render"
	"ihsantack/internal/router"
	"ihsantack/internal/session"
	"ihsantack/internal/store"
)

func main() {
	// A .env file is optional; real deployments set the environment
	// directly.
	godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"assets_dir", cfg.AssetsDir,
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// The six-category taxonomy is fixed; refresh it on every start.
	if err := database.SeedCategories(db); err != nil {
		slog.Error("failed to seed categories", "error", err)
		os.Exit(1)
	}

	// Bootstrap the admin account from the environment, when configured.
	if err := database.EnsureAdmin(db); err != nil {
		slog.Error("failed to bootstrap admin account", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey, the session backend.
	valkeyClient, err := session.Connect(cfg.ValkeyAddr(), cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies as Secure.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Data stores.
	userStore := store.NewUserStore(db)
	categoryStore := store.NewCategoryStore(db)
	productStore := store.NewProductStore(db)
	brandStore := store.NewBrandStore(db)
	blogPostStore := store.NewBlogPostStore(db)
	heroStore := store.NewHeroStore(db)
	promoStore := store.NewPromoStore(db)
	showcaseStore := store.NewShowcaseStore(db)
	settingsStore := store.NewSiteSettingsStore(db)

	// The asset catalog: the image directory scanned into keyword
	// buckets, cross-linked against the database.
	scanner := catalog.NewScanner(cfg.AssetsDir)
	resolver := catalog.NewResolver(scanner, categoryStore, productStore)

	// Handler groups.
	publicHandlers := handlers.NewPublic(
		renderer, resolver,
		categoryStore, productStore, brandStore, blogPostStore,
		heroStore, promoStore, showcaseStore, settingsStore,
	)
	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore)
	adminHandlers := handlers.NewAdmin(
		renderer, resolver,
		categoryStore, productStore, blogPostStore, settingsStore,
	)

	r := router.New(sessionStore, publicHandlers, authHandlers, adminHandlers, cfg.AssetsDir)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
