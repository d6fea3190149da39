// Package main is the entrypoint for the wallpaper generation API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ketan-K17/wallpaper-app/internal/api"
	"github.com/Ketan-K17/wallpaper-app/internal/api/handler"
	"github.com/Ketan-K17/wallpaper-app/internal/cache"
	"github.com/Ketan-K17/wallpaper-app/internal/config"
	"github.com/Ketan-K17/wallpaper-app/internal/generator"
	"github.com/Ketan-K17/wallpaper-app/internal/orchestrator"
	"github.com/Ketan-K17/wallpaper-app/internal/registry"
	"github.com/Ketan-K17/wallpaper-app/internal/storage"
	"github.com/Ketan-K17/wallpaper-app/internal/store"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config — fail fast on invalid config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "provider", cfg.Generator.Provider, "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := registry.New()

	// 2. Optional Postgres archive of finished jobs
	var archive store.Store
	if cfg.Database.URL != "" {
		pool, err := store.Connect(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()

		if err := store.RunMigrations(cfg.Database.URL, "migrations"); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		slog.Info("database connected, migrations applied")

		archive = store.NewPostgresStore(pool)
		warmRegistry(ctx, reg, archive)
	} else {
		slog.Info("DATABASE_URL not set, job archive disabled")
	}

	// 3. Optional Redis status mirror
	var statusCache cache.Cache = cache.Noop{}
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisCache(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("create redis cache: %w", err)
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		slog.Info("redis connected")
		statusCache = redisCache
	} else {
		slog.Info("REDIS_URL not set, status mirror disabled")
	}

	// 4. Artifact storage and cleanup
	artifacts, err := storage.NewFSStore(cfg.Storage.Dir)
	if err != nil {
		return fmt.Errorf("create artifact store: %w", err)
	}
	janitor := storage.NewJanitor(artifacts, cfg.Storage.MaxArtifactAge, cfg.Storage.CleanupInterval)
	go janitor.Run(ctx)

	// 5. Image generator
	gen, err := generator.NewGenerator(cfg.Generator)
	if err != nil {
		return fmt.Errorf("create image generator: %w", err)
	}
	slog.Info("image generator initialized", "provider", gen.Name())

	// 6. Orchestrator
	svc := orchestrator.New(reg, gen, artifacts, statusCache, archive, cfg.Generator.Timeout)

	// 7. Build router with dependencies
	deps := api.Dependencies{
		RootHandler: handler.NewRootHandler(),
		HealthHandler: handler.NewHealthHandler(map[string]handler.Pinger{
			"database": pingerOrNil(archive),
			"cache":    statusCache,
		}),
		GenerateHandler: handler.NewGenerateHandler(svc),
		StatusHandler:   handler.NewStatusHandler(reg, cfg.Storage.PublicBasePath),
		DownloadHandler: handler.NewDownloadHandler(reg, artifacts),
		RecentHandler:   handler.NewRecentHandler(reg, cfg.Storage.PublicBasePath),
		ArtifactDir:     artifacts.Dir(),
		PublicBasePath:  cfg.Storage.PublicBasePath,
	}

	router := api.NewRouter(deps)

	// 8. Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// warmRegistry seeds the in-memory registry with archived completed jobs so
// /status and /recent keep answering for work finished before a restart.
func warmRegistry(ctx context.Context, reg *registry.Registry, archive store.Store) {
	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	jobs, err := archive.ListCompleted(loadCtx, 100)
	if err != nil {
		slog.Error("load archived jobs", "error", err)
		return
	}
	restored := 0
	for _, job := range jobs {
		if err := reg.Restore(*job); err != nil {
			slog.Error("restore archived job", "generation_id", job.ID, "error", err)
			continue
		}
		restored++
	}
	slog.Info("registry warmed from archive", "restored", restored)
}

// pingerOrNil keeps a typed-nil store.Store from masquerading as a live
// health-check dependency.
func pingerOrNil(s store.Store) handler.Pinger {
	if s == nil {
		return nil
	}
	return s
}
