package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tadawulbot/news-pipeline/app/api"
	"github.com/tadawulbot/news-pipeline/app/cfg"
	"github.com/tadawulbot/news-pipeline/app/database"
	"github.com/tadawulbot/news-pipeline/app/news"
	"github.com/tadawulbot/news-pipeline/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting news pipeline", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "schema_version", version, "dirty", dirty)

	registry := news.NewStrategyRegistry()
	sourceCache := news.NewSourceCache(appCfg.SourcesDir, registry)
	if err := sourceCache.Run(); err != nil {
		slog.Error("Failed to load source configurations", "dir", appCfg.SourcesDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Source configurations loaded", "count", sourceCache.GetConfigCount())

	articleRepo := database.NewArticleRepository(db)
	sourceRepo := database.NewSourceRepository(db)

	httpClient := &http.Client{Timeout: 60 * time.Second}

	contentExtractor := news.NewContentExtractor(httpClient, appCfg.UserAgent)
	fetcher := news.NewFetcher(httpClient, registry, contentExtractor, appCfg.UserAgent)
	feedSource := news.NewFeedSource(httpClient, contentExtractor, appCfg.UserAgent)
	apiSource := news.NewAPISource(httpClient, appCfg.NewsAPIKey, appCfg.CacheDir, appCfg.UserAgent)
	translator := news.NewTranslator(httpClient, appCfg.TranslateEndpoint)
	scorer := news.NewScorer()

	pipeline := news.NewPipeline(sourceCache, fetcher, feedSource, apiSource,
		translator, scorer, articleRepo, sourceRepo)

	slog.Info("Starting background scheduler", "workers", appCfg.WorkerCount,
		"interval", (time.Duration(appCfg.SchedulerInterval) * time.Second).String())
	scheduler := tasks.NewScheduler(sourceCache, sourceRepo, pipeline)
	scheduler.Start()
	defer scheduler.Stop()

	apiHandler := api.NewHandler(sourceCache, articleRepo, sourceRepo, pipeline, scheduler)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Scheduler is stopped via defer
	slog.Info("Shutdown complete")
}
