// Package main boots the Solace response engine API and wires application
// dependencies.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/solacekit/solace/internal/catalog"
	"github.com/solacekit/solace/internal/config"
	"github.com/solacekit/solace/internal/engine"
	"github.com/solacekit/solace/internal/history"
	"github.com/solacekit/solace/internal/safety"
	"github.com/solacekit/solace/internal/sentiment"
	"github.com/solacekit/solace/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	slog.Info("configuration loaded",
		"listen_addr", cfg.ListenAddr,
		"catalog_path", cfg.CatalogPath,
		"history_window", cfg.HistoryWindow,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []catalog.Option{}
	if cfg.CatalogPath != "" {
		opts = append(opts, catalog.WithOverlayFile(cfg.CatalogPath))
	}
	cat, err := catalog.New(opts...)
	if err != nil {
		// Catalog problems are the single fatal condition.
		log.Fatalf("failed to load catalog: %v", err)
	}
	slog.Info("catalog loaded", "music_categories", len(cat.MusicCategories()))

	scorer := sentiment.NewScorer(sentiment.NewVaderBackend(), sentiment.NewLexiconBackend())
	analyzer := history.NewAnalyzer(cfg.HistoryWindow, cfg.NegativeThreshold, cfg.LowEnergyThreshold)
	composer := engine.New(safety.NewScanner(), scorer, cat, analyzer, cfg.HighIntensityThreshold)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(composer, cat).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	case <-ctx.Done():
		fmt.Println("\nshutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
		}
	}

	fmt.Println("server shutdown complete")
}
