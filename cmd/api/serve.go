// ABOUTME: Serve command running the HTTP API until interrupted
// ABOUTME: Registers handlers and shuts the server down gracefully on SIGINT/SIGTERM

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Jis87-63/noticias-moc/api"
	"github.com/Jis87-63/noticias-moc/api/handlers"
	"github.com/Jis87-63/noticias-moc/infrastructure/logger/structured"
	"github.com/Jis87-63/noticias-moc/pkg/featureflags"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the news API",
		Description: `Starts the HTTP server on PORT. Every GET /api/noticias request runs
a fresh aggregation cycle over all configured sources.`,
		Action: runServe,
	}
}

func runServe(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logger, err := structured.NewLogger(cfg.Log)
	if err != nil {
		return err
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		_ = logger.Close()
		return err
	}
	defer a.Close()

	logger.Info("Starting noticias API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"sources":    a.registry.Len(),
	})

	var flags featureflags.Manager = featureflags.NewEnvManager("FEATURE_")
	logger.Info("Feature flags", map[string]interface{}{
		"flags": flags.GetAllFlags(),
	})

	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	}
	if flags.IsEnabled(featureflags.Metrics) {
		apiConfig.MetricsHandler = a.metrics.Handler()
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewNewsHandler(a.aggregator, a.registry).RegisterRoutes(humaAPI)
	if flags.IsEnabled(featureflags.Search) {
		handlers.NewSearchHandler(a.search).RegisterRoutes(humaAPI)
	}
	if flags.IsEnabled(featureflags.Download) {
		handlers.NewDownloadHandler(a.download, logger).RegisterRoutes(humaAPI)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,

		// Downloads stream for as long as the upstream client allows
		WriteTimeout: downloadClientTimeout,
		IdleTimeout:  60 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(ctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}
		return nil
	case <-sigCtx.Done():
	}

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Server stopped", nil)
	return nil
}
