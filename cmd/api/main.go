package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care-manager/internal/adapters/ai/gemini"
	"pet-care-manager/internal/platform/config"
	"pet-care-manager/internal/platform/logger"
	"pet-care-manager/internal/recordstore"
	"pet-care-manager/internal/router"
)

// @title Pet Care Manager API
// @version 1.0
// @description Mascotas, citas, planes de comida, galería y asistente de consejos.
// @BasePath /
func main() {
	configFile := flag.String("config", "", "ruta a petcare.yaml (opcional)")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "pet-care-manager: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := openBackend(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	store := recordstore.New(backend)
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("close store", map[string]any{"error": err})
		}
	}()

	gen, err := gemini.NewClient(gemini.Config{
		BaseURL: cfg.AI.BaseURL,
		APIKey:  cfg.AI.APIKey,
		Timeout: cfg.AI.Timeout,
	})
	if err != nil {
		return err
	}
	if !gen.IsConfigured() {
		log.Warn("ai api key not configured; advice answers will ask for it", nil)
	}

	srv := &http.Server{
		Addr: cfg.HTTP.Addr(),
		Handler: router.NewRouter(router.Options{
			Store:     store,
			Generator: gen,
			Model:     cfg.AI.Model,
			Logger:    log,
		}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"storage": cfg.Storage.Driver,
			"model":   cfg.AI.Model,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
