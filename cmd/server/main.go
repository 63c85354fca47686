package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/config"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/infra"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/router"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := infra.SeedCatalogos(db, cfg.ClienteDefecto); err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalogs")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Worker pool for async jobs (ticket PDF, email, dataset export).
	// Handlers are wired here, at the composition root, so the pool has
	// full access to all infrastructure dependencies.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	ml := infra.NewMLClient(cfg.MLServiceURL)
	dispatcher := worker.NewDispatcher(rdb)

	ventaRepo := repository.NewOrdenVentaRepository(db)
	analyticsSvc := service.NewAnalyticsService(ventaRepo, ml, dispatcher)

	pool := worker.NewPool(
		rdb,
		worker.NewTicketWorker(ventaRepo, dispatcher, cfg.PDFStoragePath),
		worker.NewExportWorker(analyticsSvc, ml),
		worker.NewEmailWorker(mailer),
	)
	pool.Start(ctx, cfg.WorkerPoolSize)

	r := router.New(cfg, db, rdb, ml, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("POS finanzas backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
