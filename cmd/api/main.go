package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/catalog"
	"github.com/fhuszti/medias-catalog-go/internal/config"
	"github.com/fhuszti/medias-catalog-go/internal/handler/api"
	"github.com/fhuszti/medias-catalog-go/internal/latency"
	"github.com/fhuszti/medias-catalog-go/internal/logger"
	"github.com/fhuszti/medias-catalog-go/internal/metrics"
	cMiddleware "github.com/fhuszti/medias-catalog-go/internal/middleware"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/fhuszti/medias-catalog-go/internal/renderer"
	"github.com/fhuszti/medias-catalog-go/internal/storage"
	"github.com/fhuszti/medias-catalog-go/internal/usecase/gallery"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "medias-catalog"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	slots, closeSlots := initSlots(ctx, cfg)

	store := catalog.New(slots,
		catalog.WithKeys(cfg.PrimaryKey, cfg.BackupKey),
		catalog.WithLatency(latency.Fixed(cfg.Latency)),
	)
	cat := metrics.NewInstrumentedCatalog(store)
	cat.Init(ctx)

	surface := renderer.NewGalleryRenderer()
	ctrl := gallery.NewController(cat, surface, surface, cMiddleware.ContextConfirmer{},
		gallery.WithMessageDurations(cfg.SuccessMessageDuration, cfg.ErrorMessageDuration),
	)
	if _, err := ctrl.Refresh(ctx); err != nil {
		logger.Warnf(ctx, "⚠️  Initial gallery render failed: %v", err)
	}

	r := initRouter(ctx)

	r.Get("/medias", api.ListMediaHandler(ctrl))
	r.Post("/medias", api.UploadMediaHandler(ctrl))
	r.With(cMiddleware.WithMediaID()).
		Get("/medias/{id}", api.GetMediaHandler(ctrl))
	r.With(cMiddleware.WithMediaID(), cMiddleware.WithConfirmation()).
		Delete("/medias/{id}", api.DeleteMediaHandler(ctrl))
	r.With(cMiddleware.WithMediaID()).
		Post("/medias/{id}/edit", api.OpenEditHandler(ctrl))

	r.Get("/edit", api.GetEditHandler(ctrl))
	r.Put("/edit", api.SaveEditHandler(ctrl))
	r.Delete("/edit", api.CancelEditHandler(ctrl))

	r.Get("/gallery", api.GetGalleryHandler(surface, time.Now))
	r.Handle("/metrics", promhttp.Handler())

	listenRouter(ctx, r, cfg, closeSlots)
}

// initSlots picks Redis when configured and the in-process store otherwise.
func initSlots(ctx context.Context, cfg *config.Settings) (port.SlotStore, func() error) {
	logger.Info(ctx, "initialising catalog storage...")

	if cfg.RedisAddr == "" {
		logger.Warn(ctx, "⚠️  Redis not configured — the catalog lives in process memory only")
		local := storage.NewLocalSlots(cfg.LocalStorageQuota)
		prometheus.MustRegister(metrics.NewLocalStorageGauge(local))
		return local, func() error { return nil }
	}

	slots := storage.NewRedisSlots(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := slots.Ping(ctx); err != nil {
		// the catalog still starts; Init falls back to an empty list
		logger.Errorf(ctx, "❌  Redis unreachable at %s: %v", cfg.RedisAddr, err)
	} else {
		logger.Info(ctx, "✅  Redis catalog storage enabled")
	}
	return slots, slots.Close
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cMiddleware.PrometheusMetrics(serviceName))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, closeSlots func() error) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := closeSlots(); err != nil {
		logger.Errorf(ctx, "storage close error: %v", err)
		os.Exit(1)
	}
}
