package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"churnsight/internal/artifact"
	"churnsight/internal/churn"
	churnHandler "churnsight/internal/churn/handler"
	churnMetrics "churnsight/internal/churn/metrics"
	"churnsight/internal/importance"
	importanceHandler "churnsight/internal/importance/handler"
	"churnsight/internal/platform/config"
	"churnsight/internal/platform/httpserver"
	"churnsight/internal/platform/logger"
	"churnsight/internal/web"
	"churnsight/pkg/platform/middleware/requestid"
	"churnsight/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Artifacts load once before the listener opens; a missing file aborts
// startup instead of failing requests later.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	model, scaler, err := artifact.Load(cfg.ModelPath, cfg.ScalerPath)
	if err != nil {
		log.Error("artifact load failed", "error", err)
		os.Exit(1)
	}

	importanceRows, err := importance.LoadSheet(cfg.ImportancePath)
	if err != nil {
		log.Error("feature importance load failed", "error", err)
		os.Exit(1)
	}

	schema := churn.BankSchema()
	pipeline, err := churn.NewPipeline(schema, scaler)
	if err != nil {
		log.Error("pipeline construction failed", "error", err)
		os.Exit(1)
	}
	scorer, err := churn.NewScorer(schema, model)
	if err != nil {
		log.Error("scorer construction failed", "error", err)
		os.Exit(1)
	}
	service, err := churn.NewService(pipeline, scorer,
		churn.WithLogger(log),
		churn.WithMetrics(churnMetrics.New()),
	)
	if err != nil {
		log.Error("service construction failed", "error", err)
		os.Exit(1)
	}

	page, err := web.New(cfg.DashboardURL, log)
	if err != nil {
		log.Error("web page construction failed", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)

	churnHandler.New(service, log).Register(r)
	importanceHandler.New(importanceRows).Register(r)
	page.Register(r)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := httpserver.New(cfg.Addr, r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting churnsight",
		"addr", cfg.Addr,
		"model", cfg.ModelPath,
		"scaler", cfg.ScalerPath,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("churnsight stopped")
}
