package main

import (
	"context"
	"diabetes/internal/api"
	"diabetes/internal/api/handler/v1handler"
	"diabetes/internal/config"
	"diabetes/internal/inference"
	"diabetes/internal/prediction"
	"diabetes/pkg/logger"
	"diabetes/pkg/metrics"
	"diabetes/pkg/storage"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// loadPredictor loads the artifact pair once. A failed load is logged and
// returns a predictor that reports itself unavailable.
func loadPredictor(ctx context.Context, cfg *config.Config) *inference.Facade {
	facade := inference.Load(cfg.Artifacts.ModelPath, cfg.Artifacts.ScalerPath)
	if !facade.Ready() {
		logger.Error(ctx, "could not load model artifacts",
			zap.String("model_path", cfg.Artifacts.ModelPath),
			zap.String("scaler_path", cfg.Artifacts.ScalerPath),
			zap.Error(facade.Err()))

		return facade
	}

	logger.Info(ctx, "model artifacts loaded",
		zap.String("model", facade.ModelName()),
		zap.Bool("calibrated", facade.Calibrated()))

	return facade
}

func setupServer(ctx context.Context, cfg *config.Config, svc prediction.Service) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Prediction: svc},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the prediction API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			predictor, err := inference.NewCache(loadPredictor(ctx, cfg), cfg.Prediction.CacheSize)
			if err != nil {
				logger.Fatal(ctx, "could not create outcome cache", zap.Error(err))
			}

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			defer func() { _ = mp.Shutdown(context.Background()) }()
			predictionMetrics, err := metrics.NewPredictions(mp.Meter("diabetes/internal/prediction"))
			if err != nil {
				logger.Fatal(ctx, "could not create prediction metrics", zap.Error(err))
			}

			tp := metrics.NewTracerProvider(logger.Get(ctx))
			otel.SetTracerProvider(tp)
			defer func() {
				if err := tp.Shutdown(context.Background()); err != nil {
					logger.Warn(ctx, "could not flush traces", zap.Error(err))
				}
			}()

			var strg storage.Storage
			if cfg.HistoryEnabled() {
				pgsql, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()
				strg = pgsql
			} else {
				logger.Info(ctx, "prediction history is disabled")
			}

			svc := prediction.New(prediction.Deps{
				Predictor: predictor,
				Storage:   strg,
				Metrics:   predictionMetrics,
				Tracer:    tp.Tracer("diabetes/internal/prediction"),
			})

			stopWebserver := setupServer(ctx, cfg, svc)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
