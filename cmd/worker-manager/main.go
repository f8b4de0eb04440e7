// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"sportrec-workers/internal/common/config"
	"sportrec-workers/internal/common/database"
	"sportrec-workers/internal/common/logger"
	"sportrec-workers/internal/common/observability"

	qf "sportrec-workers/internal/workers/data-access/query-facilities"
	dc "sportrec-workers/internal/workers/recommendation/determine-cohort"
	mf "sportrec-workers/internal/workers/recommendation/match-facilities"
	rf "sportrec-workers/internal/workers/recommendation/recommend-facilities"
	vp "sportrec-workers/internal/workers/recommendation/validate-profile"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	tracing := observability.NewTracing(cfg.App.Name, cfg.Tracing.JaegerEndpoint)
	defer tracing.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient zbc.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	// Postgres backs the facility catalog and the playground queries; it
	// is only required when one of those is switched on.
	needsPostgres := cfg.Catalog.Source == "postgres" || cfg.Workers[qf.TaskType].Enabled

	var pg *database.PostgresClient
	if needsPostgres {
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")
	} else {
		zapLog.Info("PostgreSQL skipped, catalog served from config")
	}

	// --- Init Redis with retry ---
	// The catalog cache is an optimization; a dead Redis degrades to
	// uncached lookups instead of blocking startup.
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 5, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Register Workers ---

	if cfg.Workers[vp.TaskType].Enabled {
		handler, err := vp.NewHandler(
			&vp.Config{
				Timeout: time.Duration(cfg.Workers[vp.TaskType].Timeout) * time.Millisecond,
				Strict:  cfg.Catalog.StrictValidation,
			},
			log,
		)
		if err != nil {
			zapLog.Fatal("failed to create validate-profile handler", zap.Error(err))
		}
		startWorker(zeebeClient, vp.TaskType, cfg.Workers[vp.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[dc.TaskType].Enabled {
		handler := dc.NewHandler(
			&dc.Config{
				Timeout: time.Duration(cfg.Workers[dc.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, dc.TaskType, cfg.Workers[dc.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[mf.TaskType].Enabled {
		handler := mf.NewHandler(
			&mf.Config{
				Timeout:       time.Duration(cfg.Workers[mf.TaskType].Timeout) * time.Millisecond,
				StrictCatalog: cfg.Catalog.StrictValidation,
			},
			log,
		)
		startWorker(zeebeClient, mf.TaskType, cfg.Workers[mf.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[rf.TaskType].Enabled {
		rfCfg := rf.NewConfigFromApp(cfg)
		if t := cfg.Workers[rf.TaskType].Timeout; t > 0 {
			rfCfg.Timeout = time.Duration(t) * time.Millisecond
		}
		handler := rf.NewHandler(rfCfg, pg, redisClient, log)
		startWorker(zeebeClient, rf.TaskType, cfg.Workers[rf.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[qf.TaskType].Enabled {
		handler := qf.NewHandler(
			&qf.Config{
				Timeout: time.Duration(cfg.Workers[qf.TaskType].Timeout) * time.Millisecond,
			},
			pg.DB, log,
		)
		startWorker(zeebeClient, qf.TaskType, cfg.Workers[qf.TaskType], handler.Handle, zapLog)
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(handlerFunc).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
