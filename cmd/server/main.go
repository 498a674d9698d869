package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"psyscreen/internal/assessment"
	assessmenthandler "psyscreen/internal/assessment/handler"
	assessmentmetrics "psyscreen/internal/assessment/metrics"
	assessmentservice "psyscreen/internal/assessment/service"
	"psyscreen/internal/audit"
	"psyscreen/internal/jwttoken"
	"psyscreen/internal/platform/config"
	"psyscreen/internal/platform/httpserver"
	"psyscreen/internal/platform/logger"
	platformmetrics "psyscreen/internal/platform/metrics"
	"psyscreen/internal/platform/middleware"
	platformredis "psyscreen/internal/platform/redis"
	"psyscreen/internal/report"
	"psyscreen/internal/scoring"
)

// main wires dependencies and owns the server lifecycle. Redis, Postgres and
// Kafka are all optional: absent configuration falls back to in-process
// implementations so a single binary works for local development.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Session store.
	var sessions assessment.Store
	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		sessions = assessment.NewRedisStore(redisClient, cfg.SessionTTL)
		log.Info("using redis session store")
	} else {
		sessions = assessment.NewInMemoryStore()
		log.Info("using in-memory session store")
	}

	// Archive store.
	var archive report.Store
	if cfg.Postgres.DSN != "" {
		db, err := sql.Open("postgres", cfg.Postgres.DSN)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := report.NewPostgresStore(db)
		if err := pg.Migrate(ctx); err != nil {
			log.Error("postgres migration failed", "error", err)
			os.Exit(1)
		}
		archive = pg
		log.Info("using postgres archive store")
	} else {
		archive = report.NewInMemoryStore()
		log.Info("using in-memory archive store")
	}

	// Audit trail.
	var publisher audit.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kp, err := audit.NewKafkaPublisher(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Error("kafka publisher setup failed", "error", err)
			os.Exit(1)
		}
		publisher = kp
		log.Info("using kafka audit publisher", "topic", cfg.Kafka.Topic)
	} else {
		publisher = audit.NewMemoryPublisher()
		log.Info("using in-memory audit publisher")
	}
	defer publisher.Close()

	recorder := audit.NewRecorder(256, log)
	recorderCtx, cancelRecorder := context.WithCancel(context.Background())
	recorderDone := make(chan struct{})
	go func() {
		defer close(recorderDone)
		_ = recorder.Run(recorderCtx, publisher)
	}()

	// Domain wiring.
	thresholds := scoring.Thresholds{
		ScreeningPositives: cfg.ScreeningPositiveCutoff,
		FullPercent:        cfg.FullTierPercentCutoff,
		SincerityHigh:      cfg.SincerityHighCutoff,
		SincerityLow:       cfg.SincerityLowCutoff,
	}
	engine := assessment.NewEngine(thresholds)
	svc := assessmentservice.New(engine, sessions, archive, recorder, assessmentmetrics.New(), log)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "psyscreen")
	handler := assessmenthandler.New(svc, jwtService, cfg.SessionTTL, log)

	// Router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	r.Use(platformmetrics.NewHTTP().Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(req.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	handler.Register(r, middleware.RequireAuth(jwtService, log))

	srv := httpserver.New(cfg.Addr, r)
	go func() {
		log.Info("psyscreen listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	// Stop the recorder after the server stops accepting requests so
	// in-flight events still drain to the publisher.
	cancelRecorder()
	<-recorderDone
}
