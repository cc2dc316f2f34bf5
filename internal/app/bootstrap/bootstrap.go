package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	applicantservice "meridian/contexts/admission/applicant-service"
	applicantmemory "meridian/contexts/admission/applicant-service/adapters/memory"
	applicantpg "meridian/contexts/admission/applicant-service/adapters/postgres"
	s3adapter "meridian/contexts/admission/applicant-service/adapters/s3"
	applicantports "meridian/contexts/admission/applicant-service/ports"
	reviewservice "meridian/contexts/admission/review-service"
	reviewpg "meridian/contexts/admission/review-service/adapters/postgres"
	"meridian/internal/platform/config"
	"meridian/internal/platform/db"
	"meridian/internal/platform/httpserver"
	"meridian/internal/platform/objectstore"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

// BuildAPI wires the admission modules from configuration. Without a
// POSTGRES_DSN it falls back to in-memory adapters, which is the local
// development mode.
func BuildAPI(ctx context.Context) (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		logger.Warn("no postgres dsn configured, using in-memory stores",
			"event", "memory_mode",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		reviews := reviewservice.NewInMemoryModule(nil, logger)
		applicants, _ := applicantservice.NewInMemoryModule(nil, reviews.Store, cfg.ReviewBatchSize, logger)
		return &APIApp{
			server: httpserver.New(applicants, reviews, logger, normalizeAddr(cfg.HTTPPort)),
			logger: logger,
		}, nil
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	var storage applicantports.ObjectStorage
	if cfg.CVBucket != "" {
		s3Client, err := objectstore.NewS3Client(ctx, cfg.AWSRegion)
		if err != nil {
			_ = pg.Close()
			return nil, err
		}
		storage = s3adapter.NewStore(s3Client, cfg.CVBucket, logger)
	} else {
		storage = applicantmemory.NewObjectStore()
	}

	applicants := applicantservice.NewModule(applicantservice.Dependencies{
		Repository:      applicantpg.NewRepository(pg.DB, cfg.ReviewLimit, logger),
		Storage:         storage,
		Clock:           applicantpg.SystemClock{},
		IDGen:           applicantpg.UUIDGenerator{},
		ReviewBatchSize: cfg.ReviewBatchSize,
		Logger:          logger,
	})
	reviews := reviewservice.NewModule(reviewservice.Dependencies{
		Repository: reviewpg.NewRepository(pg.DB, cfg.ReviewLimit, logger),
		Clock:      reviewpg.SystemClock{},
		IDGen:      reviewpg.UUIDGenerator{},
		Logger:     logger,
	})

	return &APIApp{
		server:   httpserver.New(applicants, reviews, logger, normalizeAddr(cfg.HTTPPort)),
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
