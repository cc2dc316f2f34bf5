package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServiceName != "meridian" || cfg.HTTPPort != "8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ReviewBatchSize != 5 || cfg.ReviewLimit != 2 {
		t.Fatalf("unexpected review defaults: %+v", cfg)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/meridian")
	t.Setenv("REVIEW_BATCH_SIZE", "9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PostgresDSN != "postgres://localhost:5432/meridian" {
		t.Fatalf("unexpected dsn: %q", cfg.PostgresDSN)
	}
	if cfg.ReviewBatchSize != 9 {
		t.Fatalf("unexpected batch size: %d", cfg.ReviewBatchSize)
	}
}
