package config

import "github.com/caarlos0/env/v11"

// Config is centralized process configuration. It is loaded once at boot and
// passed by value into module builders; nothing reads the environment after
// that.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"meridian"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	AWSRegion string `env:"AWS_REGION" envDefault:"eu-west-1"`
	CVBucket  string `env:"CV_BUCKET" envDefault:"meridian-cv"`

	// ReviewBatchSize is how many applicants a reviewer is handed per request;
	// ReviewLimit is the committed-review cap per applicant.
	ReviewBatchSize int `env:"REVIEW_BATCH_SIZE" envDefault:"5"`
	ReviewLimit     int `env:"REVIEW_LIMIT" envDefault:"2"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
