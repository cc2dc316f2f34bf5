package s3adapter

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store keeps CV blobs in one S3 bucket, keyed by the lifecycle service.
type Store struct {
	client *s3.Client
	bucket string
	logger *slog.Logger
}

func NewStore(client *s3.Client, bucket string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

func (s *Store) Upload(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return err
	}
	s.logger.Info("cv uploaded",
		"event", "cv_uploaded",
		"module", "admission/applicant-service",
		"layer", "adapter",
		"bucket", s.bucket,
		"key", key,
		"size", len(data),
	)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
