package ports

import (
	"context"
	"time"

	"meridian/contexts/admission/review-service/domain/entities"
)

type Repository interface {
	// CreateReview persists one review inside a single transaction that also
	// enforces the per-pair uniqueness and the committed review cap.
	CreateReview(ctx context.Context, review entities.Review) error
	GetReview(ctx context.Context, applicantID string, reviewerAuthID string) (entities.Review, error)
	ListForApplicant(ctx context.Context, applicantID string) ([]entities.Review, error)
	CountForApplicant(ctx context.Context, applicantID string) (int64, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
