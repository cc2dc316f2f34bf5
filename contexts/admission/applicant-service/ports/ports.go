package ports

import (
	"context"
	"time"

	"meridian/contexts/admission/applicant-service/domain/entities"
)

type ApplicantFilter struct {
	Status     *entities.ApplicationStatus
	University string
	Country    string
}

type ListOptions struct {
	OrderBy    string
	Descending bool
	Limit      int
	Offset     int
}

type Repository interface {
	CreateApplicant(ctx context.Context, applicant entities.Applicant) error
	UpdateApplicant(ctx context.Context, applicant entities.Applicant) error
	GetApplicant(ctx context.Context, id string) (entities.Applicant, error)
	GetApplicantByAuthID(ctx context.Context, authID string) (entities.Applicant, error)
	ListApplicants(ctx context.Context, filter ApplicantFilter, opts ListOptions) ([]entities.Applicant, int64, error)
	DeleteApplicant(ctx context.Context, id string) error

	// NextForReviewer returns up to limit applicants that are still Applied,
	// hold fewer than the committed review cap, and were never reviewed by
	// reviewerAuthID, oldest application first.
	NextForReviewer(ctx context.Context, reviewerAuthID string, limit int) ([]entities.Applicant, error)
}

// ObjectStorage persists CV blobs under opaque keys.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
