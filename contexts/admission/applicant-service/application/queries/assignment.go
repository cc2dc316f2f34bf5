package queries

import (
	"context"
	"log/slog"
	"strings"

	application "meridian/contexts/admission/applicant-service/application"
	"meridian/contexts/admission/applicant-service/domain/entities"
	"meridian/contexts/admission/applicant-service/ports"
)

const DefaultReviewBatchSize = 5

// AssignmentUseCase picks the next applicants a reviewer should score.
// Eligibility: still Applied, fewer than the committed review cap, never
// reviewed by this reviewer. Oldest applications surface first so fairness
// runs across applicants rather than reviewers.
type AssignmentUseCase struct {
	Repository ports.Repository
	BatchSize  int
	Logger     *slog.Logger
}

// NextForReviewer keeps the historical fail-soft contract: a repository
// failure yields an empty batch, indistinguishable to the caller from "nothing
// left to review". The error is logged so the failure stays observable.
func (uc AssignmentUseCase) NextForReviewer(ctx context.Context, reviewerAuthID string, limit int) []entities.Applicant {
	logger := application.ResolveLogger(uc.Logger)
	if limit <= 0 {
		limit = uc.BatchSize
	}
	if limit <= 0 {
		limit = DefaultReviewBatchSize
	}

	items, err := uc.Repository.NextForReviewer(ctx, strings.TrimSpace(reviewerAuthID), limit)
	if err != nil {
		logger.Error("review assignment query failed",
			"event", "assignment_query_failed",
			"module", "admission/applicant-service",
			"layer", "application",
			"reviewer", reviewerAuthID,
			"error", err.Error(),
		)
		return nil
	}
	return items
}
