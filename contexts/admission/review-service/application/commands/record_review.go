package commands

import (
	"context"
	"log/slog"
	"strings"

	application "meridian/contexts/admission/review-service/application"
	"meridian/contexts/admission/review-service/domain/entities"
	domainerrors "meridian/contexts/admission/review-service/domain/errors"
	"meridian/contexts/admission/review-service/ports"
)

type RecordReviewCommand struct {
	ApplicantID     string
	ReviewerAuthID  string
	AverageScore    float64
}

type RecordReviewUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc RecordReviewUseCase) Execute(ctx context.Context, cmd RecordReviewCommand) (entities.Review, error) {
	logger := application.ResolveLogger(uc.Logger)

	id, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Review{}, err
	}
	review := entities.Review{
		ID:              id,
		ApplicantID:     strings.TrimSpace(cmd.ApplicantID),
		CreatedByAuthID: strings.TrimSpace(cmd.ReviewerAuthID),
		AverageScore:    cmd.AverageScore,
		CreatedAt:       uc.Clock.Now().UTC(),
	}
	if !review.ValidateCreate() {
		return entities.Review{}, domainerrors.ErrInvalidReviewInput
	}

	if err := uc.Repository.CreateReview(ctx, review); err != nil {
		return entities.Review{}, err
	}

	logger.Info("review recorded",
		"event", "review_recorded",
		"module", "admission/review-service",
		"layer", "application",
		"review_id", review.ID,
		"applicant_id", review.ApplicantID,
		"reviewer", review.CreatedByAuthID,
	)
	return review, nil
}
