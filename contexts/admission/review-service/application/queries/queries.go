package queries

import (
	"context"
	"log/slog"
	"strings"

	"meridian/contexts/admission/review-service/domain/entities"
	"meridian/contexts/admission/review-service/ports"
)

type QueryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc QueryUseCase) ListForApplicant(ctx context.Context, applicantID string) ([]entities.Review, error) {
	return uc.Repository.ListForApplicant(ctx, strings.TrimSpace(applicantID))
}

func (uc QueryUseCase) CountForApplicant(ctx context.Context, applicantID string) (int64, error) {
	return uc.Repository.CountForApplicant(ctx, strings.TrimSpace(applicantID))
}
