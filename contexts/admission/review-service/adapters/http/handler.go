package httpadapter

import (
	"context"
	"log/slog"

	"meridian/contexts/admission/review-service/application/commands"
	"meridian/contexts/admission/review-service/application/queries"
	"meridian/contexts/admission/review-service/domain/entities"
	httptransport "meridian/contexts/admission/review-service/transport/http"
)

type Handler struct {
	RecordReview commands.RecordReviewUseCase
	Queries      queries.QueryUseCase
	Logger       *slog.Logger
}

func (h Handler) RecordReviewHandler(
	ctx context.Context,
	reviewerAuthID string,
	req httptransport.RecordReviewRequest,
) (httptransport.RecordReviewResponse, error) {
	item, err := h.RecordReview.Execute(ctx, commands.RecordReviewCommand{
		ApplicantID:    req.ApplicantID,
		ReviewerAuthID: reviewerAuthID,
		AverageScore:   req.AverageScore,
	})
	if err != nil {
		return httptransport.RecordReviewResponse{}, err
	}
	return httptransport.RecordReviewResponse{Review: mapReview(item)}, nil
}

func (h Handler) ListReviewsHandler(
	ctx context.Context,
	applicantID string,
) (httptransport.ListReviewsResponse, error) {
	items, err := h.Queries.ListForApplicant(ctx, applicantID)
	if err != nil {
		return httptransport.ListReviewsResponse{}, err
	}
	result := make([]httptransport.ReviewDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapReview(item))
	}
	return httptransport.ListReviewsResponse{Items: result, Total: int64(len(result))}, nil
}

func mapReview(item entities.Review) httptransport.ReviewDTO {
	return httptransport.ReviewDTO{
		ID:              item.ID,
		ApplicantID:     item.ApplicantID,
		CreatedByAuthID: item.CreatedByAuthID,
		AverageScore:    item.AverageScore,
		CreatedAt:       item.CreatedAt,
	}
}
