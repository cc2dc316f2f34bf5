package queries

import (
	"context"
	"log/slog"
	"strings"

	"meridian/contexts/admission/applicant-service/domain/entities"
	"meridian/contexts/admission/applicant-service/ports"
)

type ListApplicantsQuery struct {
	Status     *entities.ApplicationStatus
	University string
	Country    string
	OrderBy    string
	Descending bool
	Limit      int
	Offset     int
}

type QueryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc QueryUseCase) GetApplicant(ctx context.Context, id string) (entities.Applicant, error) {
	return uc.Repository.GetApplicant(ctx, strings.TrimSpace(id))
}

func (uc QueryUseCase) GetApplicantByAuthID(ctx context.Context, authID string) (entities.Applicant, error) {
	return uc.Repository.GetApplicantByAuthID(ctx, strings.TrimSpace(authID))
}

func (uc QueryUseCase) ListApplicants(ctx context.Context, query ListApplicantsQuery) ([]entities.Applicant, int64, error) {
	filter := ports.ApplicantFilter{
		Status:     query.Status,
		University: strings.TrimSpace(query.University),
		Country:    strings.TrimSpace(query.Country),
	}
	opts := ports.ListOptions{
		OrderBy:    strings.TrimSpace(query.OrderBy),
		Descending: query.Descending,
		Limit:      query.Limit,
		Offset:     query.Offset,
	}
	return uc.Repository.ListApplicants(ctx, filter, opts)
}
