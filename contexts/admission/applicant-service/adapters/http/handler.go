package httpadapter

import (
	"context"
	"log/slog"

	"meridian/contexts/admission/applicant-service/application/commands"
	"meridian/contexts/admission/applicant-service/application/queries"
	"meridian/contexts/admission/applicant-service/domain/entities"
	httptransport "meridian/contexts/admission/applicant-service/transport/http"
)

type Handler struct {
	SaveApplicant     commands.SaveApplicantUseCase
	WithdrawApplicant commands.WithdrawApplicantUseCase
	CheckinApplicant  commands.CheckinApplicantUseCase
	Assignment        queries.AssignmentUseCase
	Queries           queries.QueryUseCase
	Logger            *slog.Logger
}

func (h Handler) SaveApplicantHandler(
	ctx context.Context,
	req httptransport.SaveApplicantRequest,
) (httptransport.SaveApplicantResponse, error) {
	cmd := commands.SaveApplicantCommand{
		ID:               req.ID,
		AuthID:           req.AuthID,
		FullName:         req.FullName,
		Email:            req.Email,
		Age:              req.Age,
		Gender:           entities.Gender(req.Gender),
		Nationality:      req.Nationality,
		Country:          req.Country,
		City:             req.City,
		University:       req.University,
		Degree:           req.Degree,
		StudyYear:        req.StudyYear,
		WorkArea:         req.WorkArea,
		Dietary:          req.Dietary,
		TShirtSize:       entities.TShirtSize(req.TShirtSize),
		HearAboutUs:      req.HearAboutUs,
		Skills:           req.Skills,
		Motivation:       req.Motivation,
		PastProjects:     req.PastProjects,
		HardwareRequests: req.HardwareRequests,
		HackathonCount:   req.HackathonCount,
		CVFileName:       req.CVFileName,
		CVData:           req.CVData,
	}
	if req.Status != nil {
		status := entities.ApplicationStatus(*req.Status)
		cmd.Status = &status
	}

	item, err := h.SaveApplicant.Execute(ctx, cmd)
	if err != nil {
		return httptransport.SaveApplicantResponse{}, err
	}
	return httptransport.SaveApplicantResponse{Applicant: mapApplicant(item)}, nil
}

func (h Handler) GetApplicantHandler(ctx context.Context, id string) (httptransport.GetApplicantResponse, error) {
	item, err := h.Queries.GetApplicant(ctx, id)
	if err != nil {
		return httptransport.GetApplicantResponse{}, err
	}
	return httptransport.GetApplicantResponse{Applicant: mapApplicant(item)}, nil
}

func (h Handler) ListApplicantsHandler(
	ctx context.Context,
	query queries.ListApplicantsQuery,
) (httptransport.ListApplicantsResponse, error) {
	items, total, err := h.Queries.ListApplicants(ctx, query)
	if err != nil {
		return httptransport.ListApplicantsResponse{}, err
	}
	result := make([]httptransport.ApplicantDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapApplicant(item))
	}
	return httptransport.ListApplicantsResponse{Items: result, Total: total}, nil
}

func (h Handler) WithdrawApplicantHandler(ctx context.Context, id string) error {
	return h.WithdrawApplicant.Execute(ctx, commands.WithdrawApplicantCommand{ApplicantID: id})
}

func (h Handler) CheckinApplicantHandler(ctx context.Context, authID string) (httptransport.CheckinResponse, error) {
	item, err := h.CheckinApplicant.Execute(ctx, commands.CheckinApplicantCommand{AuthID: authID})
	if err != nil {
		return httptransport.CheckinResponse{}, err
	}
	return httptransport.CheckinResponse{Applicant: mapApplicant(item)}, nil
}

func (h Handler) ReviewBatchHandler(
	ctx context.Context,
	reviewerAuthID string,
	limit int,
) httptransport.ReviewBatchResponse {
	items := h.Assignment.NextForReviewer(ctx, reviewerAuthID, limit)
	result := make([]httptransport.ApplicantDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapApplicant(item))
	}
	return httptransport.ReviewBatchResponse{Items: result}
}

func mapApplicant(item entities.Applicant) httptransport.ApplicantDTO {
	return httptransport.ApplicantDTO{
		ID:               item.ID,
		AuthID:           item.AuthID,
		FullName:         item.FullName,
		Email:            item.Email,
		Age:              item.Age,
		Gender:           string(item.Gender),
		Nationality:      item.Nationality,
		Country:          item.Country,
		City:             item.City,
		University:       item.University,
		Degree:           item.Degree,
		StudyYear:        item.StudyYear,
		WorkArea:         item.WorkArea,
		Dietary:          item.Dietary,
		TShirtSize:       string(item.TShirtSize),
		HearAboutUs:      item.HearAboutUs,
		Skills:           item.Skills,
		Motivation:       item.Motivation,
		PastProjects:     item.PastProjects,
		HardwareRequests: item.HardwareRequests,
		HackathonCount:   item.HackathonCount,
		CVKey:            item.CVKey,
		Status:           int(item.Status),
		StatusLabel:      item.Status.String(),
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}
