package commands

import (
	"context"
	"log/slog"
	"strings"

	application "meridian/contexts/admission/applicant-service/application"
	"meridian/contexts/admission/applicant-service/domain/entities"
	domainerrors "meridian/contexts/admission/applicant-service/domain/errors"
	"meridian/contexts/admission/applicant-service/ports"
)

type CheckinApplicantCommand struct {
	AuthID string
}

type CheckinApplicantUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

// Execute transitions Confirmed to Admitted. Any other current status is
// rejected and nothing is written.
func (uc CheckinApplicantUseCase) Execute(ctx context.Context, cmd CheckinApplicantCommand) (entities.Applicant, error) {
	logger := application.ResolveLogger(uc.Logger)

	applicant, err := uc.Repository.GetApplicantByAuthID(ctx, strings.TrimSpace(cmd.AuthID))
	if err != nil {
		return entities.Applicant{}, err
	}
	if applicant.Status != entities.StatusConfirmed {
		return entities.Applicant{}, domainerrors.ErrCheckinNotAllowed
	}

	applicant.Status = entities.StatusAdmitted
	applicant.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Repository.UpdateApplicant(ctx, applicant); err != nil {
		return entities.Applicant{}, err
	}

	logger.Info("applicant checked in",
		"event", "applicant_checked_in",
		"module", "admission/applicant-service",
		"layer", "application",
		"applicant_id", applicant.ID,
	)
	return applicant, nil
}
