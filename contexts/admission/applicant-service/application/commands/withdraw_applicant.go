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

type WithdrawApplicantCommand struct {
	ApplicantID string
}

type WithdrawApplicantUseCase struct {
	Repository ports.Repository
	Storage    ports.ObjectStorage
	Logger     *slog.Logger
}

// Execute removes an application that has not progressed past Applied. The CV
// blob delete is best effort: an orphan blob is acceptable, a failed record
// delete is not.
func (uc WithdrawApplicantUseCase) Execute(ctx context.Context, cmd WithdrawApplicantCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	id := strings.TrimSpace(cmd.ApplicantID)

	applicant, err := uc.Repository.GetApplicant(ctx, id)
	if err != nil {
		return err
	}
	if applicant.Status > entities.StatusApplied {
		return domainerrors.ErrWithdrawNotAllowed
	}

	if applicant.CVKey != "" {
		if err := uc.Storage.Delete(ctx, applicant.CVKey); err != nil {
			logger.Warn("cv blob cleanup failed",
				"event", "cv_cleanup_failed",
				"module", "admission/applicant-service",
				"layer", "application",
				"applicant_id", applicant.ID,
				"cv_key", applicant.CVKey,
				"error", err.Error(),
			)
		}
	}

	if err := uc.Repository.DeleteApplicant(ctx, id); err != nil {
		return err
	}

	logger.Info("applicant withdrawn",
		"event", "applicant_withdrawn",
		"module", "admission/applicant-service",
		"layer", "application",
		"applicant_id", applicant.ID,
	)
	return nil
}
