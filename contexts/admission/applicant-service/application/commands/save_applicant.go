package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "meridian/contexts/admission/applicant-service/application"
	"meridian/contexts/admission/applicant-service/domain/entities"
	domainerrors "meridian/contexts/admission/applicant-service/domain/errors"
	"meridian/contexts/admission/applicant-service/ports"
)

type SaveApplicantCommand struct {
	ID               string
	AuthID           string
	FullName         string
	Email            string
	Age              int
	Gender           entities.Gender
	Nationality      string
	Country          string
	City             string
	University       string
	Degree           string
	StudyYear        string
	WorkArea         string
	Dietary          string
	TShirtSize       entities.TShirtSize
	HearAboutUs      string
	Skills           string
	Motivation       string
	PastProjects     string
	HardwareRequests string
	HackathonCount   *int
	Status           *entities.ApplicationStatus

	// CVFileName plus CVData trigger an object-storage upload before the
	// record is persisted. An empty CVData leaves any stored CV untouched.
	CVFileName string
	CVData     []byte
}

type SaveApplicantUseCase struct {
	Repository ports.Repository
	Storage    ports.ObjectStorage
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc SaveApplicantUseCase) Execute(ctx context.Context, cmd SaveApplicantCommand) (entities.Applicant, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	applicant, inserting, err := uc.resolveTarget(ctx, cmd, now)
	if err != nil {
		return entities.Applicant{}, err
	}
	applyFields(&applicant, cmd)
	applicant.UpdatedAt = now

	if err := applicant.Validate(); err != nil {
		return entities.Applicant{}, fmt.Errorf("%w: %s", domainerrors.ErrInvalidApplicantInput, err)
	}

	// Upload must precede the record write so a stored applicant never
	// references a blob that does not exist.
	if len(cmd.CVData) > 0 {
		key := cvObjectKey(applicant.FullName, applicant.Email, cmd.CVFileName)
		if err := uc.Storage.Upload(ctx, key, cmd.CVData); err != nil {
			return entities.Applicant{}, fmt.Errorf("%w: %s", domainerrors.ErrObjectStorageFailure, err)
		}
		applicant.CVKey = key
	}

	if inserting {
		err = uc.Repository.CreateApplicant(ctx, applicant)
	} else {
		err = uc.Repository.UpdateApplicant(ctx, applicant)
	}
	if err != nil {
		return entities.Applicant{}, err
	}

	logger.Info("applicant saved",
		"event", "applicant_saved",
		"module", "admission/applicant-service",
		"layer", "application",
		"applicant_id", applicant.ID,
		"status", applicant.Status.String(),
		"inserted", inserting,
	)
	return applicant, nil
}

func (uc SaveApplicantUseCase) resolveTarget(
	ctx context.Context,
	cmd SaveApplicantCommand,
	now time.Time,
) (entities.Applicant, bool, error) {
	if strings.TrimSpace(cmd.ID) != "" {
		existing, err := uc.Repository.GetApplicant(ctx, strings.TrimSpace(cmd.ID))
		if err != nil {
			return entities.Applicant{}, false, err
		}
		return existing, false, nil
	}

	id, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Applicant{}, false, err
	}
	return entities.Applicant{
		ID:        id,
		Status:    entities.StatusApplied,
		CreatedAt: now,
	}, true, nil
}

func applyFields(applicant *entities.Applicant, cmd SaveApplicantCommand) {
	applicant.AuthID = strings.TrimSpace(cmd.AuthID)
	applicant.FullName = strings.TrimSpace(cmd.FullName)
	applicant.Email = strings.TrimSpace(cmd.Email)
	applicant.Age = cmd.Age
	applicant.Gender = cmd.Gender
	applicant.Nationality = strings.TrimSpace(cmd.Nationality)
	applicant.Country = strings.TrimSpace(cmd.Country)
	applicant.City = strings.TrimSpace(cmd.City)
	applicant.University = strings.TrimSpace(cmd.University)
	applicant.Degree = strings.TrimSpace(cmd.Degree)
	applicant.StudyYear = strings.TrimSpace(cmd.StudyYear)
	applicant.WorkArea = strings.TrimSpace(cmd.WorkArea)
	applicant.Dietary = strings.TrimSpace(cmd.Dietary)
	applicant.TShirtSize = cmd.TShirtSize
	applicant.HearAboutUs = strings.TrimSpace(cmd.HearAboutUs)
	applicant.Skills = strings.TrimSpace(cmd.Skills)
	applicant.Motivation = strings.TrimSpace(cmd.Motivation)
	applicant.PastProjects = strings.TrimSpace(cmd.PastProjects)
	applicant.HardwareRequests = strings.TrimSpace(cmd.HardwareRequests)
	applicant.HackathonCount = cmd.HackathonCount
	if cmd.Status != nil {
		applicant.Status = *cmd.Status
	}
}

// cvObjectKey builds the storage key from the applicant identity plus the
// sanitized original filename, matching what organisers expect to see when
// browsing the bucket.
func cvObjectKey(fullName string, email string, fileName string) string {
	return fmt.Sprintf("%s-%s-%s",
		sanitizeKeyPart(fullName),
		sanitizeKeyPart(email),
		sanitizeKeyPart(fileName),
	)
}

func sanitizeKeyPart(part string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(part) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_', r == '@':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
