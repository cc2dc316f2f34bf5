package commands

import (
	"context"
	"errors"
	"testing"

	"meridian/contexts/admission/applicant-service/domain/entities"
	domainerrors "meridian/contexts/admission/applicant-service/domain/errors"
)

type deletingRepo struct {
	fakeRepo
	deleted []string
}

func (r *deletingRepo) DeleteApplicant(_ context.Context, id string) error {
	if _, ok := r.applicants[id]; !ok {
		return domainerrors.ErrApplicantNotFound
	}
	r.deleted = append(r.deleted, id)
	delete(r.applicants, id)
	return nil
}

func TestWithdrawDeletesAppliedApplicantAndBlob(t *testing.T) {
	repo := &deletingRepo{fakeRepo: fakeRepo{applicants: map[string]entities.Applicant{
		"app-1": {ID: "app-1", Status: entities.StatusApplied, CVKey: "ada-cv.pdf"},
	}}}
	storage := &fakeStorage{}
	uc := WithdrawApplicantUseCase{Repository: repo, Storage: storage}

	if err := uc.Execute(context.Background(), WithdrawApplicantCommand{ApplicantID: "app-1"}); err != nil {
		t.Fatalf("expected withdraw to succeed, got %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected record deleted")
	}
	if len(storage.deletes) != 1 || storage.deletes[0] != "ada-cv.pdf" {
		t.Fatalf("expected cv blob delete, got %v", storage.deletes)
	}
}

func TestWithdrawSwallowsBlobCleanupFailure(t *testing.T) {
	repo := &deletingRepo{fakeRepo: fakeRepo{applicants: map[string]entities.Applicant{
		"app-1": {ID: "app-1", Status: entities.StatusApplied, CVKey: "ada-cv.pdf"},
	}}}
	storage := &fakeStorage{deleteErr: errors.New("bucket unavailable")}
	uc := WithdrawApplicantUseCase{Repository: repo, Storage: storage}

	if err := uc.Execute(context.Background(), WithdrawApplicantCommand{ApplicantID: "app-1"}); err != nil {
		t.Fatalf("expected withdraw to succeed despite blob failure, got %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected record deleted even when blob cleanup fails")
	}
}

func TestWithdrawRejectedPastApplied(t *testing.T) {
	for _, status := range []entities.ApplicationStatus{
		entities.StatusInvited,
		entities.StatusConfirmed,
		entities.StatusAdmitted,
	} {
		repo := &deletingRepo{fakeRepo: fakeRepo{applicants: map[string]entities.Applicant{
			"app-1": {ID: "app-1", Status: status},
		}}}
		storage := &fakeStorage{}
		uc := WithdrawApplicantUseCase{Repository: repo, Storage: storage}

		err := uc.Execute(context.Background(), WithdrawApplicantCommand{ApplicantID: "app-1"})
		if !errors.Is(err, domainerrors.ErrWithdrawNotAllowed) {
			t.Fatalf("status %v: expected withdraw rejection, got %v", status, err)
		}
		if len(repo.deleted) != 0 || len(storage.deletes) != 0 {
			t.Fatalf("status %v: expected no deletes on rejected withdraw", status)
		}
	}
}

func TestWithdrawSkipsBlobDeleteWithoutCV(t *testing.T) {
	repo := &deletingRepo{fakeRepo: fakeRepo{applicants: map[string]entities.Applicant{
		"app-1": {ID: "app-1", Status: entities.StatusApplied},
	}}}
	storage := &fakeStorage{}
	uc := WithdrawApplicantUseCase{Repository: repo, Storage: storage}

	if err := uc.Execute(context.Background(), WithdrawApplicantCommand{ApplicantID: "app-1"}); err != nil {
		t.Fatalf("expected withdraw to succeed, got %v", err)
	}
	if len(storage.deletes) != 0 {
		t.Fatalf("expected no blob delete without a cv key")
	}
}
