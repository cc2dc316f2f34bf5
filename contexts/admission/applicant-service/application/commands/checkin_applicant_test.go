package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"meridian/contexts/admission/applicant-service/domain/entities"
	domainerrors "meridian/contexts/admission/applicant-service/domain/errors"
)

func TestCheckinAdmitsConfirmedApplicant(t *testing.T) {
	repo := &fakeRepo{applicants: map[string]entities.Applicant{
		"app-1": {ID: "app-1", AuthID: "auth-1", Status: entities.StatusConfirmed},
	}}
	now := time.Date(2026, time.April, 10, 9, 0, 0, 0, time.UTC)
	uc := CheckinApplicantUseCase{Repository: repo, Clock: fixedClock{now: now}}

	item, err := uc.Execute(context.Background(), CheckinApplicantCommand{AuthID: "auth-1"})
	if err != nil {
		t.Fatalf("expected checkin to succeed, got %v", err)
	}
	if item.Status != entities.StatusAdmitted {
		t.Fatalf("expected admitted, got %v", item.Status)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one update, got %d", len(repo.updated))
	}
}

func TestCheckinRejectsNonConfirmedStatuses(t *testing.T) {
	for _, status := range []entities.ApplicationStatus{
		entities.StatusApplied,
		entities.StatusInvited,
		entities.StatusCancelled,
		entities.StatusRejected,
		entities.StatusAdmitted,
	} {
		repo := &fakeRepo{applicants: map[string]entities.Applicant{
			"app-1": {ID: "app-1", AuthID: "auth-1", Status: status},
		}}
		uc := CheckinApplicantUseCase{Repository: repo, Clock: fixedClock{now: time.Now()}}

		_, err := uc.Execute(context.Background(), CheckinApplicantCommand{AuthID: "auth-1"})
		if !errors.Is(err, domainerrors.ErrCheckinNotAllowed) {
			t.Fatalf("status %v: expected checkin rejection, got %v", status, err)
		}
		if len(repo.updated) != 0 {
			t.Fatalf("status %v: expected no write on rejected checkin", status)
		}
	}
}

func TestCheckinUnknownIdentityFails(t *testing.T) {
	repo := &fakeRepo{applicants: map[string]entities.Applicant{}}
	uc := CheckinApplicantUseCase{Repository: repo, Clock: fixedClock{now: time.Now()}}

	_, err := uc.Execute(context.Background(), CheckinApplicantCommand{AuthID: "ghost"})
	if !errors.Is(err, domainerrors.ErrApplicantNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
