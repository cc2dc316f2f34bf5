package postgresadapter

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"meridian/contexts/admission/applicant-service/domain/entities"
	domainerrors "meridian/contexts/admission/applicant-service/domain/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return NewRepository(db, 2, nil), mock
}

func TestCreateApplicantRejectsExistingIdentity(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "applicants" WHERE auth_id = $1`)).
		WithArgs("auth-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.CreateApplicant(context.Background(), entities.Applicant{
		ID:     "app-1",
		AuthID: "auth-1",
	})
	if !errors.Is(err, domainerrors.ErrDuplicateApplicant) {
		t.Fatalf("expected duplicate applicant, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetApplicantMapsMissingRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "applicants" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetApplicant(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrApplicantNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestNextForReviewerQueryShape(t *testing.T) {
	repo, mock := newMockRepository(t)

	created := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "auth_id", "application_status", "created_at"}).
		AddRow("app-1", "auth-1", 0, created).
		AddRow("app-2", "auth-2", 0, created.Add(time.Hour))

	// Both exclusions run as NOT IN subqueries over reviews, oldest first.
	mock.ExpectQuery(`SELECT \* FROM "applicants" WHERE application_status = .+ NOT IN .+"reviews".+ NOT IN .+"reviews".+ ORDER BY created_at ASC`).
		WillReturnRows(rows)

	items, err := repo.NextForReviewer(context.Background(), "rev-1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].ID != "app-1" {
		t.Fatalf("expected mapped batch, got %v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteApplicantMissingRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "applicants" WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.DeleteApplicant(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrApplicantNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
