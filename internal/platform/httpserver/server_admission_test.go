package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	applicantservice "meridian/contexts/admission/applicant-service"
	applicantentities "meridian/contexts/admission/applicant-service/domain/entities"
	applicanthttp "meridian/contexts/admission/applicant-service/transport/http"
	reviewservice "meridian/contexts/admission/review-service"
	reviewhttp "meridian/contexts/admission/review-service/transport/http"
)

func newTestServer(t *testing.T, seed []applicantentities.Applicant) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reviews := reviewservice.NewInMemoryModule(nil, logger)
	applicants, _ := applicantservice.NewInMemoryModule(seed, reviews.Store, 5, logger)
	return New(applicants, reviews, logger, ":0")
}

func doJSON(t *testing.T, handler http.Handler, method string, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func seedApplicant(id string, status applicantentities.ApplicationStatus) applicantentities.Applicant {
	return applicantentities.Applicant{
		ID:         id,
		AuthID:     "auth-" + id,
		FullName:   "Dana Vel",
		Email:      "dana@example.com",
		University: "TU Riga",
		Degree:     "CS",
		Status:     status,
		CreatedAt:  time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndFetchApplicant(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/admission/v1/applicants", applicanthttp.SaveApplicantRequest{
		AuthID:     "auth-1",
		FullName:   "Dana Vel",
		Email:      "dana@example.com",
		University: "TU Riga",
		Degree:     "CS",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("save: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var saved applicanthttp.SaveApplicantResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if saved.Applicant.ID == "" || saved.Applicant.StatusLabel != "applied" {
		t.Fatalf("expected new applicant in applied state, got %+v", saved.Applicant)
	}

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/api/admission/v1/applicants/"+saved.Applicant.ID, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
}

func TestSaveApplicantRejectsInvalidInput(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/admission/v1/applicants", applicanthttp.SaveApplicantRequest{
		AuthID: "auth-1",
		Email:  "not-an-email",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestCheckinRejectsNonConfirmed(t *testing.T) {
	srv := newTestServer(t, []applicantentities.Applicant{
		seedApplicant("app-1", applicantentities.StatusApplied),
	})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/admission/v1/checkin/auth-app-1", nil, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", rec.Code, rec.Body.String())
	}

	var errResp applicanthttp.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "checkin_not_allowed" {
		t.Fatalf("expected checkin_not_allowed, got %q", errResp.Code)
	}
}

func TestCheckinAdmitsConfirmed(t *testing.T) {
	srv := newTestServer(t, []applicantentities.Applicant{
		seedApplicant("app-1", applicantentities.StatusConfirmed),
	})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/admission/v1/checkin/auth-app-1", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp applicanthttp.CheckinResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode checkin response: %v", err)
	}
	if resp.Applicant.StatusLabel != "admitted" {
		t.Fatalf("expected admitted, got %q", resp.Applicant.StatusLabel)
	}
}

func TestReviewBatchRequiresIdentity(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/admission/v1/review/next", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRecordReviewDuplicateConflict(t *testing.T) {
	srv := newTestServer(t, []applicantentities.Applicant{
		seedApplicant("app-1", applicantentities.StatusApplied),
	})
	headers := map[string]string{"X-User-Id": "rev-a"}
	body := reviewhttp.RecordReviewRequest{ApplicantID: "app-1", AverageScore: 7.5}

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/admission/v1/reviews", body, headers)
	if rec.Code != http.StatusOK {
		t.Fatalf("first review: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv.Handler(), http.MethodPost, "/api/admission/v1/reviews", body, headers)
	if rec.Code != http.StatusConflict {
		t.Fatalf("second review: expected 409, got %d", rec.Code)
	}

	var errResp reviewhttp.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "duplicate_review" {
		t.Fatalf("expected duplicate_review, got %q", errResp.Code)
	}
}

// Two committed reviews take the applicant out of circulation: further batch
// requests no longer return them, and a third review is refused.
func TestReviewCapRemovesApplicantFromRotation(t *testing.T) {
	srv := newTestServer(t, []applicantentities.Applicant{
		seedApplicant("app-1", applicantentities.StatusApplied),
	})
	body := reviewhttp.RecordReviewRequest{ApplicantID: "app-1", AverageScore: 6}

	for _, reviewer := range []string{"rev-a", "rev-b"} {
		rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/admission/v1/reviews", body, map[string]string{"X-User-Id": reviewer})
		if rec.Code != http.StatusOK {
			t.Fatalf("review by %s: expected 200, got %d (%s)", reviewer, rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/admission/v1/review/next", nil, map[string]string{"X-User-Id": "rev-c"})
	if rec.Code != http.StatusOK {
		t.Fatalf("batch: expected 200, got %d", rec.Code)
	}
	var batch applicanthttp.ReviewBatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &batch); err != nil {
		t.Fatalf("decode batch: %v", err)
	}
	if len(batch.Items) != 0 {
		t.Fatalf("capped applicant must leave the rotation, got %v", batch.Items)
	}

	rec = doJSON(t, srv.Handler(), http.MethodPost, "/api/admission/v1/reviews", body, map[string]string{"X-User-Id": "rev-c"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("third review: expected 409, got %d", rec.Code)
	}
}

func TestWithdrawAppliedApplicant(t *testing.T) {
	srv := newTestServer(t, []applicantentities.Applicant{
		seedApplicant("app-1", applicantentities.StatusApplied),
	})

	rec := doJSON(t, srv.Handler(), http.MethodDelete, "/api/admission/v1/applicants/app-1", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("withdraw: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/api/admission/v1/applicants/app-1", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after withdrawal, got %d", rec.Code)
	}
}

func TestWithdrawRejectedPastApplied(t *testing.T) {
	srv := newTestServer(t, []applicantentities.Applicant{
		seedApplicant("app-1", applicantentities.StatusInvited),
	})

	rec := doJSON(t, srv.Handler(), http.MethodDelete, "/api/admission/v1/applicants/app-1", nil, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestListApplicantsRejectsBadStatus(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/admission/v1/applicants?status=soon", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
