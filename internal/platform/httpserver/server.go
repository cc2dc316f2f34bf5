package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	applicantservice "meridian/contexts/admission/applicant-service"
	applicanterrors "meridian/contexts/admission/applicant-service/domain/errors"
	applicanthttp "meridian/contexts/admission/applicant-service/transport/http"
	reviewservice "meridian/contexts/admission/review-service"
	reviewerrors "meridian/contexts/admission/review-service/domain/errors"
	reviewhttp "meridian/contexts/admission/review-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "meridian/internal/platform/httpserver/docs"
)

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	applicants applicantservice.Module
	reviews    reviewservice.Module
}

func New(
	applicants applicantservice.Module,
	reviews reviewservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		applicants: applicants,
		reviews:    reviews,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/admission/v1/applicants", s.handleSaveApplicant)
	s.mux.HandleFunc("GET /api/admission/v1/applicants", s.handleListApplicants)
	s.mux.HandleFunc("GET /api/admission/v1/applicants/{applicant_id}", s.handleGetApplicant)
	s.mux.HandleFunc("DELETE /api/admission/v1/applicants/{applicant_id}", s.handleWithdrawApplicant)
	s.mux.HandleFunc("POST /api/admission/v1/checkin/{auth_id}", s.handleCheckinApplicant)

	s.mux.HandleFunc("GET /api/admission/v1/review/next", s.handleReviewBatch)
	s.mux.HandleFunc("POST /api/admission/v1/reviews", s.handleRecordReview)
	s.mux.HandleFunc("GET /api/admission/v1/applicants/{applicant_id}/reviews", s.handleListReviews)
}

func writeApplicantDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, applicanterrors.ErrApplicantNotFound):
		writeApplicantError(w, http.StatusNotFound, "applicant_not_found", err.Error())
	case errors.Is(err, applicanterrors.ErrInvalidApplicantInput):
		writeApplicantError(w, http.StatusBadRequest, "invalid_applicant_input", err.Error())
	case errors.Is(err, applicanterrors.ErrDuplicateApplicant):
		writeApplicantError(w, http.StatusConflict, "duplicate_applicant", err.Error())
	case errors.Is(err, applicanterrors.ErrWithdrawNotAllowed):
		writeApplicantError(w, http.StatusConflict, "withdraw_not_allowed", err.Error())
	case errors.Is(err, applicanterrors.ErrCheckinNotAllowed):
		writeApplicantError(w, http.StatusConflict, "checkin_not_allowed", err.Error())
	case errors.Is(err, applicanterrors.ErrObjectStorageFailure):
		writeApplicantError(w, http.StatusBadGateway, "cv_storage_failure", "cv upload failed")
	default:
		writeApplicantError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeReviewDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reviewerrors.ErrReviewNotFound):
		writeReviewError(w, http.StatusNotFound, "review_not_found", err.Error())
	case errors.Is(err, reviewerrors.ErrInvalidReviewInput):
		writeReviewError(w, http.StatusBadRequest, "invalid_review_input", err.Error())
	case errors.Is(err, reviewerrors.ErrDuplicateReview):
		writeReviewError(w, http.StatusConflict, "duplicate_review", err.Error())
	case errors.Is(err, reviewerrors.ErrReviewLimitReached):
		writeReviewError(w, http.StatusConflict, "review_limit_reached", err.Error())
	default:
		writeReviewError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeApplicantError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, applicanthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeReviewError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, reviewhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
