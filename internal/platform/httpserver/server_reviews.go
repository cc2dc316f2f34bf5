package httpserver

import (
	"encoding/json"
	"net/http"

	reviewhttp "meridian/contexts/admission/review-service/transport/http"
)

func (s *Server) handleRecordReview(w http.ResponseWriter, r *http.Request) {
	reviewerID := r.Header.Get("X-User-Id")
	if reviewerID == "" {
		writeReviewError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req reviewhttp.RecordReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReviewError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.reviews.Handler.RecordReviewHandler(r.Context(), reviewerID, req)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	applicantID := r.PathValue("applicant_id")
	resp, err := s.reviews.Handler.ListReviewsHandler(r.Context(), applicantID)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
