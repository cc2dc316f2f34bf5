package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"meridian/contexts/admission/applicant-service/application/queries"
	"meridian/contexts/admission/applicant-service/domain/entities"
	applicanthttp "meridian/contexts/admission/applicant-service/transport/http"
)

func (s *Server) handleSaveApplicant(w http.ResponseWriter, r *http.Request) {
	var req applicanthttp.SaveApplicantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeApplicantError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if req.AuthID == "" {
		if fromHeader := r.Header.Get("X-User-Id"); fromHeader != "" {
			req.AuthID = fromHeader
		}
	}

	resp, err := s.applicants.Handler.SaveApplicantHandler(r.Context(), req)
	if err != nil {
		writeApplicantDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetApplicant(w http.ResponseWriter, r *http.Request) {
	applicantID := r.PathValue("applicant_id")
	resp, err := s.applicants.Handler.GetApplicantHandler(r.Context(), applicantID)
	if err != nil {
		writeApplicantDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query() // parses HTTP query parameters only
	listQuery := queries.ListApplicantsQuery{
		University: query.Get("university"),
		Country:    query.Get("country"),
		OrderBy:    query.Get("order_by"),
		Descending: query.Get("order") == "desc",
	}

	if statusRaw := query.Get("status"); statusRaw != "" {
		statusValue, err := strconv.Atoi(statusRaw)
		if err != nil {
			writeApplicantError(w, http.StatusBadRequest, "invalid_status", "status must be an integer")
			return
		}
		status := entities.ApplicationStatus(statusValue)
		listQuery.Status = &status
	}
	if limitRaw := query.Get("limit"); limitRaw != "" {
		limit, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeApplicantError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		listQuery.Limit = limit
	}
	if offsetRaw := query.Get("offset"); offsetRaw != "" {
		offset, err := strconv.Atoi(offsetRaw)
		if err != nil {
			writeApplicantError(w, http.StatusBadRequest, "invalid_offset", "offset must be an integer")
			return
		}
		listQuery.Offset = offset
	}

	resp, err := s.applicants.Handler.ListApplicantsHandler(r.Context(), listQuery)
	if err != nil {
		writeApplicantDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWithdrawApplicant(w http.ResponseWriter, r *http.Request) {
	applicantID := r.PathValue("applicant_id")
	if err := s.applicants.Handler.WithdrawApplicantHandler(r.Context(), applicantID); err != nil {
		writeApplicantDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "withdrawn"})
}

func (s *Server) handleCheckinApplicant(w http.ResponseWriter, r *http.Request) {
	authID := r.PathValue("auth_id")
	resp, err := s.applicants.Handler.CheckinApplicantHandler(r.Context(), authID)
	if err != nil {
		writeApplicantDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReviewBatch(w http.ResponseWriter, r *http.Request) {
	reviewerID := r.Header.Get("X-User-Id")
	if reviewerID == "" {
		writeApplicantError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	limit := 0
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeApplicantError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}

	resp := s.applicants.Handler.ReviewBatchHandler(r.Context(), reviewerID, limit)
	writeJSON(w, http.StatusOK, resp)
}
