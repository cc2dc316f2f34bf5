package httptransport

import "time"

type RecordReviewRequest struct {
	ApplicantID  string  `json:"applicant_id"`
	AverageScore float64 `json:"average_score"`
}

type ReviewDTO struct {
	ID              string    `json:"id"`
	ApplicantID     string    `json:"applicant_id"`
	CreatedByAuthID string    `json:"created_by_auth_id"`
	AverageScore    float64   `json:"average_score"`
	CreatedAt       time.Time `json:"created_at"`
}

type RecordReviewResponse struct {
	Review ReviewDTO `json:"review"`
}

type ListReviewsResponse struct {
	Items []ReviewDTO `json:"items"`
	Total int64       `json:"total"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
