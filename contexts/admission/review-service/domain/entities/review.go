package entities

import (
	"math"
	"strings"
	"time"
)

// Review is one reviewer's score for one applicant. The pair
// (ApplicantID, CreatedByAuthID) is unique; reviews are never updated.
type Review struct {
	ID              string
	ApplicantID     string
	CreatedByAuthID string
	AverageScore    float64
	CreatedAt       time.Time
}

// ValidateCreate checks field shape. The score is a weighted rubric average
// computed by the caller and stored verbatim; only negative and NaN values
// are rejected.
func (r Review) ValidateCreate() bool {
	return strings.TrimSpace(r.ApplicantID) != "" &&
		strings.TrimSpace(r.CreatedByAuthID) != "" &&
		!math.IsNaN(r.AverageScore) &&
		r.AverageScore >= 0
}
