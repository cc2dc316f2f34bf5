package errors

import "errors"

var (
	ErrReviewNotFound     = errors.New("review not found")
	ErrInvalidReviewInput = errors.New("invalid review input")
	ErrDuplicateReview    = errors.New("reviewer already scored this applicant")
	ErrReviewLimitReached = errors.New("applicant already holds the maximum number of reviews")
)
