package errors

import "errors"

var (
	ErrApplicantNotFound     = errors.New("applicant not found")
	ErrInvalidApplicantInput = errors.New("invalid applicant input")
	ErrDuplicateApplicant    = errors.New("an application already exists for this identity")
	ErrWithdrawNotAllowed    = errors.New("applicant can no longer be withdrawn")
	ErrCheckinNotAllowed     = errors.New("only confirmed applicants can be checked in")
	ErrObjectStorageFailure  = errors.New("cv object storage operation failed")
)
