package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ApplicationStatus is persisted as its numeric value. The ordering is load
// bearing: lifecycle rules compare against StatusApplied with <=, and Admitted
// must sort above every terminal-failure status.
type ApplicationStatus int

const (
	StatusApplied ApplicationStatus = iota
	StatusInvited
	StatusConfirmed
	StatusCancelled
	StatusRejected
	StatusAdmitted
)

func (s ApplicationStatus) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusInvited:
		return "invited"
	case StatusConfirmed:
		return "confirmed"
	case StatusCancelled:
		return "cancelled"
	case StatusRejected:
		return "rejected"
	case StatusAdmitted:
		return "admitted"
	default:
		return "unknown"
	}
}

func (s ApplicationStatus) Valid() bool {
	return s >= StatusApplied && s <= StatusAdmitted
}

// Terminal reports whether the status admits no further transitions.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusRejected || s == StatusAdmitted
}

type TShirtSize string

const (
	SizeS   TShirtSize = "S"
	SizeM   TShirtSize = "M"
	SizeL   TShirtSize = "L"
	SizeXL  TShirtSize = "XL"
	SizeXXL TShirtSize = "XXL"
)

type Gender string

const (
	GenderFemale    Gender = "female"
	GenderMale      Gender = "male"
	GenderNonBinary Gender = "non-binary"
	GenderOther     Gender = "other"
	GenderUndefined Gender = "prefer not to say"
)

// Applicant is one person's hackathon application. AuthID references the
// external identity service and identifies at most one stored applicant.
type Applicant struct {
	ID               string
	AuthID           string
	FullName         string
	Email            string
	Age              int
	Gender           Gender
	Nationality      string
	Country          string
	City             string
	University       string
	Degree           string
	StudyYear        string
	WorkArea         string
	Dietary          string
	TShirtSize       TShirtSize
	HearAboutUs      string
	Skills           string
	Motivation       string
	PastProjects     string
	HardwareRequests string
	HackathonCount   *int
	CVKey            string
	Status           ApplicationStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks field shape only. Transition legality is the caller's
// responsibility.
func (a Applicant) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.AuthID, validation.Required),
		validation.Field(&a.FullName, validation.Required),
		validation.Field(&a.Email, validation.Required, is.EmailFormat),
		validation.Field(&a.Age, validation.Min(0)),
		validation.Field(&a.Gender, validation.In(
			GenderFemale, GenderMale, GenderNonBinary, GenderOther, GenderUndefined,
		)),
		validation.Field(&a.University, validation.Required),
		validation.Field(&a.Degree, validation.Required),
		validation.Field(&a.TShirtSize, validation.In(SizeS, SizeM, SizeL, SizeXL, SizeXXL)),
		validation.Field(&a.HackathonCount, validation.Min(0)),
		validation.Field(&a.Status, validation.By(validStatus)),
	)
}

func validStatus(value interface{}) error {
	status, ok := value.(ApplicationStatus)
	if !ok || !status.Valid() {
		return validation.NewError("validation_status", "must be a known application status")
	}
	return nil
}
