package httptransport

import "time"

type SaveApplicantRequest struct {
	ID               string `json:"id,omitempty"`
	AuthID           string `json:"auth_id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Age              int    `json:"age,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Nationality      string `json:"nationality,omitempty"`
	Country          string `json:"country,omitempty"`
	City             string `json:"city,omitempty"`
	University       string `json:"university"`
	Degree           string `json:"degree"`
	StudyYear        string `json:"study_year,omitempty"`
	WorkArea         string `json:"work_area,omitempty"`
	Dietary          string `json:"dietary,omitempty"`
	TShirtSize       string `json:"tshirt_size,omitempty"`
	HearAboutUs      string `json:"hear_about_us,omitempty"`
	Skills           string `json:"skills,omitempty"`
	Motivation       string `json:"motivation,omitempty"`
	PastProjects     string `json:"past_projects,omitempty"`
	HardwareRequests string `json:"hardware_requests,omitempty"`
	HackathonCount   *int   `json:"hackathon_count,omitempty"`
	Status           *int   `json:"status,omitempty"`

	CVFileName string `json:"cv_file_name,omitempty"`
	CVData     []byte `json:"cv_data,omitempty"`
}

type ApplicantDTO struct {
	ID               string    `json:"id"`
	AuthID           string    `json:"auth_id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Age              int       `json:"age,omitempty"`
	Gender           string    `json:"gender,omitempty"`
	Nationality      string    `json:"nationality,omitempty"`
	Country          string    `json:"country,omitempty"`
	City             string    `json:"city,omitempty"`
	University       string    `json:"university"`
	Degree           string    `json:"degree"`
	StudyYear        string    `json:"study_year,omitempty"`
	WorkArea         string    `json:"work_area,omitempty"`
	Dietary          string    `json:"dietary,omitempty"`
	TShirtSize       string    `json:"tshirt_size,omitempty"`
	HearAboutUs      string    `json:"hear_about_us,omitempty"`
	Skills           string    `json:"skills,omitempty"`
	Motivation       string    `json:"motivation,omitempty"`
	PastProjects     string    `json:"past_projects,omitempty"`
	HardwareRequests string    `json:"hardware_requests,omitempty"`
	HackathonCount   *int      `json:"hackathon_count,omitempty"`
	CVKey            string    `json:"cv_key,omitempty"`
	Status           int       `json:"status"`
	StatusLabel      string    `json:"status_label"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type SaveApplicantResponse struct {
	Applicant ApplicantDTO `json:"applicant"`
}

type GetApplicantResponse struct {
	Applicant ApplicantDTO `json:"applicant"`
}

type ListApplicantsResponse struct {
	Items []ApplicantDTO `json:"items"`
	Total int64          `json:"total"`
}

type CheckinResponse struct {
	Applicant ApplicantDTO `json:"applicant"`
}

type ReviewBatchResponse struct {
	Items []ApplicantDTO `json:"items"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
