package entities

import "testing"

func validApplicant() Applicant {
	return Applicant{
		ID:         "app-1",
		AuthID:     "auth-1",
		FullName:   "Dana Vel",
		Email:      "dana@example.com",
		University: "TU Riga",
		Degree:     "CS",
		Status:     StatusApplied,
	}
}

func TestValidateAcceptsMinimalApplicant(t *testing.T) {
	if err := validApplicant().Validate(); err != nil {
		t.Fatalf("expected valid applicant, got %v", err)
	}
}

func TestValidateRejectsBrokenFields(t *testing.T) {
	cases := map[string]func(*Applicant){
		"missing auth id":    func(a *Applicant) { a.AuthID = "" },
		"missing full name":  func(a *Applicant) { a.FullName = "" },
		"malformed email":    func(a *Applicant) { a.Email = "not-an-email" },
		"missing university": func(a *Applicant) { a.University = "" },
		"missing degree":     func(a *Applicant) { a.Degree = "" },
		"negative age":       func(a *Applicant) { a.Age = -1 },
		"unknown gender":     func(a *Applicant) { a.Gender = "robot" },
		"unknown shirt size": func(a *Applicant) { a.TShirtSize = "XS" },
		"unknown status":     func(a *Applicant) { a.Status = ApplicationStatus(42) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			applicant := validApplicant()
			mutate(&applicant)
			if err := applicant.Validate(); err == nil {
				t.Fatalf("expected validation failure")
			}
		})
	}
}

func TestStatusOrderingBacksLifecycleRules(t *testing.T) {
	if !(StatusApplied < StatusInvited && StatusInvited < StatusConfirmed) {
		t.Fatal("pre-decision statuses must order below decision statuses")
	}
	if StatusAdmitted <= StatusRejected {
		t.Fatal("admitted must sort above terminal-failure statuses")
	}
}

func TestStatusTerminal(t *testing.T) {
	terminal := map[ApplicationStatus]bool{
		StatusApplied:   false,
		StatusInvited:   false,
		StatusConfirmed: false,
		StatusCancelled: true,
		StatusRejected:  true,
		StatusAdmitted:  true,
	}
	for status, want := range terminal {
		if status.Terminal() != want {
			t.Fatalf("Terminal(%s) = %v, want %v", status, status.Terminal(), want)
		}
	}
}

func TestStatusLabels(t *testing.T) {
	if StatusApplied.String() != "applied" || StatusAdmitted.String() != "admitted" {
		t.Fatal("unexpected status labels")
	}
	if ApplicationStatus(42).String() != "unknown" {
		t.Fatal("out-of-range status must label as unknown")
	}
}
