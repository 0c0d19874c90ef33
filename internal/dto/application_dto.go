package dto

// LeadRequest is the public application form: no session, no target job.
type LeadRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Location string `json:"location"`
	Message  string `json:"message"`
}

type ApplyRequest struct {
	JobID           *uint  `json:"job_id"`
	ExperienceYears *int   `json:"experience_years"`
	ExpectedSalary  *int   `json:"expected_salary"`
	CoverLetter     string `json:"cover_letter"`
}

type SaveJobRequest struct {
	JobID *uint `json:"job_id"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
