package models

import "time"

// Application is either a job application from an authenticated user (JobID
// and UserID set) or a public lead (both nil). Mobile uniqueness is enforced
// only on the lead path inside a transaction; the apply path legitimately
// repeats a user's mobile across jobs, so there is no unique index on it.
type Application struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	JobID           *uint     `gorm:"index" json:"job_id"`
	UserID          *uint     `gorm:"index" json:"user_id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Email           string    `gorm:"size:255" json:"email"`
	Mobile          string    `gorm:"size:20;not null;index" json:"mobile"`
	Location        string    `gorm:"size:255;not null" json:"location"`
	ExperienceYears *int      `json:"experience_years"`
	ExpectedSalary  *int      `json:"expected_salary"`
	CoverLetter     string    `gorm:"type:text" json:"cover_letter"`
	ResumePath      string    `gorm:"size:512" json:"resume_path,omitempty"`
	Status          string    `gorm:"size:20;default:'pending'" json:"status"`
	AppliedDate     time.Time `gorm:"autoCreateTime" json:"applied_date"`
}
