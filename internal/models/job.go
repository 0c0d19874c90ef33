package models

import "time"

// Job is a posting owned by one company in one category. Views and
// ApplicationsCount are monotonic counters updated atomically in SQL.
type Job struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Title             string    `gorm:"size:255;not null" json:"title"`
	CompanyID         uint      `gorm:"index" json:"company_id"`
	CategoryID        uint      `gorm:"index" json:"category_id"`
	Location          string    `gorm:"size:255;not null" json:"location"`
	SalaryMin         *int      `json:"salary_min"`
	SalaryMax         *int      `json:"salary_max"`
	SalaryType        string    `gorm:"size:20;default:'monthly'" json:"salary_type"`
	JobType           string    `gorm:"size:20;default:'full-time'" json:"job_type"`
	ExperienceLevel   string    `gorm:"size:50" json:"experience_level"`
	Description       string    `gorm:"type:text;not null" json:"description"`
	Requirements      string    `gorm:"type:text" json:"requirements"`
	Benefits          string    `gorm:"type:text" json:"benefits"`
	IsActive          bool      `gorm:"default:true" json:"is_active"`
	IsFeatured        bool      `gorm:"default:false" json:"is_featured"`
	Views             int       `gorm:"default:0" json:"views"`
	ApplicationsCount int       `gorm:"default:0" json:"applications_count"`
	PostedDate        time.Time `gorm:"autoCreateTime" json:"posted_date"`
}
