package models

import "time"

// JobCategory is reference data seeded at first startup.
type JobCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"size:100" json:"icon"`
	Color       string    `gorm:"size:20" json:"color"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (JobCategory) TableName() string {
	return "job_categories"
}
