package models

import "time"

type Company struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Logo          string    `gorm:"size:512" json:"logo"`
	Description   string    `gorm:"type:text" json:"description"`
	Website       string    `gorm:"size:512" json:"website"`
	Location      string    `gorm:"size:255" json:"location"`
	Industry      string    `gorm:"size:100" json:"industry"`
	FoundedYear   int       `json:"founded_year"`
	EmployeeCount string    `gorm:"size:50" json:"employee_count"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
