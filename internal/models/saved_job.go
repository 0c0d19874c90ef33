package models

import "time"

// SavedJob pairs a user with a bookmarked job. The composite unique index
// makes a second save fail at the database even under concurrent requests.
type SavedJob struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_saved_jobs_user_job" json:"user_id"`
	JobID     uint      `gorm:"not null;uniqueIndex:idx_saved_jobs_user_job" json:"job_id"`
	SavedDate time.Time `gorm:"autoCreateTime" json:"saved_date"`
}
