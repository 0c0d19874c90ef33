package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jobsetu/jobsetu-backend/internal/auth"
	"github.com/jobsetu/jobsetu-backend/internal/dto"
	"github.com/jobsetu/jobsetu-backend/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// SubmitLead records a public application with no job or user attached.
// Mobile numbers are globally unique across applications on this path; the
// check and the insert run in one transaction so concurrent identical
// submissions cannot both land.
func (s *ApplicationService) SubmitLead(req *dto.LeadRequest) error {
	name := strings.TrimSpace(req.Name)
	mobile := strings.TrimSpace(req.Mobile)
	location := strings.TrimSpace(req.Location)
	message := strings.TrimSpace(req.Message)

	if name == "" || mobile == "" || location == "" {
		return validationError("Name, mobile, and location are required")
	}
	if !auth.ValidMobile(mobile) {
		return validationError("Please enter a valid 10-digit mobile number starting with 6-9")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Application{}).Where("mobile = ?", mobile).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check mobile: %w", err)
		}
		if count > 0 {
			return ErrDuplicateMobile
		}

		lead := models.Application{
			Name:        name,
			Mobile:      mobile,
			Location:    location,
			CoverLetter: message,
			Status:      "pending",
		}
		if err := tx.Create(&lead).Error; err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}
		return nil
	})
}

// ApplyToJob creates an application bound to the caller and the job, copying
// the caller's contact details and the job's location. The insert and the
// applications_count increment commit together, so the counter tracks the
// row count even under concurrent applies.
func (s *ApplicationService) ApplyToJob(userID uint, req *dto.ApplyRequest) error {
	if req.JobID == nil {
		return validationError("Job ID is required")
	}
	jobID := *req.JobID

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Application{}).
			Where("user_id = ? AND job_id = ?", userID, jobID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check existing application: %w", err)
		}
		if count > 0 {
			return ErrAlreadyApplied
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}

		var job models.Job
		if err := tx.First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJobNotFound
			}
			return fmt.Errorf("failed to load job: %w", err)
		}

		application := models.Application{
			JobID:           &job.ID,
			UserID:          &user.ID,
			Name:            user.Name,
			Email:           user.Email,
			Mobile:          user.Mobile,
			Location:        job.Location,
			ExperienceYears: req.ExperienceYears,
			ExpectedSalary:  req.ExpectedSalary,
			CoverLetter:     strings.TrimSpace(req.CoverLetter),
			Status:          "pending",
		}
		if err := tx.Create(&application).Error; err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}

		return tx.Model(&models.Job{}).Where("id = ?", jobID).
			UpdateColumn("applications_count", gorm.Expr("applications_count + 1")).Error
	})
}

// SaveJob bookmarks a job for the caller. The composite unique index backs
// the duplicate check at the database level.
func (s *ApplicationService) SaveJob(userID uint, req *dto.SaveJobRequest) error {
	if req.JobID == nil {
		return validationError("Job ID is required")
	}

	var count int64
	if err := s.db.Model(&models.SavedJob{}).
		Where("user_id = ? AND job_id = ?", userID, *req.JobID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check saved job: %w", err)
	}
	if count > 0 {
		return ErrAlreadySaved
	}

	saved := models.SavedJob{UserID: userID, JobID: *req.JobID}
	if err := s.db.Create(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadySaved
		}
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

// ListSavedJobs returns the caller's saved active jobs, most recently saved
// first.
func (s *ApplicationService) ListSavedJobs(userID uint) ([]dto.JobSummary, error) {
	jobs := []dto.JobSummary{}
	err := s.db.Table("saved_jobs sj").
		Select(jobSummaryColumns).
		Joins("JOIN jobs j ON sj.job_id = j.id").
		Joins("JOIN companies c ON j.company_id = c.id").
		Joins("JOIN job_categories cat ON j.category_id = cat.id").
		Where("sj.user_id = ? AND j.is_active = ?", userID, true).
		Order("sj.saved_date DESC").
		Scan(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}
	return jobs, nil
}

// ListAllApplications returns every application, newest first. There is no
// access control on this path; see DESIGN.md.
func (s *ApplicationService) ListAllApplications() ([]models.Application, error) {
	applications := []models.Application{}
	err := s.db.Order("applied_date DESC").Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}
