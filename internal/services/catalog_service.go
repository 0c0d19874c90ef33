package services

import (
	"fmt"
	"strings"

	"github.com/jobsetu/jobsetu-backend/internal/dto"
	"github.com/jobsetu/jobsetu-backend/internal/models"
	"gorm.io/gorm"
)

// jobSummaryColumns is the shared listing projection: the job plus the
// display fields of its company and category.
const jobSummaryColumns = `j.id, j.title, j.location, j.salary_min, j.salary_max, j.salary_type,
	j.job_type, j.experience_level, j.description, j.is_featured, j.posted_date,
	c.name AS company_name, c.logo AS company_logo,
	cat.name AS category_name, cat.icon AS category_icon`

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListCategories returns active categories with their active-job counts,
// busiest first. Ties keep a stable order by id.
func (s *CatalogService) ListCategories() ([]dto.CategoryWithCount, error) {
	categories := []dto.CategoryWithCount{}
	err := s.db.Table("job_categories cat").
		Select("cat.id, cat.name, cat.description, cat.icon, cat.color, COUNT(j.id) AS job_count").
		Joins("LEFT JOIN jobs j ON cat.id = j.category_id AND j.is_active = ?", true).
		Where("cat.is_active = ?", true).
		Group("cat.id, cat.name, cat.description, cat.icon, cat.color").
		Order("job_count DESC, cat.id").
		Scan(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListCompanies returns active companies with their active-job counts,
// busiest first.
func (s *CatalogService) ListCompanies() ([]dto.CompanyWithCount, error) {
	companies := []dto.CompanyWithCount{}
	err := s.db.Table("companies c").
		Select(`c.id, c.name, c.logo, c.description, c.website, c.location,
			c.industry, c.founded_year, c.employee_count, COUNT(j.id) AS job_count`).
		Joins("LEFT JOIN jobs j ON c.id = j.company_id AND j.is_active = ?", true).
		Where("c.is_active = ?", true).
		Group(`c.id, c.name, c.logo, c.description, c.website, c.location,
			c.industry, c.founded_year, c.employee_count`).
		Order("job_count DESC, c.id").
		Scan(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// GetJobDetail returns the full record of an active job and bumps its view
// counter. The increment is a single SQL update so concurrent fetches of the
// same job never lose counts; the returned record carries the pre-increment
// value.
func (s *CatalogService) GetJobDetail(jobID uint) (*dto.JobDetail, error) {
	var detail dto.JobDetail
	result := s.db.Table("jobs j").
		Select(`j.id, j.title, j.company_id, j.category_id, j.location, j.salary_min, j.salary_max,
			j.salary_type, j.job_type, j.experience_level, j.description, j.requirements, j.benefits,
			j.is_featured, j.views, j.applications_count, j.posted_date,
			c.name AS company_name, c.logo AS company_logo,
			c.description AS company_description, c.website AS company_website,
			cat.name AS category_name, cat.icon AS category_icon`).
		Joins("JOIN companies c ON j.company_id = c.id").
		Joins("JOIN job_categories cat ON j.category_id = cat.id").
		Where("j.id = ? AND j.is_active = ?", jobID, true).
		Scan(&detail)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to fetch job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}

	err := s.db.Model(&models.Job{}).Where("id = ?", jobID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return nil, fmt.Errorf("failed to increment views: %w", err)
	}
	return &detail, nil
}

// SearchJobs filters active jobs by the supplied criteria. Each criterion is
// a parameter-bound condition appended to the query; they combine with AND.
// Featured jobs come first, then newest postings.
func (s *CatalogService) SearchJobs(req *dto.SearchRequest) ([]dto.JobSummary, error) {
	q := s.db.Table("jobs j").
		Select(jobSummaryColumns).
		Joins("JOIN companies c ON j.company_id = c.id").
		Joins("JOIN job_categories cat ON j.category_id = cat.id").
		Where("j.is_active = ?", true)

	if text := strings.ToLower(strings.TrimSpace(req.Query)); text != "" {
		like := "%" + text + "%"
		q = q.Where("(LOWER(j.title) LIKE ? OR LOWER(j.description) LIKE ? OR LOWER(c.name) LIKE ?)",
			like, like, like)
	}
	if req.CategoryID != nil {
		q = q.Where("j.category_id = ?", *req.CategoryID)
	}
	if location := strings.TrimSpace(req.Location); location != "" {
		q = q.Where("j.location LIKE ?", "%"+location+"%")
	}
	if req.JobType != "" {
		q = q.Where("j.job_type = ?", req.JobType)
	}
	if req.SalaryMin != nil {
		q = q.Where("j.salary_max >= ?", *req.SalaryMin)
	}
	if req.SalaryMax != nil {
		q = q.Where("j.salary_min <= ?", *req.SalaryMax)
	}

	jobs := []dto.JobSummary{}
	if err := q.Order("j.is_featured DESC, j.posted_date DESC").Scan(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}
	return jobs, nil
}
