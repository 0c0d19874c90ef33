package database

import (
	"fmt"
	"log/slog"

	"github.com/jobsetu/jobsetu-backend/internal/models"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

var seedCategories = []models.JobCategory{
	{Name: "Technology", Description: "IT and software development jobs", Icon: "fas fa-laptop-code", Color: "#e63946"},
	{Name: "Sales & Marketing", Description: "Sales, marketing and business development", Icon: "fas fa-chart-line", Color: "#1d3557"},
	{Name: "Customer Service", Description: "Customer support and service roles", Icon: "fas fa-headset", Color: "#457b9d"},
	{Name: "Delivery & Logistics", Description: "Delivery, transportation and logistics", Icon: "fas fa-truck", Color: "#a8dadc"},
	{Name: "Security", Description: "Security guard and safety positions", Icon: "fas fa-shield-alt", Color: "#f1faee"},
	{Name: "Manufacturing", Description: "Factory and production jobs", Icon: "fas fa-industry", Color: "#e63946"},
	{Name: "Healthcare", Description: "Medical and healthcare positions", Icon: "fas fa-heartbeat", Color: "#1d3557"},
	{Name: "Education", Description: "Teaching and training roles", Icon: "fas fa-graduation-cap", Color: "#457b9d"},
}

var seedCompanies = []models.Company{
	{Name: "TechCorp Solutions", Logo: "https://via.placeholder.com/100x100/1d3557/ffffff?text=TC", Description: "Leading technology solutions provider", Website: "https://techcorp.com", Location: "Mumbai", Industry: "Technology", FoundedYear: 2015, EmployeeCount: "500-1000"},
	{Name: "SecureGuard Services", Logo: "https://via.placeholder.com/100x100/e63946/ffffff?text=SG", Description: "Professional security services", Website: "https://secureguard.com", Location: "Delhi", Industry: "Security", FoundedYear: 2010, EmployeeCount: "100-500"},
	{Name: "FoodExpress Delivery", Logo: "https://via.placeholder.com/100x100/457b9d/ffffff?text=FE", Description: "Fast food delivery service", Website: "https://foodexpress.com", Location: "Bangalore", Industry: "Logistics", FoundedYear: 2018, EmployeeCount: "1000-5000"},
	{Name: "EduTech Academy", Logo: "https://via.placeholder.com/100x100/a8dadc/ffffff?text=EA", Description: "Online education platform", Website: "https://edutech.com", Location: "Chennai", Industry: "Education", FoundedYear: 2016, EmployeeCount: "100-500"},
}

var seedJobs = []models.Job{
	{Title: "Frontend Developer", CompanyID: 1, CategoryID: 1, Location: "Mumbai", SalaryMin: intPtr(25000), SalaryMax: intPtr(45000), SalaryType: "monthly", JobType: "full-time", ExperienceLevel: "1-3 years", Description: "We are looking for a skilled Frontend Developer to join our team.", Requirements: "React, JavaScript, HTML, CSS", Benefits: "Health insurance, flexible hours", IsActive: true, IsFeatured: true},
	{Title: "Security Guard", CompanyID: 2, CategoryID: 5, Location: "Delhi", SalaryMin: intPtr(12000), SalaryMax: intPtr(18000), SalaryType: "monthly", JobType: "full-time", ExperienceLevel: "0-1 years", Description: "Looking for reliable security personnel for corporate office.", Requirements: "Basic security training, good communication", Benefits: "Uniform provided, meal allowance", IsActive: true, IsFeatured: false},
	{Title: "Delivery Executive", CompanyID: 3, CategoryID: 4, Location: "Bangalore", SalaryMin: intPtr(15000), SalaryMax: intPtr(25000), SalaryType: "monthly", JobType: "full-time", ExperienceLevel: "0-1 years", Description: "Join our fast-growing delivery team.", Requirements: "Valid driving license, smartphone", Benefits: "Fuel allowance, performance bonus", IsActive: true, IsFeatured: true},
	{Title: "Sales Representative", CompanyID: 1, CategoryID: 2, Location: "Chennai", SalaryMin: intPtr(18000), SalaryMax: intPtr(30000), SalaryType: "monthly", JobType: "full-time", ExperienceLevel: "1-3 years", Description: "Drive sales growth through customer engagement.", Requirements: "Good communication, negotiation skills", Benefits: "Commission, travel allowance", IsActive: true, IsFeatured: false},
	{Title: "Customer Support Executive", CompanyID: 4, CategoryID: 3, Location: "Hyderabad", SalaryMin: intPtr(14000), SalaryMax: intPtr(22000), SalaryType: "monthly", JobType: "full-time", ExperienceLevel: "0-2 years", Description: "Provide excellent customer service.", Requirements: "Good communication, problem-solving", Benefits: "Work from home options, health benefits", IsActive: true, IsFeatured: true},
}

// Seed inserts reference data on first startup. Each table is populated only
// when it is empty, so restarting the server never duplicates rows.
func Seed(db *gorm.DB) error {
	if err := seedIfEmpty(db, &models.JobCategory{}, seedCategories, "job categories"); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &models.Company{}, seedCompanies, "companies"); err != nil {
		return err
	}
	return seedIfEmpty(db, &models.Job{}, seedJobs, "jobs")
}

func seedIfEmpty[T any](db *gorm.DB, model interface{}, rows []T, label string) error {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count %s: %w", label, err)
	}
	if count > 0 {
		return nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to seed %s: %w", label, err)
	}
	slog.Info("seeded reference data", "table", label, "rows", len(rows))
	return nil
}
