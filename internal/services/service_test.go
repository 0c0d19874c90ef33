package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/jobsetu/jobsetu-backend/internal/database"
	"github.com/jobsetu/jobsetu-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database and migrates the
// full schema. cache=shared keeps the database alive across pooled
// connections; the name keeps tests apart.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func intp(v int) *int { return &v }

// seedCatalog installs a small fixture set with known counts and ordering:
// two active companies and categories (plus one inactive each), three active
// jobs and one inactive.
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	now := time.Now()

	companies := []models.Company{
		{Name: "Acme Tech", Location: "Mumbai", Industry: "Technology", IsActive: true},
		{Name: "Beta Corp", Location: "Delhi", Industry: "Security", IsActive: true},
		{Name: "Ghost Inc", Location: "Pune", Industry: "Retail", IsActive: false},
	}
	if err := db.Create(&companies).Error; err != nil {
		t.Fatalf("seed companies: %v", err)
	}

	categories := []models.JobCategory{
		{Name: "Technology", IsActive: true},
		{Name: "Security", IsActive: true},
		{Name: "Hidden", IsActive: false},
	}
	if err := db.Create(&categories).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}

	jobs := []models.Job{
		{Title: "Backend Engineer", CompanyID: 1, CategoryID: 1, Location: "Mumbai",
			SalaryMin: intp(15000), SalaryMax: intp(25000), SalaryType: "monthly", JobType: "full-time",
			Description: "Build APIs in Go.", IsActive: true, IsFeatured: false,
			PostedDate: now.Add(-72 * time.Hour)},
		{Title: "Security Guard", CompanyID: 2, CategoryID: 2, Location: "Delhi",
			SalaryMin: intp(12000), SalaryMax: intp(18000), SalaryType: "monthly", JobType: "part-time",
			Description: "Night shift security role.", IsActive: true, IsFeatured: false,
			PostedDate: now.Add(-24 * time.Hour)},
		{Title: "Frontend Developer", CompanyID: 1, CategoryID: 1, Location: "Pune",
			SalaryMin: intp(30000), SalaryMax: intp(50000), SalaryType: "monthly", JobType: "full-time",
			Description: "React work at Acme.", IsActive: true, IsFeatured: true,
			PostedDate: now.Add(-48 * time.Hour)},
		{Title: "Retired Role", CompanyID: 2, CategoryID: 1, Location: "Chennai",
			SalaryMin: intp(10000), SalaryMax: intp(99000), SalaryType: "monthly", JobType: "full-time",
			Description: "No longer hiring.", IsActive: false, IsFeatured: true,
			PostedDate: now},
	}
	if err := db.Create(&jobs).Error; err != nil {
		t.Fatalf("seed jobs: %v", err)
	}

	// GORM skips zero-value columns that carry a default tag, so the
	// inactive rows have to be flipped after the insert.
	deactivate := []struct {
		model any
		id    uint
	}{
		{&models.Company{}, 3},
		{&models.JobCategory{}, 3},
		{&models.Job{}, 4},
	}
	for _, d := range deactivate {
		if err := db.Model(d.model).Where("id = ?", d.id).UpdateColumn("is_active", false).Error; err != nil {
			t.Fatalf("deactivate fixture row: %v", err)
		}
	}
}

func createUser(t *testing.T, db *gorm.DB, name, email, mobile string) *models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Mobile: mobile, Password: "x", Role: "user", IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}
