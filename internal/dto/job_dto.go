package dto

import "time"

// SearchRequest carries the optional search criteria; all supplied criteria
// combine with AND.
type SearchRequest struct {
	Query      string `json:"query"`
	CategoryID *uint  `json:"category_id"`
	Location   string `json:"location"`
	JobType    string `json:"job_type"`
	SalaryMin  *int   `json:"salary_min"`
	SalaryMax  *int   `json:"salary_max"`
}

// JobSummary is a listing row: the job joined with company and category
// display fields.
type JobSummary struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Location        string    `json:"location"`
	SalaryMin       *int      `json:"salary_min"`
	SalaryMax       *int      `json:"salary_max"`
	SalaryType      string    `json:"salary_type"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	Description     string    `json:"description"`
	IsFeatured      bool      `json:"is_featured"`
	PostedDate      time.Time `json:"posted_date"`
	CompanyName     string    `json:"company_name"`
	CompanyLogo     string    `json:"company_logo"`
	CategoryName    string    `json:"category_name"`
	CategoryIcon    string    `json:"category_icon"`
}

// JobDetail is the full job record with its company and category summary.
type JobDetail struct {
	ID                 uint      `json:"id"`
	Title              string    `json:"title"`
	CompanyID          uint      `json:"company_id"`
	CategoryID         uint      `json:"category_id"`
	Location           string    `json:"location"`
	SalaryMin          *int      `json:"salary_min"`
	SalaryMax          *int      `json:"salary_max"`
	SalaryType         string    `json:"salary_type"`
	JobType            string    `json:"job_type"`
	ExperienceLevel    string    `json:"experience_level"`
	Description        string    `json:"description"`
	Requirements       string    `json:"requirements"`
	Benefits           string    `json:"benefits"`
	IsFeatured         bool      `json:"is_featured"`
	Views              int       `json:"views"`
	ApplicationsCount  int       `json:"applications_count"`
	PostedDate         time.Time `json:"posted_date"`
	CompanyName        string    `json:"company_name"`
	CompanyLogo        string    `json:"company_logo"`
	CompanyDescription string    `json:"company_description"`
	CompanyWebsite     string    `json:"company_website"`
	CategoryName       string    `json:"category_name"`
	CategoryIcon       string    `json:"category_icon"`
}

type CategoryWithCount struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	JobCount    int    `json:"job_count"`
}

type CompanyWithCount struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Logo          string `json:"logo"`
	Description   string `json:"description"`
	Website       string `json:"website"`
	Location      string `json:"location"`
	Industry      string `json:"industry"`
	FoundedYear   int    `json:"founded_year"`
	EmployeeCount string `json:"employee_count"`
	JobCount      int    `json:"job_count"`
}

type SearchResponse struct {
	Success bool         `json:"success"`
	Results []JobSummary `json:"results"`
	Count   int          `json:"count"`
}

type CategoriesResponse struct {
	Success    bool                `json:"success"`
	Categories []CategoryWithCount `json:"categories"`
}

type CompaniesResponse struct {
	Success   bool               `json:"success"`
	Companies []CompanyWithCount `json:"companies"`
}

type JobDetailResponse struct {
	Success bool      `json:"success"`
	Job     JobDetail `json:"job"`
}

type SavedJobsResponse struct {
	Success bool         `json:"success"`
	Jobs    []JobSummary `json:"jobs"`
}
