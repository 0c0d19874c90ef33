package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobsetu/jobsetu-backend/internal/config"
	"github.com/jobsetu/jobsetu-backend/internal/handlers"
	"github.com/jobsetu/jobsetu-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	applicationHandler *handlers.ApplicationHandler,
	contactHandler *handlers.ContactHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	// Account and session
	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/check-auth", authHandler.CheckAuth)

	// Job catalog
	app.Post("/search-jobs", catalogHandler.SearchJobs)
	app.Get("/get-categories", catalogHandler.GetCategories)
	app.Get("/get-companies", catalogHandler.GetCompanies)
	app.Get("/get-job/:id", catalogHandler.GetJob)

	// Applications and saved jobs
	app.Post("/submit-application", applicationHandler.SubmitApplication)
	app.Get("/view-applications", applicationHandler.ViewApplications)
	app.Post("/apply-job",
		middleware.SessionRequired(cfg, "Please login to apply"),
		applicationHandler.ApplyJob)
	app.Post("/save-job",
		middleware.SessionRequired(cfg, "Please login to save jobs"),
		applicationHandler.SaveJob)
	app.Get("/get-saved-jobs",
		middleware.SessionRequired(cfg, "Please login to view saved jobs"),
		applicationHandler.GetSavedJobs)

	// Contact form
	app.Post("/contact", contactHandler.Contact)
}
