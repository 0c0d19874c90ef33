package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobsetu/jobsetu-backend/internal/dto"
	"github.com/jobsetu/jobsetu-backend/internal/middleware"
	"github.com/jobsetu/jobsetu-backend/internal/services"
)

type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// SubmitApplication accepts the public lead form; no session needed.
func (h *ApplicationHandler) SubmitApplication(c *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	if err := h.applications.SubmitLead(&req); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Success: true, Message: "Application submitted successfully! We will contact you soon.",
	})
}

func (h *ApplicationHandler) ApplyJob(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Please login to apply",
		})
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	if err := h.applications.ApplyToJob(user.ID, &req); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Success: true, Message: "Application submitted successfully!",
	})
}

func (h *ApplicationHandler) SaveJob(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Please login to save jobs",
		})
	}

	var req dto.SaveJobRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	if err := h.applications.SaveJob(user.ID, &req); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Success: true, Message: "Job saved successfully!",
	})
}

func (h *ApplicationHandler) GetSavedJobs(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Please login to view saved jobs",
		})
	}

	jobs, err := h.applications.ListSavedJobs(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SavedJobsResponse{Success: true, Jobs: jobs})
}
