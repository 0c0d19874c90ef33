package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jobsetu/jobsetu-backend/internal/dto"
	"github.com/jobsetu/jobsetu-backend/internal/services"
)

// respondError maps service errors to status codes. The error text is the
// user-facing message on every path, including unexpected 500s.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrJobNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrDuplicateMobile),
		errors.Is(err, services.ErrAlreadyApplied),
		errors.Is(err, services.ErrAlreadySaved):
		status = fiber.StatusConflict
	}

	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Error: err.Error()})
}

func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Success: false, Error: "Invalid request body",
	})
}
