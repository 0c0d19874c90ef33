package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jobsetu/jobsetu-backend/internal/auth"
	"github.com/jobsetu/jobsetu-backend/internal/dto"
)

type ContactHandler struct{}

func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

// Contact validates and acknowledges a message. Delivery is out of scope, so
// nothing is persisted.
func (h *ContactHandler) Contact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	subject := strings.TrimSpace(req.Subject)
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || subject == "" || message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "All fields are required",
		})
	}
	if !auth.ValidEmail(email) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Please enter a valid email address",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Success: true, Message: "Thank you for your message! We will get back to you soon.",
	})
}
