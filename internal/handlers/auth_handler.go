package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobsetu/jobsetu-backend/internal/auth"
	"github.com/jobsetu/jobsetu-backend/internal/config"
	"github.com/jobsetu/jobsetu-backend/internal/dto"
	"github.com/jobsetu/jobsetu-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	if err := h.authService.Register(&req); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Success: true, Message: "Account created successfully!",
	})
}

// Login verifies credentials and binds the session by setting the signed
// cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	user, err := h.authService.Login(&req)
	if err != nil {
		return respondError(c, err)
	}

	token, err := auth.IssueToken(h.cfg, user)
	if err != nil {
		return respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.SessionExpiry),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(dto.LoginResponse{
		Success: true,
		Message: "Login successful!",
		User:    dto.LoginUser{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// Logout clears the session cookie. It succeeds whether or not a session
// existed.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(dto.MessageResponse{Success: true, Message: "Logged out successfully"})
}

// CheckAuth reports session state without ever failing: anonymous callers
// get success=false with a null user, still 200.
func (h *AuthHandler) CheckAuth(c *fiber.Ctx) error {
	cookie := c.Cookies(h.cfg.SessionCookie)
	if cookie == "" {
		return c.JSON(dto.CheckAuthResponse{Success: false, User: nil})
	}

	user, err := auth.ParseToken(h.cfg, cookie)
	if err != nil {
		return c.JSON(dto.CheckAuthResponse{Success: false, User: nil})
	}

	return c.JSON(dto.CheckAuthResponse{
		Success: true,
		User:    &dto.SessionUserResponse{ID: user.ID, Name: user.Name},
	})
}
