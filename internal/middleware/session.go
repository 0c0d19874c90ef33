package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jobsetu/jobsetu-backend/internal/auth"
	"github.com/jobsetu/jobsetu-backend/internal/config"
	"github.com/jobsetu/jobsetu-backend/internal/dto"
)

// SessionRequired rejects requests without a valid session cookie. The
// message matches what the guarded endpoint tells anonymous callers.
func SessionRequired(cfg *config.Config, message string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.SessionSecret)},
		TokenLookup: "cookie:" + cfg.SessionCookie,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Error: message,
			})
		},
	})
}

// CurrentUser returns the identity bound by SessionRequired.
func CurrentUser(c *fiber.Ctx) (auth.SessionUser, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return auth.SessionUser{}, errors.New("no session in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return auth.SessionUser{}, errors.New("invalid session claims")
	}
	return auth.UserFromClaims(claims)
}
