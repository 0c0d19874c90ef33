package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jobsetu/jobsetu-backend/internal/config"
	"github.com/jobsetu/jobsetu-backend/internal/models"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// SessionUser is the identity bound to a request by its session cookie.
type SessionUser struct {
	ID   uint
	Name string
}

// IssueToken mints the HS256-signed JWT stored in the session cookie. The
// cookie is the only session state; the server keeps nothing per client.
func IssueToken(cfg *config.Config, user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(user.ID), 10),
		"name": user.Name,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(cfg.SessionExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SessionSecret))
}

// ParseToken validates a session cookie value and returns the bound user.
func ParseToken(cfg *config.Config, tokenString string) (SessionUser, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return SessionUser{}, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return SessionUser{}, ErrInvalidSession
	}
	return UserFromClaims(claims)
}

// UserFromClaims extracts the session identity from already-verified claims.
func UserFromClaims(claims jwt.MapClaims) (SessionUser, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return SessionUser{}, ErrInvalidSession
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return SessionUser{}, ErrInvalidSession
	}

	name, _ := claims["name"].(string)
	return SessionUser{ID: uint(id), Name: name}, nil
}
