package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jobsetu/jobsetu-backend/internal/auth"
	"github.com/jobsetu/jobsetu-backend/internal/dto"
	"github.com/jobsetu/jobsetu-backend/internal/models"
	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates a new user with a freshly hashed password. It does not
// establish a session; the caller logs in separately.
func (s *AuthService) Register(req *dto.SignupRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	if name == "" || email == "" || password == "" {
		return validationError("All fields are required")
	}
	if !auth.ValidEmail(email) {
		return validationError("Please enter a valid email address")
	}
	if len(password) < 6 {
		return validationError("Password must be at least 6 characters long")
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     "user",
		IsActive: true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// The unique index on email closes the race between the lookup
		// above and this insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login verifies credentials by email. A missing account and a wrong
// password return the same error so callers cannot tell which was wrong.
func (s *AuthService) Login(req *dto.LoginRequest) (*models.User, error) {
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	if email == "" || password == "" {
		return nil, validationError("Email and password are required")
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
