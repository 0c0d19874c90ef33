package services

import "errors"

// Sentinel errors carry the user-facing message; handlers map them to status
// codes with errors.Is / errors.As.
var (
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrJobNotFound        = errors.New("Job not found")
	ErrAlreadyApplied     = errors.New("You have already applied for this job")
	ErrDuplicateMobile    = errors.New("Application with this mobile number already exists")
	ErrAlreadySaved       = errors.New("Job already saved")
)

// ValidationError marks malformed or missing input rejected before any
// store access.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}
