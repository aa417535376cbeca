// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Auth-related errors
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("admin access required")
	ErrInvalidToken      = errors.New("invalid token")
	ErrAuthNotConfigured = errors.New("identity provider not configured")

	// User-related errors
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")

	// Submission-related errors
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidStatus      = errors.New("invalid submission status")
	ErrInvalidFormType    = errors.New("unknown form type")

	// Email-related errors
	ErrEmailNotConfigured = errors.New("email provider not configured")
	ErrEmailSendFailed    = errors.New("email send failed")
)
