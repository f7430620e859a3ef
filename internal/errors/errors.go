package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found.
// Cross-account access is deliberately reported as the same outcome so that
// existence of another owner's records is never leaked.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrBoatNotFound            = &NotFoundError{Entity: "boat"}
	ErrComponentNotFound       = &NotFoundError{Entity: "component"}
	ErrPartNotFound            = &NotFoundError{Entity: "part"}
	ErrMaintenanceLogNotFound  = &NotFoundError{Entity: "maintenance log"}
	ErrHealthCheckNotFound     = &NotFoundError{Entity: "health check"}
	ErrDocumentNotFound        = &NotFoundError{Entity: "document"}
	ErrCrewMemberNotFound      = &NotFoundError{Entity: "crew member"}
	ErrSafetyEquipmentNotFound = &NotFoundError{Entity: "safety equipment"}
)

// Business Logic Errors
var (
	ErrInvalidAlertType      = &ValidationError{Field: "alertType", Message: "unrecognized alert type"}
	ErrExpiryDateInPast      = &ValidationError{Field: "expiry_date", Message: "must not be in the past"}
	ErrInvalidReminderWindow = &ValidationError{Field: "reminder_days", Message: "must be positive"}
	ErrNegativeHours         = &ValidationError{Field: "engine_hours", Message: "must not be negative"}
	ErrInvalidCoordinates    = &ValidationError{Field: "lat/lon", Message: "out of range"}
)

// Authentication Errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken      = &AuthenticationError{Message: "invalid token"}
	ErrAdminOnly         = &AuthorizationError{Message: "administrator access required"}
)

// Configuration Errors
var (
	ErrMailerNotConfigured  = &ConfigurationError{Message: "mailer configuration missing: MAILGUN_DOMAIN or MAILGUN_API_KEY"}
	ErrWeatherNotConfigured = &ConfigurationError{Message: "weather configuration missing: WEATHER_API_KEY"}
	ErrStorageNotConfigured = &ConfigurationError{Message: "storage configuration missing: S3_BUCKET"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
