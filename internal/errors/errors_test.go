package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "boat"}
		assert.Equal(t, "boat not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "component"}
		err2 := &NotFoundError{Entity: "component"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "boat"}
		err2 := &NotFoundError{Entity: "document"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrBoatNotFound, ErrBoatNotFound))
		assert.False(t, errors.Is(ErrBoatNotFound, ErrComponentNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrComponentNotFound))
		assert.False(t, IsNotFound(ErrInvalidAlertType))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "title", Message: "is required"}
		assert.Equal(t, "validation error: title - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("title", "is required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrBoatNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("Authentication error", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrMissingAuthHeader))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrAdminOnly))
	})

	t.Run("Authorization error", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrAdminOnly))
		assert.False(t, IsAuthorization(ErrInvalidToken))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("engine hour meter")
		assert.Equal(t, "engine hour meter not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("IsConfiguration helper", func(t *testing.T) {
		assert.True(t, IsConfiguration(ErrMailerNotConfigured))
		assert.False(t, IsConfiguration(ErrBoatNotFound))
	})
}
