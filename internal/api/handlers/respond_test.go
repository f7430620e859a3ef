package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "boatlog-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found maps to 404",
			err:        apperrors.ErrBoatNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "validation maps to 400",
			err:        apperrors.NewValidationError("name", "is required"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid alert type maps to 400",
			err:        apperrors.ErrInvalidAlertType,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "authentication maps to 401",
			err:        apperrors.NewAuthenticationError("token expired"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "authorization maps to 403",
			err:        apperrors.NewAuthorizationError("admin access required"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "configuration maps to 503",
			err:        apperrors.ErrStorageNotConfigured,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown errors map to 500 without leaking detail",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			respondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantBody != "" {
				assert.Contains(t, recorder.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, recorder.Body.String(), "connection refused")
			}
		})
	}
}
