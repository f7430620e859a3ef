package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// withUser injects an authenticated account into the request context the way
// the auth middleware would
func withUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("email", "skipper@test.com")
		c.Next()
	}
}

func newAlertsTestRouter(authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if authenticated {
		router.Use(withUser(uuid.New()))
	}

	// Mutator paths below only exercise parsing and auth failures, so the
	// handler never reaches its services.
	handler := NewAlertsHandler(nil, nil)
	router.GET("/alerts", handler.GetAlerts)
	router.POST("/alerts/dismiss", handler.DismissAlert)
	router.POST("/alerts/quick-complete", handler.QuickComplete)
	return router
}

func TestAlertsHandlerRequiresAuth(t *testing.T) {
	router := newAlertsTestRouter(false)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/alerts"},
		{http.MethodPost, "/alerts/dismiss"},
		{http.MethodPost, "/alerts/quick-complete"},
	}

	for _, p := range paths {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(p.method, p.path, nil)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "%s %s", p.method, p.path)
	}
}

func TestDismissAlertRejectsMalformedBody(t *testing.T) {
	router := newAlertsTestRouter(true)

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/alerts/dismiss", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid request body")
}

func TestQuickCompleteRejectsMalformedBody(t *testing.T) {
	router := newAlertsTestRouter(true)

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/alerts/quick-complete", bytes.NewBufferString("[]"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
