package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetBoatRejectsMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(uuid.New()))

	handler := NewBoatHandler(nil)
	router.GET("/boats/:id", handler.GetBoat)

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/boats/not-a-uuid", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid boat ID")
}
