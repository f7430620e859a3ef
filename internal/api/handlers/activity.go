package handlers

import (
	"net/http"

	"boatlog-backend/internal/auth"
	"boatlog-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for the recent-activity feed
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetActivity handles GET /activity
// @Summary Recent activity across the account's boats
// @Description Merges recent maintenance logs, health checks and documents into one feed, newest first.
// @Tags activity
// @Produce json
// @Success 200 {object} service.ActivityResponse
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /activity [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.activityService.GetActivityForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
