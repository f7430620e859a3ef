package handlers

import (
	"net/http"

	"boatlog-backend/internal/auth"
	"boatlog-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AlertsHandler handles HTTP requests for the alert feed and its mutators
type AlertsHandler struct {
	alertsService    *service.AlertsService
	componentService *service.ComponentService
}

// NewAlertsHandler creates a new alerts handler
func NewAlertsHandler(alertsService *service.AlertsService, componentService *service.ComponentService) *AlertsHandler {
	return &AlertsHandler{
		alertsService:    alertsService,
		componentService: componentService,
	}
}

// GetAlerts handles GET /alerts
// @Summary Alert feed for the authenticated account
// @Description Scans every owned boat's components and documents and returns the computed alerts, sorted by severity then due date.
// @Tags alerts
// @Produce json
// @Success 200 {object} service.AlertsResponse
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /alerts [get]
func (h *AlertsHandler) GetAlerts(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.alertsService.GetAlertsForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DismissAlert handles POST /alerts/dismiss
// @Summary Dismiss a maintenance alert
// @Description Pushes the component's next-due value forward from today (or the current hour counter) by the configured interval, or clears it when no interval is set.
// @Tags alerts
// @Accept json
// @Produce json
// @Param request body service.DismissAlertRequest true "Dismiss request"
// @Success 200 {object} service.MutationResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /alerts/dismiss [post]
func (h *AlertsHandler) DismissAlert(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.DismissAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.componentService.DismissAlert(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QuickComplete handles POST /alerts/quick-complete
// @Summary Record a completed service from an alert
// @Description Inserts one maintenance log entry and re-projects every configured cadence forward from today and the current hour counter.
// @Tags alerts
// @Accept json
// @Produce json
// @Param request body service.QuickCompleteRequest true "Quick-complete request"
// @Success 200 {object} service.MutationResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /alerts/quick-complete [post]
func (h *AlertsHandler) QuickComplete(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.QuickCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.componentService.QuickComplete(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
