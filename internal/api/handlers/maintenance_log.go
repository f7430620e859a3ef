package handlers

import (
	"net/http"

	"boatlog-backend/internal/auth"
	"boatlog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaintenanceLogHandler handles HTTP requests for maintenance log entries
type MaintenanceLogHandler struct {
	logService *service.MaintenanceLogService
}

// NewMaintenanceLogHandler creates a new maintenance log handler
func NewMaintenanceLogHandler(logService *service.MaintenanceLogService) *MaintenanceLogHandler {
	return &MaintenanceLogHandler{logService: logService}
}

// CreateMaintenanceLog handles POST /maintenance-logs
// @Summary Record a maintenance log entry
// @Tags maintenance-logs
// @Accept json
// @Produce json
// @Param request body service.CreateMaintenanceLogRequest true "Log entry"
// @Success 201 {object} service.MaintenanceLogResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /maintenance-logs [post]
func (h *MaintenanceLogHandler) CreateMaintenanceLog(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateMaintenanceLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.logService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMaintenanceLogs handles GET /boats/:id/maintenance-logs
// @Summary List a boat's maintenance log, newest first
// @Tags maintenance-logs
// @Produce json
// @Param id path string true "Boat ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Entries per page" default(20)
// @Success 200 {object} service.MaintenanceLogListResponse
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /boats/{id}/maintenance-logs [get]
func (h *MaintenanceLogHandler) ListMaintenanceLogs(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	boatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid boat ID"})
		return
	}

	page, pageSize := paginationParams(c)
	resp, err := h.logService.ListByBoat(userID, boatID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteMaintenanceLog handles DELETE /maintenance-logs/:id
// @Summary Delete a maintenance log entry
// @Description Entries are immutable once written, so removing a mis-entered record is the only mutation offered.
// @Tags maintenance-logs
// @Produce json
// @Param id path string true "Log entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /maintenance-logs/{id} [delete]
func (h *MaintenanceLogHandler) DeleteMaintenanceLog(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log entry ID"})
		return
	}

	if err := h.logService.Delete(userID, logID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
