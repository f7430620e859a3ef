package handlers

import (
	"net/http"

	"boatlog-backend/internal/auth"
	"boatlog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HealthCheckHandler handles HTTP requests for boat health checks
type HealthCheckHandler struct {
	checkService *service.HealthCheckService
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(checkService *service.HealthCheckService) *HealthCheckHandler {
	return &HealthCheckHandler{checkService: checkService}
}

// CreateHealthCheck handles POST /health-checks
// @Summary Record a health check
// @Tags health-checks
// @Accept json
// @Produce json
// @Param request body service.CreateHealthCheckRequest true "Check details"
// @Success 201 {object} service.HealthCheckResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /health-checks [post]
func (h *HealthCheckHandler) CreateHealthCheck(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateHealthCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.checkService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListHealthChecks handles GET /boats/:id/health-checks
// @Summary List a boat's health checks, newest first
// @Tags health-checks
// @Produce json
// @Param id path string true "Boat ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Entries per page" default(20)
// @Success 200 {object} service.HealthCheckListResponse
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /boats/{id}/health-checks [get]
func (h *HealthCheckHandler) ListHealthChecks(c *gin.Context) {
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
	resp, err := h.checkService.ListByBoat(userID, boatID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteHealthCheck handles DELETE /health-checks/:id
// @Summary Delete a health check record
// @Tags health-checks
// @Produce json
// @Param id path string true "Check ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /health-checks/{id} [delete]
func (h *HealthCheckHandler) DeleteHealthCheck(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	checkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check ID"})
		return
	}

	if err := h.checkService.Delete(userID, checkID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
