package handlers

import (
	"net/http"

	"boatlog-backend/internal/auth"
	"boatlog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SafetyEquipmentHandler handles HTTP requests for safety equipment
type SafetyEquipmentHandler struct {
	equipmentService *service.SafetyEquipmentService
}

// NewSafetyEquipmentHandler creates a new safety equipment handler
func NewSafetyEquipmentHandler(equipmentService *service.SafetyEquipmentService) *SafetyEquipmentHandler {
	return &SafetyEquipmentHandler{equipmentService: equipmentService}
}

// CreateSafetyEquipment handles POST /safety-equipment
// @Summary Add a safety equipment item to a boat
// @Tags safety-equipment
// @Accept json
// @Produce json
// @Param request body service.CreateSafetyEquipmentRequest true "Equipment details"
// @Success 201 {object} service.SafetyEquipmentResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /safety-equipment [post]
func (h *SafetyEquipmentHandler) CreateSafetyEquipment(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateSafetyEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.equipmentService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListSafetyEquipment handles GET /boats/:id/safety-equipment
// @Summary List a boat's safety equipment
// @Tags safety-equipment
// @Produce json
// @Param id path string true "Boat ID"
// @Success 200 {array} service.SafetyEquipmentResponse
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /boats/{id}/safety-equipment [get]
func (h *SafetyEquipmentHandler) ListSafetyEquipment(c *gin.Context) {
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

	resp, err := h.equipmentService.ListByBoat(userID, boatID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSafetyEquipment handles PUT /safety-equipment/:id
// @Summary Update a safety equipment item
// @Tags safety-equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Param request body service.UpdateSafetyEquipmentRequest true "Fields to update"
// @Success 200 {object} service.SafetyEquipmentResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /safety-equipment/{id} [put]
func (h *SafetyEquipmentHandler) UpdateSafetyEquipment(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid equipment ID"})
		return
	}

	var req service.UpdateSafetyEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.equipmentService.Update(userID, itemID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteSafetyEquipment handles DELETE /safety-equipment/:id
// @Summary Remove a safety equipment item
// @Tags safety-equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /safety-equipment/{id} [delete]
func (h *SafetyEquipmentHandler) DeleteSafetyEquipment(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid equipment ID"})
		return
	}

	if err := h.equipmentService.Delete(userID, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
