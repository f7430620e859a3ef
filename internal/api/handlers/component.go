package handlers

import (
	"net/http"

	"boatlog-backend/internal/auth"
	"boatlog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComponentHandler handles HTTP requests for boat components
type ComponentHandler struct {
	componentService *service.ComponentService
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService *service.ComponentService) *ComponentHandler {
	return &ComponentHandler{componentService: componentService}
}

// CreateComponent handles POST /components
// @Summary Create a component on a boat
// @Tags components
// @Accept json
// @Produce json
// @Param request body service.CreateComponentRequest true "Component details"
// @Success 201 {object} service.ComponentResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.componentService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListComponents handles GET /boats/:id/components
// @Summary List a boat's components
// @Tags components
// @Produce json
// @Param id path string true "Boat ID"
// @Success 200 {array} service.ComponentResponse
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /boats/{id}/components [get]
func (h *ComponentHandler) ListComponents(c *gin.Context) {
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

	resp, err := h.componentService.ListByBoat(userID, boatID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetComponent handles GET /components/:id
// @Summary Get a component by ID
// @Tags components
// @Produce json
// @Param id path string true "Component ID"
// @Success 200 {object} service.ComponentResponse
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component ID"})
		return
	}

	resp, err := h.componentService.GetByID(userID, componentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateComponent handles PUT /components/:id
// @Summary Update a component
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID"
// @Param request body service.UpdateComponentRequest true "Fields to update"
// @Success 200 {object} service.ComponentResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /components/{id} [put]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component ID"})
		return
	}

	var req service.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.componentService.Update(userID, componentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteComponent handles DELETE /components/:id
// @Summary Delete a component
// @Tags components
// @Produce json
// @Param id path string true "Component ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /components/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	componentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component ID"})
		return
	}

	if err := h.componentService.Delete(userID, componentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
