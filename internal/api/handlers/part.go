package handlers

import (
	"net/http"

	"boatlog-backend/internal/auth"
	"boatlog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartHandler handles HTTP requests for component parts
type PartHandler struct {
	partService *service.PartService
}

// NewPartHandler creates a new part handler
func NewPartHandler(partService *service.PartService) *PartHandler {
	return &PartHandler{partService: partService}
}

// CreatePart handles POST /parts
// @Summary Add a part to a component
// @Tags parts
// @Accept json
// @Produce json
// @Param request body service.CreatePartRequest true "Part details"
// @Success 201 {object} service.PartResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.partService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListParts handles GET /components/:id/parts
// @Summary List a component's parts
// @Tags parts
// @Produce json
// @Param id path string true "Component ID"
// @Success 200 {array} service.PartResponse
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /components/{id}/parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
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

	resp, err := h.partService.ListByComponent(userID, componentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePart handles PUT /parts/:id
// @Summary Update a part
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Part ID"
// @Param request body service.UpdatePartRequest true "Fields to update"
// @Success 200 {object} service.PartResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /parts/{id} [put]
func (h *PartHandler) UpdatePart(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	partID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid part ID"})
		return
	}

	var req service.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.partService.Update(userID, partID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeletePart handles DELETE /parts/:id
// @Summary Remove a part
// @Tags parts
// @Produce json
// @Param id path string true "Part ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /parts/{id} [delete]
func (h *PartHandler) DeletePart(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	partID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid part ID"})
		return
	}

	if err := h.partService.Delete(userID, partID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
