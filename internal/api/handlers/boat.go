package handlers

import (
	"net/http"

	"boatlog-backend/internal/auth"
	"boatlog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoatHandler handles HTTP requests for boats
type BoatHandler struct {
	boatService *service.BoatService
}

// NewBoatHandler creates a new boat handler
func NewBoatHandler(boatService *service.BoatService) *BoatHandler {
	return &BoatHandler{boatService: boatService}
}

// CreateBoat handles POST /boats
// @Summary Create a boat
// @Tags boats
// @Accept json
// @Produce json
// @Param request body service.CreateBoatRequest true "Boat details"
// @Success 201 {object} service.BoatResponse
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /boats [post]
func (h *BoatHandler) CreateBoat(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateBoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.boatService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListBoats handles GET /boats
// @Summary List the account's boats
// @Tags boats
// @Produce json
// @Success 200 {array} service.BoatResponse
// @Security BearerAuth
// @Router /boats [get]
func (h *BoatHandler) ListBoats(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.boatService.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetBoat handles GET /boats/:id
// @Summary Get a boat by ID
// @Tags boats
// @Produce json
// @Param id path string true "Boat ID"
// @Success 200 {object} service.BoatResponse
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /boats/{id} [get]
func (h *BoatHandler) GetBoat(c *gin.Context) {
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

	resp, err := h.boatService.GetByID(userID, boatID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateBoat handles PUT /boats/:id
// @Summary Update a boat
// @Tags boats
// @Accept json
// @Produce json
// @Param id path string true "Boat ID"
// @Param request body service.UpdateBoatRequest true "Fields to update"
// @Success 200 {object} service.BoatResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /boats/{id} [put]
func (h *BoatHandler) UpdateBoat(c *gin.Context) {
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

	var req service.UpdateBoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.boatService.Update(userID, boatID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteBoat handles DELETE /boats/:id
// @Summary Delete a boat and everything attached to it
// @Tags boats
// @Produce json
// @Param id path string true "Boat ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /boats/{id} [delete]
func (h *BoatHandler) DeleteBoat(c *gin.Context) {
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

	if err := h.boatService.Delete(userID, boatID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
