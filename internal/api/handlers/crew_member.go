package handlers

import (
	"net/http"

	"boatlog-backend/internal/auth"
	"boatlog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CrewMemberHandler handles HTTP requests for boat crew members
type CrewMemberHandler struct {
	crewService *service.CrewMemberService
}

// NewCrewMemberHandler creates a new crew member handler
func NewCrewMemberHandler(crewService *service.CrewMemberService) *CrewMemberHandler {
	return &CrewMemberHandler{crewService: crewService}
}

// InviteCrewMember handles POST /crew-members
// @Summary Invite a crew member to a boat
// @Description Creates the membership record and sends an invitation email when a mailer is configured.
// @Tags crew
// @Accept json
// @Produce json
// @Param request body service.InviteCrewMemberRequest true "Invitation details"
// @Success 201 {object} service.CrewMemberResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /crew-members [post]
func (h *CrewMemberHandler) InviteCrewMember(c *gin.Context) {
	user, ok := auth.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.InviteCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.crewService.Invite(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListCrewMembers handles GET /boats/:id/crew-members
// @Summary List a boat's crew
// @Tags crew
// @Produce json
// @Param id path string true "Boat ID"
// @Success 200 {array} service.CrewMemberResponse
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /boats/{id}/crew-members [get]
func (h *CrewMemberHandler) ListCrewMembers(c *gin.Context) {
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

	resp, err := h.crewService.ListByBoat(userID, boatID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActivateCrewMember handles POST /crew-members/:id/activate
// @Summary Mark an invited crew member as active
// @Tags crew
// @Produce json
// @Param id path string true "Crew member ID"
// @Success 200 {object} service.CrewMemberResponse
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /crew-members/{id}/activate [post]
func (h *CrewMemberHandler) ActivateCrewMember(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid crew member ID"})
		return
	}

	resp, err := h.crewService.Activate(userID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteCrewMember handles DELETE /crew-members/:id
// @Summary Remove a crew member from a boat
// @Tags crew
// @Produce json
// @Param id path string true "Crew member ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /crew-members/{id} [delete]
func (h *CrewMemberHandler) DeleteCrewMember(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid crew member ID"})
		return
	}

	if err := h.crewService.Delete(userID, memberID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
