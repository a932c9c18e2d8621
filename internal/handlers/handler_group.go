package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/dto"
)

// groupHandler handles HTTP requests related to groups.
type groupHandler struct {
	groupService portssvc.GroupSvcFacade
}

func newGroupHandler(gs portssvc.GroupSvcFacade) *groupHandler {
	return &groupHandler{groupService: gs}
}

// registerGroupRoutes registers routes related to groups.
func registerGroupRoutes(rg *gin.RouterGroup, groupService portssvc.GroupSvcFacade) {
	h := newGroupHandler(groupService)

	groups := rg.Group("/groups")
	{
		groups.POST("", h.createGroup)
		groups.GET("", h.listGroups)
		groups.GET("/:id", h.getGroup)
		groups.PUT("/:id", h.updateGroup)
		groups.DELETE("/:id", h.deactivateGroup)
	}
}

// createGroup godoc
// @Summary Create a new group
// @Description Registers a group under a company the actor controls.
// @Tags groups
// @Accept json
// @Produce json
// @Param group body dto.CreateGroupRequest true "Group details"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups [post]
func (h *groupHandler) createGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	id, ok := actorID(c)
	if !ok {
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToGroupResponse(group))
}

// getGroup godoc
// @Summary Get a group by ID
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} dto.GroupResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *groupHandler) getGroup(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	group, err := h.groupService.GetGroup(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// listGroups godoc
// @Summary List groups visible to the actor
// @Tags groups
// @Produce json
// @Param company_id query string false "Restrict to one company"
// @Param include_inactive query bool false "Include deactivated groups"
// @Success 200 {array} dto.GroupResponse
// @Security BearerAuth
// @Router /groups [get]
func (h *groupHandler) listGroups(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	activeOnly := c.Query("include_inactive") != "true"
	groups, err := h.groupService.ListGroups(c.Request.Context(), id, c.Query("company_id"), activeOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListGroupResponse(groups))
}

// updateGroup godoc
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param group body dto.UpdateGroupRequest true "Fields to update"
// @Success 200 {object} dto.GroupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{id} [put]
func (h *groupHandler) updateGroup(c *gin.Context) {
	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	id, ok := actorID(c)
	if !ok {
		return
	}

	group, err := h.groupService.UpdateGroup(c.Request.Context(), id, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// deactivateGroup godoc
// @Summary Deactivate a group
// @Tags groups
// @Param id path string true "Group ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *groupHandler) deactivateGroup(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.groupService.DeactivateGroup(c.Request.Context(), id, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
