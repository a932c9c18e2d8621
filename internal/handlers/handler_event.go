package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tooff-app/tooff-backend/internal/apperrors"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/dto"
)

// eventHandler handles HTTP requests related to absence events.
type eventHandler struct {
	eventService    portssvc.EventSvcFacade
	vacationService portssvc.VacationSvcFacade
	scopeService    portssvc.ScopeResolverSvc
	allowanceDays   int
}

func newEventHandler(
	es portssvc.EventSvcFacade,
	vs portssvc.VacationSvcFacade,
	ss portssvc.ScopeResolverSvc,
	allowanceDays int,
) *eventHandler {
	return &eventHandler{
		eventService:    es,
		vacationService: vs,
		scopeService:    ss,
		allowanceDays:   allowanceDays,
	}
}

// RegisterEventRoutes registers routes related to absence events.
func RegisterEventRoutes(
	rg *gin.RouterGroup,
	eventService portssvc.EventSvcFacade,
	vacationService portssvc.VacationSvcFacade,
	scopeService portssvc.ScopeResolverSvc,
	allowanceDays int,
) {
	h := newEventHandler(eventService, vacationService, scopeService, allowanceDays)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/vacation-summary", h.vacationSummary)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.editEvent)
		events.POST("/:id/approve", h.approveEvent)
		events.POST("/:id/reject", h.rejectEvent)
		events.DELETE("/:id", h.deleteEvent)
	}
}

// createEvent godoc
// @Summary File a new absence event
// @Description Creates an event in PENDING status. Plain members may only file for themselves.
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	id, ok := actorID(c)
	if !ok {
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// getEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// listEvents godoc
// @Summary List events visible to the actor
// @Description Lists events inside the actor's resolved scope, narrowed by filters. Filters pointing outside the scope are rejected.
// @Tags events
// @Produce json
// @Param user_id query string false "Filter by owning user"
// @Param group_id query string false "Filter by group"
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Success 200 {array} dto.EventResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	var params dto.ListEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	id, ok := actorID(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), id, params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListEventResponse(events))
}

// editEvent godoc
// @Summary Edit an event
// @Description Applies the closed set of editable event fields. Day count is recomputed on date changes.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *eventHandler) editEvent(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	id, ok := actorID(c)
	if !ok {
		return
	}

	event, err := h.eventService.EditEvent(c.Request.Context(), id, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// approveEvent godoc
// @Summary Approve a pending event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Event is no longer pending"
// @Security BearerAuth
// @Router /events/{id}/approve [post]
func (h *eventHandler) approveEvent(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	event, err := h.eventService.ApproveEvent(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// rejectEvent godoc
// @Summary Reject a pending event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Event is no longer pending"
// @Security BearerAuth
// @Router /events/{id}/reject [post]
func (h *eventHandler) rejectEvent(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	event, err := h.eventService.RejectEvent(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// deleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// vacationSummary godoc
// @Summary Vacation accrual summary
// @Description Reports approved vacation days in the trailing 365-day window against the allowance. Defaults to the actor and today's date.
// @Tags events
// @Produce json
// @Param user_id query string false "Target user (defaults to the actor)"
// @Param ref_date query string false "Reference date (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} dto.VacationSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/vacation-summary [get]
func (h *eventHandler) vacationSummary(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	targetUserID := c.Query("user_id")
	if targetUserID == "" {
		targetUserID = id
	}

	allowed, err := h.scopeService.CanAccessUser(c.Request.Context(), id, targetUserID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !allowed {
		respondWithError(c, fmt.Errorf("%w: user %s is outside actor scope", apperrors.ErrForbidden, targetUserID))
		return
	}

	refDate := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := c.Query("ref_date"); raw != "" {
		refDate, err = time.ParseInLocation(dto.DateLayout, raw, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid ref_date, expected YYYY-MM-DD"})
			return
		}
	}

	taken, exceeded, err := h.vacationService.CheckVacationAllowance(c.Request.Context(), targetUserID, refDate, 0)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VacationSummaryResponse{
		UserID:        targetUserID,
		ReferenceDate: refDate.Format(dto.DateLayout),
		ApprovedDays:  taken,
		AllowanceDays: h.allowanceDays,
		Exceeded:      exceeded,
	})
}
