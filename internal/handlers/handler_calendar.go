package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/dto"
)

// calendarHandler handles HTTP requests for the calendar feed and calendar
// reference data.
type calendarHandler struct {
	calendarService portssvc.CalendarSvcFacade
	eventService    portssvc.EventSvcFacade
}

func newCalendarHandler(cs portssvc.CalendarSvcFacade, es portssvc.EventSvcFacade) *calendarHandler {
	return &calendarHandler{calendarService: cs, eventService: es}
}

// RegisterCalendarRoutes registers the calendar feed plus holiday and region
// reference routes.
func RegisterCalendarRoutes(
	rg *gin.RouterGroup,
	calendarService portssvc.CalendarSvcFacade,
	eventService portssvc.EventSvcFacade,
) {
	h := newCalendarHandler(calendarService, eventService)

	holidays := rg.Group("/holidays")
	{
		holidays.POST("", h.createHoliday)
		holidays.GET("", h.listHolidays)
	}

	rg.GET("/calendar", h.getCalendar)
	rg.GET("/calendar/is-holiday", h.isHoliday)
	rg.GET("/regions", h.listRegions)
}

// getCalendar godoc
// @Summary Calendar event feed
// @Description Lists events for calendar rendering, narrowed to the caller's scope. Defaults to approved events only; pass approved_only=false to include pending and rejected ones.
// @Tags calendar
// @Produce json
// @Param group_id query string false "Restrict to one group"
// @Param approved_only query bool false "Only approved events (default true)"
// @Success 200 {object} dto.CalendarResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendar [get]
func (h *calendarHandler) getCalendar(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	params := dto.ListEventsParams{GroupID: c.Query("group_id")}
	if c.DefaultQuery("approved_only", "true") == "true" {
		params.Status = string(domain.StatusApproved)
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), id, params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CalendarResponse{
		GroupID:     params.GroupID,
		Events:      dto.ToListEventResponse(events),
		TotalEvents: len(events),
	})
}

// createHoliday godoc
// @Summary Seed a holiday row
// @Description Creates a national or regional holiday. The kind is derived from the region field. RH users only.
// @Tags calendar
// @Accept json
// @Produce json
// @Param holiday body dto.CreateHolidayRequest true "Holiday details"
// @Success 201 {object} dto.HolidayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /holidays [post]
func (h *calendarHandler) createHoliday(c *gin.Context) {
	var req dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	id, ok := actorID(c)
	if !ok {
		return
	}

	date, err := time.ParseInLocation(dto.DateLayout, req.Date, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	kind := domain.HolidayNational
	if req.Region != "" {
		kind = domain.HolidayRegional
	}

	holiday, err := h.calendarService.CreateHoliday(c.Request.Context(), id, domain.Holiday{
		Date:        date,
		Region:      req.Region,
		Description: req.Description,
		Kind:        kind,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToHolidayResponse(holiday))
}

// listHolidays godoc
// @Summary List holidays
// @Description Lists holidays. National rows are always included; a region narrows the regional rows.
// @Tags calendar
// @Produce json
// @Param region query string false "Two-letter region code"
// @Success 200 {array} dto.HolidayResponse
// @Security BearerAuth
// @Router /holidays [get]
func (h *calendarHandler) listHolidays(c *gin.Context) {
	holidays, err := h.calendarService.ListHolidays(c.Request.Context(), c.Query("region"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListHolidayResponse(holidays))
}

// isHoliday godoc
// @Summary Check whether a date is a public holiday
// @Tags calendar
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param region query string false "Two-letter region code"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendar/is-holiday [get]
func (h *calendarHandler) isHoliday(c *gin.Context) {
	date, err := time.ParseInLocation(dto.DateLayout, c.Query("date"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	holiday, err := h.calendarService.IsPublicHoliday(c.Request.Context(), date, c.Query("region"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isHoliday": holiday})
}

// listRegions godoc
// @Summary List the UF reference table
// @Tags calendar
// @Produce json
// @Success 200 {array} dto.RegionResponse
// @Security BearerAuth
// @Router /regions [get]
func (h *calendarHandler) listRegions(c *gin.Context) {
	regions, err := h.calendarService.ListRegions(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListRegionResponse(regions))
}
