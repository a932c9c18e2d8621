package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/dto"
)

// absenceTypeHandler handles HTTP requests for the absence-type and shift catalogs.
type absenceTypeHandler struct {
	absenceTypeService portssvc.AbsenceTypeSvcFacade
}

func newAbsenceTypeHandler(ats portssvc.AbsenceTypeSvcFacade) *absenceTypeHandler {
	return &absenceTypeHandler{absenceTypeService: ats}
}

// registerAbsenceTypeRoutes registers routes for the absence-type and shift catalogs.
func registerAbsenceTypeRoutes(rg *gin.RouterGroup, absenceTypeService portssvc.AbsenceTypeSvcFacade) {
	h := newAbsenceTypeHandler(absenceTypeService)

	types := rg.Group("/absence-types")
	{
		types.POST("", h.createAbsenceType)
		types.GET("", h.listAbsenceTypes)
		types.GET("/:id", h.getAbsenceType)
	}

	shifts := rg.Group("/shifts")
	{
		shifts.POST("", h.createShift)
		shifts.GET("", h.listShifts)
		shifts.GET("/:id", h.getShift)
	}
}

// createAbsenceType godoc
// @Summary Create a new absence type
// @Description Adds a catalog row. RH users only.
// @Tags absence-types
// @Accept json
// @Produce json
// @Param absenceType body dto.CreateAbsenceTypeRequest true "Absence type details"
// @Success 201 {object} dto.AbsenceTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /absence-types [post]
func (h *absenceTypeHandler) createAbsenceType(c *gin.Context) {
	var req dto.CreateAbsenceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	id, ok := actorID(c)
	if !ok {
		return
	}

	absenceType, err := h.absenceTypeService.CreateAbsenceType(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAbsenceTypeResponse(absenceType))
}

// getAbsenceType godoc
// @Summary Get an absence type by ID
// @Tags absence-types
// @Produce json
// @Param id path string true "Absence type ID"
// @Success 200 {object} dto.AbsenceTypeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /absence-types/{id} [get]
func (h *absenceTypeHandler) getAbsenceType(c *gin.Context) {
	absenceType, err := h.absenceTypeService.GetAbsenceType(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAbsenceTypeResponse(absenceType))
}

// listAbsenceTypes godoc
// @Summary List the absence-type catalog
// @Tags absence-types
// @Produce json
// @Success 200 {array} dto.AbsenceTypeResponse
// @Security BearerAuth
// @Router /absence-types [get]
func (h *absenceTypeHandler) listAbsenceTypes(c *gin.Context) {
	types, err := h.absenceTypeService.ListAbsenceTypes(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListAbsenceTypeResponse(types))
}

// createShift godoc
// @Summary Create a new shift
// @Description Adds a shift catalog row. RH users only.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body dto.CreateShiftRequest true "Shift details"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts [post]
func (h *absenceTypeHandler) createShift(c *gin.Context) {
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	id, ok := actorID(c)
	if !ok {
		return
	}

	shift, err := h.absenceTypeService.CreateShift(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

// getShift godoc
// @Summary Get a shift by ID
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *absenceTypeHandler) getShift(c *gin.Context) {
	shift, err := h.absenceTypeService.GetShift(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// listShifts godoc
// @Summary List the shift catalog
// @Tags shifts
// @Produce json
// @Success 200 {array} dto.ShiftResponse
// @Security BearerAuth
// @Router /shifts [get]
func (h *absenceTypeHandler) listShifts(c *gin.Context) {
	shifts, err := h.absenceTypeService.ListShifts(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListShiftResponse(shifts))
}
