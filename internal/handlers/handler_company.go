package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/dto"
	"github.com/tooff-app/tooff-backend/internal/middleware"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers routes related to companies.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:id", h.getCompany)
		companies.PUT("/:id", h.updateCompany)
		companies.DELETE("/:id", h.deactivateCompany)
	}
}

// createCompany godoc
// @Summary Create a new company
// @Description Registers a new company. RH users only.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := actorID(c)
	if !ok {
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), creatorID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Company created")
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// getCompany godoc
// @Summary Get a company by ID
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List companies visible to the actor
// @Tags companies
// @Produce json
// @Param include_inactive query bool false "Include deactivated companies"
// @Success 200 {array} dto.CompanyResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	activeOnly := c.Query("include_inactive") != "true"
	companies, err := h.companyService.ListCompanies(c.Request.Context(), id, activeOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCompanyResponse(companies))
}

// updateCompany godoc
// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param company body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	id, ok := actorID(c)
	if !ok {
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), id, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// deactivateCompany godoc
// @Summary Deactivate a company
// @Tags companies
// @Param id path string true "Company ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [delete]
func (h *companyHandler) deactivateCompany(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.companyService.DeactivateCompany(c.Request.Context(), id, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
