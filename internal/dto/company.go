package dto

import (
	"time"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// CreateCompanyRequest defines the payload for registering a company.
type CreateCompanyRequest struct {
	TaxID   string `json:"taxID" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
}

// UpdateCompanyRequest defines the closed set of editable company fields.
type UpdateCompanyRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

// CompanyResponse is the wire representation of a company.
type CompanyResponse struct {
	CompanyID string    `json:"companyID"`
	TaxID     string    `json:"taxID"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCompanyResponse converts a domain.Company to its wire representation.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID: c.CompanyID,
		TaxID:     c.TaxID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

// ToListCompanyResponse converts a slice of companies.
func ToListCompanyResponse(companies []domain.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(companies))
	for i := range companies {
		out[i] = ToCompanyResponse(&companies[i])
	}
	return out
}
