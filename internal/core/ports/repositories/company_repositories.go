package repositories

import (
	"context"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a specific company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompanies retrieves companies, optionally restricted to active ones.
	ListCompanies(ctx context.Context, activeOnly bool) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error

	// UpdateCompany updates an existing company's details.
	UpdateCompany(ctx context.Context, company domain.Company) error

	// DeactivateCompany clears the active flag. Companies are never hard-deleted.
	DeactivateCompany(ctx context.Context, companyID string, updatedBy string) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
