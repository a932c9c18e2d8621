package services

import (
	"context"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
	"github.com/tooff-app/tooff-backend/internal/dto"
)

// CompanySvcFacade handles company CRUD with scope enforcement.
type CompanySvcFacade interface {
	// CreateCompany registers a new company. Elevated (RH) actors only.
	CreateCompany(ctx context.Context, actorID string, req dto.CreateCompanyRequest) (*domain.Company, error)

	// GetCompany retrieves a company the actor may observe.
	GetCompany(ctx context.Context, actorID, companyID string) (*domain.Company, error)

	// ListCompanies retrieves companies, active ones by default.
	ListCompanies(ctx context.Context, actorID string, activeOnly bool) ([]domain.Company, error)

	// UpdateCompany applies the closed set of editable company fields.
	UpdateCompany(ctx context.Context, actorID, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error)

	// DeactivateCompany soft-deletes a company. RH of that company only.
	DeactivateCompany(ctx context.Context, actorID, companyID string) error
}

// GroupSvcFacade handles group CRUD with scope enforcement.
type GroupSvcFacade interface {
	// CreateGroup registers a new group under a company the actor controls.
	CreateGroup(ctx context.Context, actorID string, req dto.CreateGroupRequest) (*domain.Group, error)

	// GetGroup retrieves a group the actor may observe.
	GetGroup(ctx context.Context, actorID, groupID string) (*domain.Group, error)

	// ListGroups retrieves groups, optionally filtered by company.
	ListGroups(ctx context.Context, actorID, companyID string, activeOnly bool) ([]domain.Group, error)

	// UpdateGroup applies the closed set of editable group fields.
	UpdateGroup(ctx context.Context, actorID, groupID string, req dto.UpdateGroupRequest) (*domain.Group, error)

	// DeactivateGroup soft-deletes a group.
	DeactivateGroup(ctx context.Context, actorID, groupID string) error
}
