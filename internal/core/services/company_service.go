package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portsrepo "github.com/tooff-app/tooff-backend/internal/core/ports/repositories"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/dto"
)

// companyService implements the CompanySvcFacade interface.
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
	userRepo    portsrepo.UserReader
	scope       portssvc.ScopeResolverSvc
}

// NewCompanyService creates a new company service with the provided dependencies.
func NewCompanyService(
	companyRepo portsrepo.CompanyRepositoryFacade,
	userRepo portsrepo.UserReader,
	scope portssvc.ScopeResolverSvc,
) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		scope:       scope,
	}
}

// Ensure companyService implements the CompanySvcFacade interface
var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) requireRH(ctx context.Context, actorID string) (*domain.User, error) {
	actor, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrActorNotFound, actorID)
		}
		return nil, err
	}
	if actor.Role != domain.RoleRH {
		return nil, fmt.Errorf("%w: RH role required", apperrors.ErrForbidden)
	}
	return actor, nil
}

// CreateCompany registers a new company. RH only.
func (s *companyService) CreateCompany(ctx context.Context, actorID string, req dto.CreateCompanyRequest) (*domain.Company, error) {
	if _, err := s.requireRH(ctx, actorID); err != nil {
		return nil, err
	}

	now := time.Now()
	company := domain.Company{
		CompanyID: uuid.NewString(),
		TaxID:     req.TaxID,
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("company_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

// GetCompany retrieves a company the actor may observe.
func (s *companyService) GetCompany(ctx context.Context, actorID, companyID string) (*domain.Company, error) {
	allowed, err := s.scope.CanAccessCompany(ctx, actorID, companyID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: company %s is outside actor scope", apperrors.ErrForbidden, companyID)
	}
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

// ListCompanies lists companies within the actor's scope. Company data is
// only visible company-wide, so anything below company scope is denied.
func (s *companyService) ListCompanies(ctx context.Context, actorID string, activeOnly bool) ([]domain.Company, error) {
	scope, err := s.scope.ResolveScope(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if scope.Kind != domain.ScopeCompany {
		return nil, fmt.Errorf("%w: company listing requires company scope", apperrors.ErrForbidden)
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, scope.CompanyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Company{}, nil
		}
		return nil, err
	}
	if activeOnly && !company.IsActive {
		return []domain.Company{}, nil
	}
	return []domain.Company{*company}, nil
}

// UpdateCompany applies the closed set of editable company fields.
func (s *companyService) UpdateCompany(ctx context.Context, actorID, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	allowed, err := s.scope.CanAccessCompany(ctx, actorID, companyID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: company %s is outside actor scope", apperrors.ErrForbidden, companyID)
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	company.LastUpdatedAt = time.Now()
	company.LastUpdatedBy = actorID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		s.LogError(ctx, err, "Failed to update company", slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Company updated", slog.String("company_id", companyID))
	return company, nil
}

// DeactivateCompany soft-deletes a company. Companies are never hard-deleted.
func (s *companyService) DeactivateCompany(ctx context.Context, actorID, companyID string) error {
	allowed, err := s.scope.CanAccessCompany(ctx, actorID, companyID)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("%w: company %s is outside actor scope", apperrors.ErrForbidden, companyID)
	}

	if err := s.companyRepo.DeactivateCompany(ctx, companyID, actorID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate company", slog.String("company_id", companyID))
		return err
	}

	s.LogInfo(ctx, "Company deactivated", slog.String("company_id", companyID))
	return nil
}
