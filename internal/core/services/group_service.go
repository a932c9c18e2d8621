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

// groupService implements the GroupSvcFacade interface.
type groupService struct {
	BaseService
	groupRepo portsrepo.GroupRepositoryFacade
	userRepo  portsrepo.UserReader
	scope     portssvc.ScopeResolverSvc
}

// NewGroupService creates a new group service with the provided dependencies.
func NewGroupService(
	groupRepo portsrepo.GroupRepositoryFacade,
	userRepo portsrepo.UserReader,
	scope portssvc.ScopeResolverSvc,
) portssvc.GroupSvcFacade {
	return &groupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
		scope:     scope,
	}
}

// Ensure groupService implements the GroupSvcFacade interface
var _ portssvc.GroupSvcFacade = (*groupService)(nil)

// CreateGroup registers a new group under a company the actor controls.
// Creating groups is a company-level concern, so only RH of the owning
// company qualifies.
func (s *groupService) CreateGroup(ctx context.Context, actorID string, req dto.CreateGroupRequest) (*domain.Group, error) {
	allowed, err := s.scope.CanAccessCompany(ctx, actorID, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: company %s is outside actor scope", apperrors.ErrForbidden, req.CompanyID)
	}

	now := time.Now()
	group := domain.Group{
		GroupID:     uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		CompanyID:   req.CompanyID,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.groupRepo.SaveGroup(ctx, group); err != nil {
		s.LogError(ctx, err, "Failed to save group", slog.String("group_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Group created", slog.String("group_id", group.GroupID))
	return &group, nil
}

// GetGroup retrieves a group the actor may observe.
func (s *groupService) GetGroup(ctx context.Context, actorID, groupID string) (*domain.Group, error) {
	allowed, err := s.scope.CanAccessGroup(ctx, actorID, groupID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: group %s is outside actor scope", apperrors.ErrForbidden, groupID)
	}
	return s.groupRepo.FindGroupByID(ctx, groupID)
}

// ListGroups lists groups within the actor's resolved scope.
func (s *groupService) ListGroups(ctx context.Context, actorID, companyID string, activeOnly bool) ([]domain.Group, error) {
	scope, err := s.scope.ResolveScope(ctx, actorID)
	if err != nil {
		return nil, err
	}

	switch scope.Kind {
	case domain.ScopeCompany:
		if companyID == "" {
			companyID = scope.CompanyID
		}
		if companyID != scope.CompanyID {
			return nil, fmt.Errorf("%w: company %s is outside actor scope", apperrors.ErrForbidden, companyID)
		}
		groups, err := s.groupRepo.ListGroups(ctx, companyID, activeOnly)
		if err != nil {
			s.LogError(ctx, err, "Failed to list groups", slog.String("company_id", companyID))
			return nil, err
		}
		if groups == nil {
			return []domain.Group{}, nil
		}
		return groups, nil
	case domain.ScopeGroup:
		group, err := s.groupRepo.FindGroupByID(ctx, scope.GroupID)
		if err != nil {
			return nil, err
		}
		if activeOnly && !group.IsActive {
			return []domain.Group{}, nil
		}
		return []domain.Group{*group}, nil
	default:
		return []domain.Group{}, nil
	}
}

// UpdateGroup applies the closed set of editable group fields. RH of the
// owning company or the group's manager may update.
func (s *groupService) UpdateGroup(ctx context.Context, actorID, groupID string, req dto.UpdateGroupRequest) (*domain.Group, error) {
	allowed, err := s.canManageGroup(ctx, actorID, groupID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: group %s is outside actor scope", apperrors.ErrForbidden, groupID)
	}

	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.Phone != nil {
		group.Phone = *req.Phone
	}
	group.LastUpdatedAt = time.Now()
	group.LastUpdatedBy = actorID

	if err := s.groupRepo.UpdateGroup(ctx, *group); err != nil {
		s.LogError(ctx, err, "Failed to update group", slog.String("group_id", groupID))
		return nil, err
	}

	s.LogInfo(ctx, "Group updated", slog.String("group_id", groupID))
	return group, nil
}

// DeactivateGroup soft-deletes a group.
func (s *groupService) DeactivateGroup(ctx context.Context, actorID, groupID string) error {
	allowed, err := s.canManageGroup(ctx, actorID, groupID)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("%w: group %s is outside actor scope", apperrors.ErrForbidden, groupID)
	}

	if err := s.groupRepo.DeactivateGroup(ctx, groupID, actorID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate group", slog.String("group_id", groupID))
		return err
	}

	s.LogInfo(ctx, "Group deactivated", slog.String("group_id", groupID))
	return nil
}

// canManageGroup is the write-side check: group visibility alone is not
// enough, the actor must hold company scope over the group's company or be
// the group's own manager.
func (s *groupService) canManageGroup(ctx context.Context, actorID, groupID string) (bool, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return false, err
	}

	allowed, err := s.scope.CanAccessCompany(ctx, actorID, group.CompanyID)
	if err != nil {
		return false, err
	}
	if allowed {
		return true, nil
	}

	// Group scope covers plain members too; only the group's own manager
	// gets write access below company scope.
	actor, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, fmt.Errorf("%w: %s", apperrors.ErrActorNotFound, actorID)
		}
		return false, err
	}
	return actor.IsManager && actor.GroupID == groupID, nil
}
