package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portsrepo "github.com/tooff-app/tooff-backend/internal/core/ports/repositories"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
)

// scopeService implements the ScopeResolverSvc interface. Every answer is
// derived transitively through the company -> group -> user chain; there is
// no direct company -> user shortcut, so any dangling intermediate reference
// degrades to a deny rather than an error.
type scopeService struct {
	BaseService
	userRepo  portsrepo.UserReader
	groupRepo portsrepo.GroupReader
}

// NewScopeService creates a new scope resolver with the provided dependencies.
// Event checks take the already-loaded event; the resolver itself only reads
// users and groups.
func NewScopeService(
	userRepo portsrepo.UserReader,
	groupRepo portsrepo.GroupReader,
) portssvc.ScopeResolverSvc {
	return &scopeService{
		userRepo:  userRepo,
		groupRepo: groupRepo,
	}
}

// Ensure scopeService implements the ScopeResolverSvc interface
var _ portssvc.ScopeResolverSvc = (*scopeService)(nil)

// fetchActor loads the acting user, translating a repository not-found into
// ErrActorNotFound. This is the one data condition a scope check reports as
// an error: with no actor there is no scope to compute.
func (s *scopeService) fetchActor(ctx context.Context, actorID string) (*domain.User, error) {
	actor, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrActorNotFound, actorID)
		}
		return nil, err
	}
	return actor, nil
}

// companyOf resolves the company a user belongs to via their group. Returns
// empty string when the chain cannot be resolved.
func (s *scopeService) companyOf(ctx context.Context, user *domain.User) string {
	if user.GroupID == "" {
		return ""
	}
	group, err := s.groupRepo.FindGroupByID(ctx, user.GroupID)
	if err != nil || group == nil {
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Group lookup failed during scope resolution",
				slog.String("group_id", user.GroupID), slog.String("error", err.Error()))
		}
		return ""
	}
	return group.CompanyID
}

// ResolveScope computes the actor's breadth of visibility. RH users see
// their whole company; COMUM users (manager or plain) see their group; a
// user with an unresolvable group falls back to self-only scope.
func (s *scopeService) ResolveScope(ctx context.Context, actorID string) (domain.Scope, error) {
	actor, err := s.fetchActor(ctx, actorID)
	if err != nil {
		return domain.Scope{}, err
	}

	if actor.Role == domain.RoleRH {
		if companyID := s.companyOf(ctx, actor); companyID != "" {
			return domain.Scope{Kind: domain.ScopeCompany, CompanyID: companyID}, nil
		}
		// RH without a resolvable company still only sees themself.
		return domain.Scope{Kind: domain.ScopeSelf, UserID: actor.UserID}, nil
	}

	if actor.GroupID != "" {
		if group, err := s.groupRepo.FindGroupByID(ctx, actor.GroupID); err == nil && group != nil {
			return domain.Scope{Kind: domain.ScopeGroup, GroupID: group.GroupID}, nil
		}
	}

	return domain.Scope{Kind: domain.ScopeSelf, UserID: actor.UserID}, nil
}

// CanAccessCompany reports whether the actor may observe company data.
func (s *scopeService) CanAccessCompany(ctx context.Context, actorID, companyID string) (bool, error) {
	actor, err := s.fetchActor(ctx, actorID)
	if err != nil {
		return false, err
	}
	if actor.Role != domain.RoleRH {
		return false, nil
	}
	return s.companyOf(ctx, actor) == companyID && companyID != "", nil
}

// CanAccessGroup reports whether the actor may observe group data.
func (s *scopeService) CanAccessGroup(ctx context.Context, actorID, groupID string) (bool, error) {
	actor, err := s.fetchActor(ctx, actorID)
	if err != nil {
		return false, err
	}

	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil // target not found: plain deny
		}
		return false, err
	}

	if actor.Role == domain.RoleRH {
		actorCompany := s.companyOf(ctx, actor)
		return actorCompany != "" && actorCompany == group.CompanyID, nil
	}

	// Managers act on their own group; plain members see it read-only.
	return actor.GroupID == groupID, nil
}

// CanAccessUser reports whether the actor may observe the target user.
func (s *scopeService) CanAccessUser(ctx context.Context, actorID, targetUserID string) (bool, error) {
	if actorID == targetUserID {
		return true, nil // self-access always allowed
	}

	actor, err := s.fetchActor(ctx, actorID)
	if err != nil {
		return false, err
	}

	target, err := s.userRepo.FindUserByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if actor.Role == domain.RoleRH {
		actorCompany := s.companyOf(ctx, actor)
		targetCompany := s.companyOf(ctx, target)
		return actorCompany != "" && actorCompany == targetCompany, nil
	}

	// Manager and plain COMUM alike: same group. Plain members get read-only
	// visibility of groupmates; write paths enforce elevation separately.
	return actor.GroupID != "" && actor.GroupID == target.GroupID, nil
}

// CanActOnEvent delegates to CanAccessUser on the event's owner.
func (s *scopeService) CanActOnEvent(ctx context.Context, actorID string, event *domain.Event) (bool, error) {
	if event == nil {
		return false, nil
	}
	return s.CanAccessUser(ctx, actorID, event.UserID)
}

// CanDecideEvent requires event visibility plus approval authority.
func (s *scopeService) CanDecideEvent(ctx context.Context, actorID string, event *domain.Event) (bool, error) {
	actor, err := s.fetchActor(ctx, actorID)
	if err != nil {
		return false, err
	}
	if !actor.CanDecide() {
		return false, nil
	}
	return s.CanActOnEvent(ctx, actorID, event)
}
