package services

import (
	"context"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// ScopeResolverSvc is the single source of truth for every "may actor X act
// on entity Y" answer in the application. Permission is always derived
// transitively through the company -> group -> user chain.
//
// All pairwise checks fail closed: a missing target or a dangling
// intermediate reference yields false with a nil error. The only error these
// methods return for a data condition is apperrors.ErrActorNotFound, raised
// when the acting user record itself cannot be located.
type ScopeResolverSvc interface {
	// ResolveScope computes the breadth of visibility for the actor:
	// company-wide for RH, group-wide for COMUM users with a resolvable
	// group, self-only otherwise.
	ResolveScope(ctx context.Context, actorID string) (domain.Scope, error)

	// CanAccessCompany reports whether the actor may observe company data.
	// Only RH users of the same company qualify.
	CanAccessCompany(ctx context.Context, actorID, companyID string) (bool, error)

	// CanAccessGroup reports whether the actor may observe group data:
	// RH of the same company, the group's manager, or a plain member of the
	// group (read-only).
	CanAccessGroup(ctx context.Context, actorID, groupID string) (bool, error)

	// CanAccessUser reports whether the actor may observe the target user.
	// Self-access is always allowed regardless of role.
	CanAccessUser(ctx context.Context, actorID, targetUserID string) (bool, error)

	// CanActOnEvent reports whether the actor may observe or touch the
	// event, delegating to CanAccessUser on the event's owner.
	CanActOnEvent(ctx context.Context, actorID string, event *domain.Event) (bool, error)

	// CanDecideEvent reports whether the actor may approve or reject the
	// event: CanActOnEvent plus approval authority (RH or manager flag).
	// Plain COMUM members are always denied, including for their own events.
	CanDecideEvent(ctx context.Context, actorID string, event *domain.Event) (bool, error)
}
