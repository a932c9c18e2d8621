package services

import (
	"context"
	"time"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
	"github.com/tooff-app/tooff-backend/internal/dto"
)

// EventSvcFacade owns the absence-event lifecycle: creation, edits, the
// pending -> approved/rejected transition, and deletion. Every operation
// takes the acting user's ID explicitly; there is no ambient actor state.
type EventSvcFacade interface {
	// CreateEvent files a new absence event in PENDING status. Plain COMUM
	// actors may only file for themselves.
	CreateEvent(ctx context.Context, actorID string, req dto.CreateEventRequest) (*domain.Event, error)

	// GetEvent retrieves an event the actor is allowed to observe.
	GetEvent(ctx context.Context, actorID, eventID string) (*domain.Event, error)

	// ListEvents retrieves events visible to the actor, narrowed by the
	// request filters. Filters outside the actor's scope are rejected.
	ListEvents(ctx context.Context, actorID string, params dto.ListEventsParams) ([]domain.Event, error)

	// EditEvent applies a closed set of field changes. Pending-only for
	// plain members (own events); elevated actors may edit in-scope events
	// regardless of status. TotalDays is recomputed on any date change.
	EditEvent(ctx context.Context, actorID, eventID string, req dto.UpdateEventRequest) (*domain.Event, error)

	// ApproveEvent moves a PENDING event to APPROVED, recording the actor
	// as approver. Non-pending events yield ErrInvalidTransition.
	ApproveEvent(ctx context.Context, actorID, eventID string) (*domain.Event, error)

	// RejectEvent moves a PENDING event to REJECTED, recording the actor
	// as approver. Non-pending events yield ErrInvalidTransition.
	RejectEvent(ctx context.Context, actorID, eventID string) (*domain.Event, error)

	// DeleteEvent removes an event. Elevated actors may delete any in-scope
	// event regardless of status; plain members only their own while PENDING.
	DeleteEvent(ctx context.Context, actorID, eventID string) error
}

// VacationSvcFacade computes the rolling-window vacation accrual figures.
type VacationSvcFacade interface {
	// ApprovedVacationDays sums TotalDays of the user's APPROVED events of
	// the vacation absence type whose start date falls in
	// [refDate-365d, refDate). A catalog with no vacation row yields 0.
	ApprovedVacationDays(ctx context.Context, userID string, refDate time.Time) (int, error)

	// CheckVacationAllowance returns the already-approved figure and whether
	// adding requestedDays would exceed the allowance. Advisory: callers
	// decide what to do with an exceeded flag.
	CheckVacationAllowance(ctx context.Context, userID string, refDate time.Time, requestedDays int) (taken int, exceeded bool, err error)
}
