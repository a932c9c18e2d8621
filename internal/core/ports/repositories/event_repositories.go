package repositories

import (
	"context"
	"time"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// EventListFilter narrows ListEvents results. Zero values mean "no filter".
type EventListFilter struct {
	UserID    string
	GroupID   string // Matches the owning user's group
	CompanyID string // Matches the owning user's group's company
	Status    domain.EventStatus
}

// EventReader defines read operations for absence events
type EventReader interface {
	// FindEventByID retrieves a specific event by its ID.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// ListEvents retrieves events matching the filter.
	ListEvents(ctx context.Context, filter EventListFilter) ([]domain.Event, error)

	// ListApprovedEventsInWindow retrieves approved events of one absence type
	// owned by userID whose start date falls in [from, to).
	ListApprovedEventsInWindow(ctx context.Context, userID, absenceTypeID string, from, to time.Time) ([]domain.Event, error)
}

// EventWriter defines write operations for absence events
type EventWriter interface {
	// SaveEvent persists a new event.
	SaveEvent(ctx context.Context, event domain.Event) error

	// UpdateEvent updates a pending or decided event's editable fields and
	// recomputed day count.
	UpdateEvent(ctx context.Context, event domain.Event) error

	// TransitionEventStatus atomically moves an event from PENDING to the
	// given terminal status, recording the approver and decision time. It
	// returns apperrors.ErrInvalidTransition when the event is no longer
	// pending, without mutating the row.
	TransitionEventStatus(ctx context.Context, eventID string, to domain.EventStatus, approverID string, decidedAt time.Time) error

	// DeleteEvent removes an event (hard delete).
	DeleteEvent(ctx context.Context, eventID string) error
}

// EventRepositoryFacade combines all event-related repository interfaces
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
