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

// eventService implements the EventSvcFacade interface. It owns the
// pending -> approved/rejected lifecycle and routes every permission
// question through the scope resolver.
type eventService struct {
	BaseService
	eventRepo       portsrepo.EventRepositoryFacade
	userRepo        portsrepo.UserReader
	absenceTypeRepo portsrepo.AbsenceTypeReader
	scope           portssvc.ScopeResolverSvc
	vacation        portssvc.VacationSvcFacade
	allowanceDays   int
}

// NewEventService creates a new event service with the provided dependencies.
func NewEventService(
	eventRepo portsrepo.EventRepositoryFacade,
	userRepo portsrepo.UserReader,
	absenceTypeRepo portsrepo.AbsenceTypeReader,
	scope portssvc.ScopeResolverSvc,
	vacation portssvc.VacationSvcFacade,
	allowanceDays int,
) portssvc.EventSvcFacade {
	return &eventService{
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		absenceTypeRepo: absenceTypeRepo,
		scope:           scope,
		vacation:        vacation,
		allowanceDays:   allowanceDays,
	}
}

// Ensure eventService implements the EventSvcFacade interface
var _ portssvc.EventSvcFacade = (*eventService)(nil)

func parseDate(value string) (time.Time, error) {
	d, err := time.ParseInLocation(dto.DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, value)
	}
	return d, nil
}

func (s *eventService) fetchActor(ctx context.Context, actorID string) (*domain.User, error) {
	actor, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrActorNotFound, actorID)
		}
		return nil, err
	}
	return actor, nil
}

// CreateEvent files a new absence event. The event starts PENDING with the
// creating actor as placeholder approver until a real decision is recorded.
func (s *eventService) CreateEvent(ctx context.Context, actorID string, req dto.CreateEventRequest) (*domain.Event, error) {
	actor, err := s.fetchActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	// A plain member may only file events for themself.
	if !actor.IsElevated() && req.UserID != actorID {
		return nil, fmt.Errorf("%w: cannot create events for other users", apperrors.ErrForbidden)
	}

	allowed, err := s.scope.CanAccessUser(ctx, actorID, req.UserID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: user %s is outside actor scope", apperrors.ErrForbidden, req.UserID)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if startDate.After(endDate) {
		return nil, fmt.Errorf("%w: start date after end date", apperrors.ErrValidation)
	}

	absenceType, err := s.absenceTypeRepo.FindAbsenceTypeByID(ctx, req.AbsenceTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: absence type %s not found", apperrors.ErrValidation, req.AbsenceTypeID)
		}
		return nil, err
	}

	now := time.Now()
	event := domain.Event{
		EventID:       uuid.NewString(),
		UserID:        req.UserID,
		AbsenceTypeID: absenceType.AbsenceTypeID,
		Region:        domain.NormalizeRegion(req.Region),
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        domain.StatusPending,
		ApproverID:    actorID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	event.RecomputeTotalDays()

	// The accrual check is advisory: the figure is computed and surfaced but
	// does not block creation.
	if absenceType.IsVacation() {
		taken, exceeded, verr := s.vacation.CheckVacationAllowance(ctx, req.UserID, startDate, event.TotalDays)
		if verr != nil {
			s.LogError(ctx, verr, "Vacation allowance check failed",
				slog.String("user_id", req.UserID))
		} else if exceeded {
			s.LogWarn(ctx, "Vacation allowance exceeded",
				slog.String("user_id", req.UserID),
				slog.Int("approved_days", taken),
				slog.Int("requested_days", event.TotalDays),
				slog.Int("allowance_days", s.allowanceDays))
		}
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to save event",
			slog.String("event_id", event.EventID), slog.String("user_id", event.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Event created",
		slog.String("event_id", event.EventID),
		slog.String("user_id", event.UserID),
		slog.Int("total_days", event.TotalDays))
	return &event, nil
}

// GetEvent retrieves an event the actor may observe.
func (s *eventService) GetEvent(ctx context.Context, actorID, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.scope.CanActOnEvent(ctx, actorID, event)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: event %s is outside actor scope", apperrors.ErrForbidden, eventID)
	}
	return event, nil
}

// ListEvents retrieves events visible to the actor. Requested filters are
// narrowed to the actor's resolved scope; filters pointing outside it are
// denied rather than silently widened.
func (s *eventService) ListEvents(ctx context.Context, actorID string, params dto.ListEventsParams) ([]domain.Event, error) {
	scope, err := s.scope.ResolveScope(ctx, actorID)
	if err != nil {
		return nil, err
	}

	filter := portsrepo.EventListFilter{Status: domain.EventStatus(params.Status)}

	switch scope.Kind {
	case domain.ScopeCompany:
		filter.CompanyID = scope.CompanyID
		if params.GroupID != "" {
			allowed, err := s.scope.CanAccessGroup(ctx, actorID, params.GroupID)
			if err != nil {
				return nil, err
			}
			if !allowed {
				return nil, fmt.Errorf("%w: group %s is outside actor scope", apperrors.ErrForbidden, params.GroupID)
			}
			filter.GroupID = params.GroupID
			filter.CompanyID = ""
		}
	case domain.ScopeGroup:
		filter.GroupID = scope.GroupID
		if params.GroupID != "" && params.GroupID != scope.GroupID {
			return nil, fmt.Errorf("%w: group %s is outside actor scope", apperrors.ErrForbidden, params.GroupID)
		}
	default:
		filter.UserID = actorID
	}

	if params.UserID != "" {
		allowed, err := s.scope.CanAccessUser(ctx, actorID, params.UserID)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, fmt.Errorf("%w: user %s is outside actor scope", apperrors.ErrForbidden, params.UserID)
		}
		filter.UserID = params.UserID
	}

	events, err := s.eventRepo.ListEvents(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events")
		return nil, err
	}
	if events == nil {
		return []domain.Event{}, nil
	}
	return events, nil
}

// EditEvent applies the closed patch set to an event. TotalDays is
// recomputed whenever either date changes.
func (s *eventService) EditEvent(ctx context.Context, actorID, eventID string, req dto.UpdateEventRequest) (*domain.Event, error) {
	actor, err := s.fetchActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.scope.CanActOnEvent(ctx, actorID, event)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: event %s is outside actor scope", apperrors.ErrForbidden, eventID)
	}

	if !actor.IsElevated() {
		if event.UserID != actorID {
			return nil, fmt.Errorf("%w: cannot edit another user's event", apperrors.ErrForbidden)
		}
		if event.Status != domain.StatusPending {
			return nil, fmt.Errorf("%w: event %s is %s", apperrors.ErrInvalidTransition, eventID, event.Status)
		}
	}

	datesChanged := false
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		event.StartDate = start
		datesChanged = true
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		event.EndDate = end
		datesChanged = true
	}
	if datesChanged {
		if event.StartDate.After(event.EndDate) {
			return nil, fmt.Errorf("%w: start date after end date", apperrors.ErrValidation)
		}
		event.RecomputeTotalDays()
	}
	if req.AbsenceTypeID != nil {
		if _, err := s.absenceTypeRepo.FindAbsenceTypeByID(ctx, *req.AbsenceTypeID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: absence type %s not found", apperrors.ErrValidation, *req.AbsenceTypeID)
			}
			return nil, err
		}
		event.AbsenceTypeID = *req.AbsenceTypeID
	}
	if req.Region != nil {
		event.Region = domain.NormalizeRegion(*req.Region)
	}

	event.LastUpdatedAt = time.Now()
	event.LastUpdatedBy = actorID

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "Failed to update event", slog.String("event_id", eventID))
		return nil, err
	}

	s.LogInfo(ctx, "Event updated", slog.String("event_id", eventID))
	return event, nil
}

// ApproveEvent moves a PENDING event to APPROVED.
func (s *eventService) ApproveEvent(ctx context.Context, actorID, eventID string) (*domain.Event, error) {
	return s.decideEvent(ctx, actorID, eventID, domain.StatusApproved)
}

// RejectEvent moves a PENDING event to REJECTED.
func (s *eventService) RejectEvent(ctx context.Context, actorID, eventID string) (*domain.Event, error) {
	return s.decideEvent(ctx, actorID, eventID, domain.StatusRejected)
}

// decideEvent is the shared approve/reject path. The repository performs the
// actual transition conditionally on the row still being PENDING, so two
// concurrent decisions cannot both win.
func (s *eventService) decideEvent(ctx context.Context, actorID, eventID string, to domain.EventStatus) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.scope.CanDecideEvent(ctx, actorID, event)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: actor may not decide event %s", apperrors.ErrForbidden, eventID)
	}

	if event.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: event %s is %s", apperrors.ErrInvalidTransition, eventID, event.Status)
	}

	decidedAt := time.Now()
	if err := s.eventRepo.TransitionEventStatus(ctx, eventID, to, actorID, decidedAt); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to transition event status",
				slog.String("event_id", eventID), slog.String("to", string(to)))
		}
		return nil, err
	}

	event.Status = to
	event.ApproverID = actorID
	event.DecidedAt = &decidedAt
	event.LastUpdatedAt = decidedAt
	event.LastUpdatedBy = actorID

	s.LogInfo(ctx, "Event decided",
		slog.String("event_id", eventID),
		slog.String("status", string(to)),
		slog.String("approver_id", actorID))
	return event, nil
}

// DeleteEvent removes an event. Hard delete in every case; elevated actors
// may delete regardless of status, plain members only their own pending ones.
func (s *eventService) DeleteEvent(ctx context.Context, actorID, eventID string) error {
	actor, err := s.fetchActor(ctx, actorID)
	if err != nil {
		return err
	}

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return err
	}

	allowed, err := s.scope.CanActOnEvent(ctx, actorID, event)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("%w: event %s is outside actor scope", apperrors.ErrForbidden, eventID)
	}

	if !actor.IsElevated() {
		if event.UserID != actorID {
			return fmt.Errorf("%w: cannot delete another user's event", apperrors.ErrForbidden)
		}
		if event.Status != domain.StatusPending {
			return fmt.Errorf("%w: event %s is %s", apperrors.ErrInvalidTransition, eventID, event.Status)
		}
	}

	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		s.LogError(ctx, err, "Failed to delete event", slog.String("event_id", eventID))
		return err
	}

	s.LogInfo(ctx, "Event deleted", slog.String("event_id", eventID))
	return nil
}
