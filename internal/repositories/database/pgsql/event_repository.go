package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portsrepo "github.com/tooff-app/tooff-backend/internal/core/ports/repositories"
)

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for absence event data.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEventRepository implements portsrepo.EventRepositoryFacade
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

var FULL_EVENT_SELECT_QUERY = `
SELECT
	e.event_id, e.user_id, e.absence_type_id, e.region,
	e.start_date, e.end_date, e.total_days, e.status,
	e.approver_id, e.decided_at,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
FROM events e
`

func (r *PgxEventRepository) getEvents(ctx context.Context, filterQuery string, args ...any) ([]domain.Event, error) {
	query := FULL_EVENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query events", err)
	}
	defer rows.Close()
	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Event])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Event{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect event rows", err)
	}
	return events, nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	events, err := r.getEvents(ctx, `WHERE e.event_id = $1`, eventID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &events[0], nil
}

func (r *PgxEventRepository) ListEvents(ctx context.Context, filter portsrepo.EventListFilter) ([]domain.Event, error) {
	// Group and company filters resolve through the owning user, so the
	// result tracks the user's current membership rather than a snapshot
	// taken when the event was filed.
	filterQuery := `
		JOIN users u ON u.user_id = e.user_id
		JOIN groups g ON g.group_id = u.group_id
		WHERE ($1 = '' OR e.user_id = $1)
		AND ($2 = '' OR u.group_id = $2)
		AND ($3 = '' OR g.company_id = $3)
		AND ($4 = '' OR e.status = $4)
		ORDER BY e.start_date DESC, e.event_id
	`
	return r.getEvents(ctx, filterQuery, filter.UserID, filter.GroupID, filter.CompanyID, string(filter.Status))
}

func (r *PgxEventRepository) ListApprovedEventsInWindow(ctx context.Context, userID, absenceTypeID string, from, to time.Time) ([]domain.Event, error) {
	filterQuery := `
		WHERE e.user_id = $1
		AND e.absence_type_id = $2
		AND e.status = 'APPROVED'
		AND e.start_date >= $3
		AND e.start_date < $4
		ORDER BY e.start_date
	`
	return r.getEvents(ctx, filterQuery, userID, absenceTypeID, from, to)
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	query := `
		INSERT INTO events (
			event_id, user_id, absence_type_id, region,
			start_date, end_date, total_days, status,
			approver_id, decided_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		event.EventID,
		event.UserID,
		event.AbsenceTypeID,
		event.Region,
		event.StartDate,
		event.EndDate,
		event.TotalDays,
		event.Status,
		event.ApproverID,
		event.DecidedAt,
		event.CreatedAt,
		event.CreatedBy,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("event ID " + event.EventID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("event references a user or absence type that does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save event "+event.EventID, err)
	}
	return nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	query := `
		UPDATE events SET
			absence_type_id = $2, region = $3, start_date = $4, end_date = $5,
			total_days = $6, last_updated_at = $7, last_updated_by = $8
		WHERE event_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		event.EventID,
		event.AbsenceTypeID,
		event.Region,
		event.StartDate,
		event.EndDate,
		event.TotalDays,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("event references an absence type that does not exist")
		}
		return apperrors.NewAppError(500, "failed to update event "+event.EventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEventRepository) TransitionEventStatus(ctx context.Context, eventID string, to domain.EventStatus, approverID string, decidedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// The status predicate makes the decision atomic: of two concurrent
	// approvers only one UPDATE matches, the other sees zero rows. The
	// existence check runs in the same transaction so it reflects the row
	// the UPDATE saw.
	query := `
		UPDATE events SET
			status = $2, approver_id = $3, decided_at = $4,
			last_updated_at = $4, last_updated_by = $3
		WHERE event_id = $1 AND status = 'PENDING';
	`
	tag, err := tx.Exec(ctx, query, eventID, to, approverID, decidedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to transition event "+eventID, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE event_id = $1)`, eventID).Scan(&exists); err != nil {
			return apperrors.NewAppError(500, "failed to check event "+eventID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrInvalidTransition
	}

	return r.Commit(ctx, tx)
}

func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM events WHERE event_id = $1`, eventID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete event "+eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
