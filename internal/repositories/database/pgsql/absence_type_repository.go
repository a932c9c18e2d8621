package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portsrepo "github.com/tooff-app/tooff-backend/internal/core/ports/repositories"
)

type PgxAbsenceTypeRepository struct {
	BaseRepository
}

// newPgxAbsenceTypeRepository creates a new repository for the absence-type catalog.
func newPgxAbsenceTypeRepository(pool *pgxpool.Pool) portsrepo.AbsenceTypeRepositoryFacade {
	return &PgxAbsenceTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAbsenceTypeRepository implements portsrepo.AbsenceTypeRepositoryFacade
var _ portsrepo.AbsenceTypeRepositoryFacade = (*PgxAbsenceTypeRepository)(nil)

var FULL_ABSENCE_TYPE_SELECT_QUERY = `
SELECT
	t.absence_type_id, t.description, t.uses_shift,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM absence_types t
`

func (r *PgxAbsenceTypeRepository) getAbsenceTypes(ctx context.Context, filterQuery string, args ...any) ([]domain.AbsenceType, error) {
	query := FULL_ABSENCE_TYPE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query absence types", err)
	}
	defer rows.Close()
	types, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AbsenceType])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.AbsenceType{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect absence type rows", err)
	}
	return types, nil
}

func (r *PgxAbsenceTypeRepository) FindAbsenceTypeByID(ctx context.Context, absenceTypeID string) (*domain.AbsenceType, error) {
	types, err := r.getAbsenceTypes(ctx, `WHERE t.absence_type_id = $1`, absenceTypeID)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &types[0], nil
}

func (r *PgxAbsenceTypeRepository) FindAbsenceTypeByDescription(ctx context.Context, description string) (*domain.AbsenceType, error) {
	filter := `WHERE LOWER(TRIM(t.description)) = LOWER(TRIM($1)) ORDER BY t.created_at LIMIT 1`
	types, err := r.getAbsenceTypes(ctx, filter, description)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &types[0], nil
}

func (r *PgxAbsenceTypeRepository) ListAbsenceTypes(ctx context.Context) ([]domain.AbsenceType, error) {
	return r.getAbsenceTypes(ctx, `ORDER BY t.description`)
}

func (r *PgxAbsenceTypeRepository) SaveAbsenceType(ctx context.Context, absenceType domain.AbsenceType) error {
	query := `
		INSERT INTO absence_types (
			absence_type_id, description, uses_shift,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		absenceType.AbsenceTypeID,
		absenceType.Description,
		absenceType.UsesShift,
		absenceType.CreatedAt,
		absenceType.CreatedBy,
		absenceType.LastUpdatedAt,
		absenceType.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("absence type " + absenceType.Description + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save absence type "+absenceType.AbsenceTypeID, err)
	}
	return nil
}

type PgxShiftRepository struct {
	BaseRepository
}

// newPgxShiftRepository creates a new repository for the shift catalog.
func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxShiftRepository implements portsrepo.ShiftRepositoryFacade
var _ portsrepo.ShiftRepositoryFacade = (*PgxShiftRepository)(nil)

var FULL_SHIFT_SELECT_QUERY = `
SELECT
	s.shift_id, s.description,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
FROM shifts s
`

func (r *PgxShiftRepository) getShifts(ctx context.Context, filterQuery string, args ...any) ([]domain.Shift, error) {
	query := FULL_SHIFT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query shifts", err)
	}
	defer rows.Close()
	shifts, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Shift])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Shift{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect shift rows", err)
	}
	return shifts, nil
}

func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	shifts, err := r.getShifts(ctx, `WHERE s.shift_id = $1`, shiftID)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &shifts[0], nil
}

func (r *PgxShiftRepository) ListShifts(ctx context.Context) ([]domain.Shift, error) {
	return r.getShifts(ctx, `ORDER BY s.description`)
}

func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	query := `
		INSERT INTO shifts (
			shift_id, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		shift.ShiftID,
		shift.Description,
		shift.CreatedAt,
		shift.CreatedBy,
		shift.LastUpdatedAt,
		shift.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("shift " + shift.Description + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save shift "+shift.ShiftID, err)
	}
	return nil
}
