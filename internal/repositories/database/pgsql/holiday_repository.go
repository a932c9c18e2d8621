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

type PgxHolidayRepository struct {
	BaseRepository
}

// newPgxHolidayRepository creates a new repository for holiday reference data.
func newPgxHolidayRepository(pool *pgxpool.Pool) portsrepo.HolidayRepositoryFacade {
	return &PgxHolidayRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxHolidayRepository implements portsrepo.HolidayRepositoryFacade
var _ portsrepo.HolidayRepositoryFacade = (*PgxHolidayRepository)(nil)

var FULL_HOLIDAY_SELECT_QUERY = `
SELECT h.date, h.region, h.description, h.kind
FROM holidays h
`

func (r *PgxHolidayRepository) getHolidays(ctx context.Context, filterQuery string, args ...any) ([]domain.Holiday, error) {
	query := FULL_HOLIDAY_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query holidays", err)
	}
	defer rows.Close()
	holidays, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Holiday])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Holiday{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect holiday rows", err)
	}
	return holidays, nil
}

func (r *PgxHolidayRepository) NationalHolidayExists(ctx context.Context, date time.Time) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM holidays WHERE date = $1 AND kind = 'NATIONAL')`
	if err := r.Pool.QueryRow(ctx, query, date).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check national holiday", err)
	}
	return exists, nil
}

func (r *PgxHolidayRepository) RegionalHolidayExists(ctx context.Context, date time.Time, region string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM holidays WHERE date = $1 AND region = $2 AND kind = 'REGIONAL')`
	if err := r.Pool.QueryRow(ctx, query, date, region).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check regional holiday", err)
	}
	return exists, nil
}

func (r *PgxHolidayRepository) ListHolidays(ctx context.Context, region string) ([]domain.Holiday, error) {
	filter := `
		WHERE h.kind = 'NATIONAL' OR ($1 <> '' AND h.region = $1)
		ORDER BY h.date, h.region
	`
	return r.getHolidays(ctx, filter, region)
}

func (r *PgxHolidayRepository) SaveHoliday(ctx context.Context, holiday domain.Holiday) error {
	query := `
		INSERT INTO holidays (date, region, description, kind)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, holiday.Date, holiday.Region, holiday.Description, holiday.Kind)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("holiday on " + holiday.Date.Format("2006-01-02") + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("region " + holiday.Region + " does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save holiday", err)
	}
	return nil
}

type PgxRegionRepository struct {
	BaseRepository
}

// newPgxRegionRepository creates a new repository for the UF reference table.
func newPgxRegionRepository(pool *pgxpool.Pool) portsrepo.RegionReader {
	return &PgxRegionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxRegionRepository implements portsrepo.RegionReader
var _ portsrepo.RegionReader = (*PgxRegionRepository)(nil)

func (r *PgxRegionRepository) FindRegionByCode(ctx context.Context, code string) (*domain.Region, error) {
	rows, err := r.Pool.Query(ctx, `SELECT code, numeric FROM uf WHERE code = $1`, code)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query region "+code, err)
	}
	defer rows.Close()
	regions, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Region])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect region rows", err)
	}
	if len(regions) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &regions[0], nil
}

func (r *PgxRegionRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	rows, err := r.Pool.Query(ctx, `SELECT code, numeric FROM uf ORDER BY code`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query regions", err)
	}
	defer rows.Close()
	regions, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Region])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect region rows", err)
	}
	return regions, nil
}
