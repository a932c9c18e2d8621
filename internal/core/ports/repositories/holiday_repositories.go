package repositories

import (
	"context"
	"time"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// HolidayReader defines read operations for holiday reference data
type HolidayReader interface {
	// NationalHolidayExists reports whether a national holiday falls on date.
	NationalHolidayExists(ctx context.Context, date time.Time) (bool, error)

	// RegionalHolidayExists reports whether a regional holiday falls on
	// (date, region).
	RegionalHolidayExists(ctx context.Context, date time.Time, region string) (bool, error)

	// ListHolidays retrieves holidays, optionally restricted to one region.
	// National holidays are always included.
	ListHolidays(ctx context.Context, region string) ([]domain.Holiday, error)
}

// HolidayWriter defines write operations for holiday reference data
type HolidayWriter interface {
	// SaveHoliday persists a holiday row of either kind.
	SaveHoliday(ctx context.Context, holiday domain.Holiday) error
}

// HolidayRepositoryFacade combines holiday repository interfaces
type HolidayRepositoryFacade interface {
	HolidayReader
	HolidayWriter
}

// RegionReader defines read operations for the UF reference table
type RegionReader interface {
	// FindRegionByCode retrieves a UF row by its two-letter code.
	FindRegionByCode(ctx context.Context, code string) (*domain.Region, error)

	// ListRegions retrieves all UF rows.
	ListRegions(ctx context.Context) ([]domain.Region, error)
}
