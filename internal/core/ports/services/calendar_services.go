package services

import (
	"context"
	"time"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// CalendarSvcFacade answers pure reference-data questions about dates and
// exposes the holiday and region catalogs.
type CalendarSvcFacade interface {
	// IsPublicHoliday reports whether date is a national holiday, or a
	// regional holiday for region. An empty region checks national only.
	IsPublicHoliday(ctx context.Context, date time.Time, region string) (bool, error)

	// ListHolidays retrieves holidays visible for a region (national rows
	// always included). Empty region lists everything.
	ListHolidays(ctx context.Context, region string) ([]domain.Holiday, error)

	// CreateHoliday seeds a holiday row. RH only.
	CreateHoliday(ctx context.Context, actorID string, holiday domain.Holiday) (*domain.Holiday, error)

	// ListRegions retrieves the UF reference table.
	ListRegions(ctx context.Context) ([]domain.Region, error)
}
