package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portsrepo "github.com/tooff-app/tooff-backend/internal/core/ports/repositories"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
)

// calendarService implements the CalendarSvcFacade interface over the
// holiday and region reference tables.
type calendarService struct {
	BaseService
	holidayRepo portsrepo.HolidayRepositoryFacade
	regionRepo  portsrepo.RegionReader
	userRepo    portsrepo.UserReader
}

// NewCalendarService creates a new calendar reference-data service.
func NewCalendarService(
	holidayRepo portsrepo.HolidayRepositoryFacade,
	regionRepo portsrepo.RegionReader,
	userRepo portsrepo.UserReader,
) portssvc.CalendarSvcFacade {
	return &calendarService{
		holidayRepo: holidayRepo,
		regionRepo:  regionRepo,
		userRepo:    userRepo,
	}
}

// Ensure calendarService implements the CalendarSvcFacade interface
var _ portssvc.CalendarSvcFacade = (*calendarService)(nil)

// IsPublicHoliday reports whether date is a holiday for the region. National
// holidays apply everywhere; an empty region checks national rows only.
func (s *calendarService) IsPublicHoliday(ctx context.Context, date time.Time, region string) (bool, error) {
	national, err := s.holidayRepo.NationalHolidayExists(ctx, date)
	if err != nil {
		return false, err
	}
	if national {
		return true, nil
	}

	region = domain.NormalizeRegion(region)
	if region == "" {
		return false, nil
	}
	return s.holidayRepo.RegionalHolidayExists(ctx, date, region)
}

// ListHolidays retrieves holidays for a region (national rows included).
func (s *calendarService) ListHolidays(ctx context.Context, region string) ([]domain.Holiday, error) {
	holidays, err := s.holidayRepo.ListHolidays(ctx, domain.NormalizeRegion(region))
	if err != nil {
		s.LogError(ctx, err, "Failed to list holidays", slog.String("region", region))
		return nil, err
	}
	if holidays == nil {
		return []domain.Holiday{}, nil
	}
	return holidays, nil
}

// CreateHoliday seeds a holiday row. Only RH users may touch reference data.
func (s *calendarService) CreateHoliday(ctx context.Context, actorID string, holiday domain.Holiday) (*domain.Holiday, error) {
	actor, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrActorNotFound, actorID)
		}
		return nil, err
	}
	if actor.Role != domain.RoleRH {
		return nil, fmt.Errorf("%w: only RH may manage holidays", apperrors.ErrForbidden)
	}

	holiday.Region = domain.NormalizeRegion(holiday.Region)
	if holiday.Kind == domain.HolidayRegional {
		if holiday.Region == "" {
			return nil, fmt.Errorf("%w: regional holiday requires a region", apperrors.ErrValidation)
		}
		if _, err := s.regionRepo.FindRegionByCode(ctx, holiday.Region); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown region %s", apperrors.ErrValidation, holiday.Region)
			}
			return nil, err
		}
	}
	if holiday.Kind == domain.HolidayNational {
		holiday.Region = ""
	}

	if err := s.holidayRepo.SaveHoliday(ctx, holiday); err != nil {
		s.LogError(ctx, err, "Failed to save holiday",
			slog.String("date", holiday.Date.Format("2006-01-02")))
		return nil, err
	}

	s.LogInfo(ctx, "Holiday created",
		slog.String("date", holiday.Date.Format("2006-01-02")),
		slog.String("kind", string(holiday.Kind)))
	return &holiday, nil
}

// ListRegions retrieves the UF reference table.
func (s *calendarService) ListRegions(ctx context.Context) ([]domain.Region, error) {
	regions, err := s.regionRepo.ListRegions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list regions")
		return nil, err
	}
	if regions == nil {
		return []domain.Region{}, nil
	}
	return regions, nil
}
