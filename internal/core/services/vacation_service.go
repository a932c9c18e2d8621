package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portsrepo "github.com/tooff-app/tooff-backend/internal/core/ports/repositories"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
)

// accrualWindow is the trailing period over which approved vacation days are
// summed. A fixed 365 days, not a calendar year.
const accrualWindow = 365 * 24 * time.Hour

// vacationService implements the VacationSvcFacade interface.
type vacationService struct {
	BaseService
	eventRepo       portsrepo.EventReader
	absenceTypeRepo portsrepo.AbsenceTypeReader
	allowanceDays   int
}

// NewVacationService creates a new vacation accrual calculator.
func NewVacationService(
	eventRepo portsrepo.EventReader,
	absenceTypeRepo portsrepo.AbsenceTypeReader,
	allowanceDays int,
) portssvc.VacationSvcFacade {
	return &vacationService{
		eventRepo:       eventRepo,
		absenceTypeRepo: absenceTypeRepo,
		allowanceDays:   allowanceDays,
	}
}

// Ensure vacationService implements the VacationSvcFacade interface
var _ portssvc.VacationSvcFacade = (*vacationService)(nil)

// ApprovedVacationDays sums TotalDays of the user's approved vacation events
// whose start date falls in [refDate-365d, refDate). The catalog is seeded
// externally; a missing vacation row yields 0 rather than an error.
func (s *vacationService) ApprovedVacationDays(ctx context.Context, userID string, refDate time.Time) (int, error) {
	vacationType, err := s.absenceTypeRepo.FindAbsenceTypeByDescription(ctx, domain.VacationDescription)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No vacation absence type in catalog, accrual is zero")
			return 0, nil
		}
		return 0, err
	}

	from := refDate.Add(-accrualWindow)
	events, err := s.eventRepo.ListApprovedEventsInWindow(ctx, userID, vacationType.AbsenceTypeID, from, refDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to list approved vacation events",
			slog.String("user_id", userID))
		return 0, err
	}

	total := 0
	for _, e := range events {
		total += e.TotalDays
	}
	return total, nil
}

// CheckVacationAllowance reports the already-approved figure and whether
// requestedDays on top of it would exceed the allowance.
func (s *vacationService) CheckVacationAllowance(ctx context.Context, userID string, refDate time.Time, requestedDays int) (int, bool, error) {
	taken, err := s.ApprovedVacationDays(ctx, userID, refDate)
	if err != nil {
		return 0, false, err
	}
	return taken, taken+requestedDays > s.allowanceDays, nil
}
