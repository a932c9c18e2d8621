package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/tooff-app/tooff-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	groupRepo := newPgxGroupRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	eventRepo := newPgxEventRepository(dbPool)
	absenceTypeRepo := newPgxAbsenceTypeRepository(dbPool)
	shiftRepo := newPgxShiftRepository(dbPool)
	holidayRepo := newPgxHolidayRepository(dbPool)
	regionRepo := newPgxRegionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CompanyRepo:     companyRepo,
		GroupRepo:       groupRepo,
		UserRepo:        userRepo,
		EventRepo:       eventRepo,
		AbsenceTypeRepo: absenceTypeRepo,
		ShiftRepo:       shiftRepo,
		HolidayRepo:     holidayRepo,
		RegionRepo:      regionRepo,
	}
}
