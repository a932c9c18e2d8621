package services

import (
	portsrepo "github.com/tooff-app/tooff-backend/internal/core/ports/repositories"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The scope resolver comes first since most services depend on it.
	container.Scope = NewScopeService(repos.UserRepo, repos.GroupRepo)

	container.Company = NewCompanyService(repos.CompanyRepo, repos.UserRepo, container.Scope)
	container.Group = NewGroupService(repos.GroupRepo, repos.UserRepo, container.Scope)
	container.User = NewUserService(repos.UserRepo, repos.GroupRepo, container.Scope)
	container.AbsenceType = NewAbsenceTypeService(repos.AbsenceTypeRepo, repos.ShiftRepo, repos.UserRepo)

	container.Vacation = NewVacationService(repos.EventRepo, repos.AbsenceTypeRepo, cfg.VacationAllowanceDays)
	container.Event = NewEventService(
		repos.EventRepo,
		repos.UserRepo,
		repos.AbsenceTypeRepo,
		container.Scope,
		container.Vacation,
		cfg.VacationAllowanceDays,
	)

	container.Calendar = NewCalendarService(repos.HolidayRepo, repos.RegionRepo, repos.UserRepo)

	container.Token = NewTokenService(cfg)

	return container
}
