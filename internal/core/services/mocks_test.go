package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portsrepo "github.com/tooff-app/tooff-backend/internal/core/ports/repositories"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, filter portsrepo.UserListFilter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock GroupRepository ---

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	var group *domain.Group
	if args.Get(0) != nil {
		group = args.Get(0).(*domain.Group)
	}
	return group, args.Error(1)
}

func (m *MockGroupRepository) ListGroups(ctx context.Context, companyID string, activeOnly bool) ([]domain.Group, error) {
	args := m.Called(ctx, companyID, activeOnly)
	var groups []domain.Group
	if args.Get(0) != nil {
		groups = args.Get(0).([]domain.Group)
	}
	return groups, args.Error(1)
}

func (m *MockGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) DeactivateGroup(ctx context.Context, groupID string, updatedBy string) error {
	args := m.Called(ctx, groupID, updatedBy)
	return args.Error(0)
}

// --- Mock CompanyRepository ---

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, activeOnly bool) ([]domain.Company, error) {
	args := m.Called(ctx, activeOnly)
	var companies []domain.Company
	if args.Get(0) != nil {
		companies = args.Get(0).([]domain.Company)
	}
	return companies, args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeactivateCompany(ctx context.Context, companyID string, updatedBy string) error {
	args := m.Called(ctx, companyID, updatedBy)
	return args.Error(0)
}

// --- Mock EventRepository ---

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	var event *domain.Event
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.Event)
	}
	return event, args.Error(1)
}

func (m *MockEventRepository) ListEvents(ctx context.Context, filter portsrepo.EventListFilter) ([]domain.Event, error) {
	args := m.Called(ctx, filter)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) ListApprovedEventsInWindow(ctx context.Context, userID, absenceTypeID string, from, to time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, userID, absenceTypeID, from, to)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) TransitionEventStatus(ctx context.Context, eventID string, to domain.EventStatus, approverID string, decidedAt time.Time) error {
	args := m.Called(ctx, eventID, to, approverID, decidedAt)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// --- Mock AbsenceTypeRepository ---

type MockAbsenceTypeRepository struct {
	mock.Mock
}

func (m *MockAbsenceTypeRepository) FindAbsenceTypeByID(ctx context.Context, absenceTypeID string) (*domain.AbsenceType, error) {
	args := m.Called(ctx, absenceTypeID)
	var absenceType *domain.AbsenceType
	if args.Get(0) != nil {
		absenceType = args.Get(0).(*domain.AbsenceType)
	}
	return absenceType, args.Error(1)
}

func (m *MockAbsenceTypeRepository) FindAbsenceTypeByDescription(ctx context.Context, description string) (*domain.AbsenceType, error) {
	args := m.Called(ctx, description)
	var absenceType *domain.AbsenceType
	if args.Get(0) != nil {
		absenceType = args.Get(0).(*domain.AbsenceType)
	}
	return absenceType, args.Error(1)
}

func (m *MockAbsenceTypeRepository) ListAbsenceTypes(ctx context.Context) ([]domain.AbsenceType, error) {
	args := m.Called(ctx)
	var types []domain.AbsenceType
	if args.Get(0) != nil {
		types = args.Get(0).([]domain.AbsenceType)
	}
	return types, args.Error(1)
}

func (m *MockAbsenceTypeRepository) SaveAbsenceType(ctx context.Context, absenceType domain.AbsenceType) error {
	args := m.Called(ctx, absenceType)
	return args.Error(0)
}

// --- Mock HolidayRepository ---

type MockHolidayRepository struct {
	mock.Mock
}

func (m *MockHolidayRepository) NationalHolidayExists(ctx context.Context, date time.Time) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockHolidayRepository) RegionalHolidayExists(ctx context.Context, date time.Time, region string) (bool, error) {
	args := m.Called(ctx, date, region)
	return args.Bool(0), args.Error(1)
}

func (m *MockHolidayRepository) ListHolidays(ctx context.Context, region string) ([]domain.Holiday, error) {
	args := m.Called(ctx, region)
	var holidays []domain.Holiday
	if args.Get(0) != nil {
		holidays = args.Get(0).([]domain.Holiday)
	}
	return holidays, args.Error(1)
}

func (m *MockHolidayRepository) SaveHoliday(ctx context.Context, holiday domain.Holiday) error {
	args := m.Called(ctx, holiday)
	return args.Error(0)
}

// --- Mock RegionRepository ---

type MockRegionRepository struct {
	mock.Mock
}

func (m *MockRegionRepository) FindRegionByCode(ctx context.Context, code string) (*domain.Region, error) {
	args := m.Called(ctx, code)
	var region *domain.Region
	if args.Get(0) != nil {
		region = args.Get(0).(*domain.Region)
	}
	return region, args.Error(1)
}

func (m *MockRegionRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	args := m.Called(ctx)
	var regions []domain.Region
	if args.Get(0) != nil {
		regions = args.Get(0).([]domain.Region)
	}
	return regions, args.Error(1)
}

// --- Mock ScopeResolver ---

type MockScopeResolver struct {
	mock.Mock
}

func (m *MockScopeResolver) ResolveScope(ctx context.Context, actorID string) (domain.Scope, error) {
	args := m.Called(ctx, actorID)
	return args.Get(0).(domain.Scope), args.Error(1)
}

func (m *MockScopeResolver) CanAccessCompany(ctx context.Context, actorID, companyID string) (bool, error) {
	args := m.Called(ctx, actorID, companyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockScopeResolver) CanAccessGroup(ctx context.Context, actorID, groupID string) (bool, error) {
	args := m.Called(ctx, actorID, groupID)
	return args.Bool(0), args.Error(1)
}

func (m *MockScopeResolver) CanAccessUser(ctx context.Context, actorID, targetUserID string) (bool, error) {
	args := m.Called(ctx, actorID, targetUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockScopeResolver) CanActOnEvent(ctx context.Context, actorID string, event *domain.Event) (bool, error) {
	args := m.Called(ctx, actorID, event)
	return args.Bool(0), args.Error(1)
}

func (m *MockScopeResolver) CanDecideEvent(ctx context.Context, actorID string, event *domain.Event) (bool, error) {
	args := m.Called(ctx, actorID, event)
	return args.Bool(0), args.Error(1)
}

// --- Mock VacationService ---

type MockVacationService struct {
	mock.Mock
}

func (m *MockVacationService) ApprovedVacationDays(ctx context.Context, userID string, refDate time.Time) (int, error) {
	args := m.Called(ctx, userID, refDate)
	return args.Int(0), args.Error(1)
}

func (m *MockVacationService) CheckVacationAllowance(ctx context.Context, userID string, refDate time.Time, requestedDays int) (int, bool, error) {
	args := m.Called(ctx, userID, refDate, requestedDays)
	return args.Int(0), args.Bool(1), args.Error(2)
}
