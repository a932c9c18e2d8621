package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/core/services"
)

type CalendarServiceTestSuite struct {
	suite.Suite
	mockHolidayRepo *MockHolidayRepository
	mockRegionRepo  *MockRegionRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.CalendarSvcFacade
	ctx             context.Context
}

func (suite *CalendarServiceTestSuite) SetupTest() {
	suite.mockHolidayRepo = new(MockHolidayRepository)
	suite.mockRegionRepo = new(MockRegionRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewCalendarService(suite.mockHolidayRepo, suite.mockRegionRepo, suite.mockUserRepo)
	suite.ctx = context.Background()
}

func (suite *CalendarServiceTestSuite) TestIsPublicHoliday_NationalAppliesToEveryRegion() {
	date := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)
	suite.mockHolidayRepo.On("NationalHolidayExists", suite.ctx, date).Return(true, nil).Once()

	isHoliday, err := suite.service.IsPublicHoliday(suite.ctx, date, "SP")

	suite.Require().NoError(err)
	suite.True(isHoliday)
	suite.mockHolidayRepo.AssertNotCalled(suite.T(), "RegionalHolidayExists")
}

func (suite *CalendarServiceTestSuite) TestIsPublicHoliday_RegionalLookupNormalizesRegion() {
	date := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)
	suite.mockHolidayRepo.On("NationalHolidayExists", suite.ctx, date).Return(false, nil).Once()
	suite.mockHolidayRepo.On("RegionalHolidayExists", suite.ctx, date, "SP").Return(true, nil).Once()

	isHoliday, err := suite.service.IsPublicHoliday(suite.ctx, date, " sp ")

	suite.Require().NoError(err)
	suite.True(isHoliday)
	suite.mockHolidayRepo.AssertExpectations(suite.T())
}

func (suite *CalendarServiceTestSuite) TestIsPublicHoliday_EmptyRegionChecksNationalOnly() {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	suite.mockHolidayRepo.On("NationalHolidayExists", suite.ctx, date).Return(false, nil).Once()

	isHoliday, err := suite.service.IsPublicHoliday(suite.ctx, date, "")

	suite.Require().NoError(err)
	suite.False(isHoliday)
	suite.mockHolidayRepo.AssertNotCalled(suite.T(), "RegionalHolidayExists")
}

func (suite *CalendarServiceTestSuite) TestCreateHoliday_RegionalWithUnknownRegionRejected() {
	rh := &domain.User{UserID: "rh-1", Role: domain.RoleRH, GroupID: "g1"}
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "rh-1").Return(rh, nil).Once()
	suite.mockRegionRepo.On("FindRegionByCode", suite.ctx, "XX").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateHoliday(suite.ctx, "rh-1", domain.Holiday{
		Date:        time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC),
		Region:      "xx",
		Description: "Constitutionalist Revolution",
		Kind:        domain.HolidayRegional,
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockHolidayRepo.AssertNotCalled(suite.T(), "SaveHoliday")
}

func (suite *CalendarServiceTestSuite) TestCreateHoliday_NonRHForbidden() {
	member := &domain.User{UserID: "u1", Role: domain.RoleComum, GroupID: "g1"}
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "u1").Return(member, nil).Once()

	_, err := suite.service.CreateHoliday(suite.ctx, "u1", domain.Holiday{
		Date:        time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		Description: "Christmas",
		Kind:        domain.HolidayNational,
	})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockHolidayRepo.AssertNotCalled(suite.T(), "SaveHoliday")
}

func (suite *CalendarServiceTestSuite) TestCreateHoliday_NationalClearsRegion() {
	rh := &domain.User{UserID: "rh-1", Role: domain.RoleRH, GroupID: "g1"}
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "rh-1").Return(rh, nil).Once()
	suite.mockHolidayRepo.On("SaveHoliday", suite.ctx, domain.Holiday{
		Date:        time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		Region:      "",
		Description: "Christmas",
		Kind:        domain.HolidayNational,
	}).Return(nil).Once()

	created, err := suite.service.CreateHoliday(suite.ctx, "rh-1", domain.Holiday{
		Date:        time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		Region:      "sp",
		Description: "Christmas",
		Kind:        domain.HolidayNational,
	})

	suite.Require().NoError(err)
	suite.Equal("", created.Region)
	suite.mockHolidayRepo.AssertExpectations(suite.T())
}

func TestCalendarServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarServiceTestSuite))
}
