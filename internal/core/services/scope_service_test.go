package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/core/services"
)

type ScopeServiceTestSuite struct {
	suite.Suite
	mockUserRepo  *MockUserRepository
	mockGroupRepo *MockGroupRepository
	service       portssvc.ScopeResolverSvc

	companyA string
	companyB string
	groupA1  string
	groupA2  string
	groupB1  string
}

func (suite *ScopeServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockGroupRepo = new(MockGroupRepository)
	suite.service = services.NewScopeService(suite.mockUserRepo, suite.mockGroupRepo)

	suite.companyA = uuid.NewString()
	suite.companyB = uuid.NewString()
	suite.groupA1 = uuid.NewString()
	suite.groupA2 = uuid.NewString()
	suite.groupB1 = uuid.NewString()
}

func (suite *ScopeServiceTestSuite) user(role domain.UserRole, isManager bool, groupID string) *domain.User {
	return &domain.User{
		UserID:    uuid.NewString(),
		Role:      role,
		IsManager: isManager,
		GroupID:   groupID,
		IsActive:  true,
	}
}

func (suite *ScopeServiceTestSuite) group(groupID, companyID string) *domain.Group {
	return &domain.Group{GroupID: groupID, CompanyID: companyID, IsActive: true}
}

// --- ResolveScope ---

func (suite *ScopeServiceTestSuite) TestResolveScope_RHGetsCompanyScope() {
	ctx := context.Background()
	rh := suite.user(domain.RoleRH, false, suite.groupA1)

	suite.mockUserRepo.On("FindUserByID", ctx, rh.UserID).Return(rh, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.groupA1).Return(suite.group(suite.groupA1, suite.companyA), nil).Once()

	scope, err := suite.service.ResolveScope(ctx, rh.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.ScopeCompany, scope.Kind)
	suite.Equal(suite.companyA, scope.CompanyID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *ScopeServiceTestSuite) TestResolveScope_MemberGetsGroupScope() {
	ctx := context.Background()
	member := suite.user(domain.RoleComum, false, suite.groupA1)

	suite.mockUserRepo.On("FindUserByID", ctx, member.UserID).Return(member, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.groupA1).Return(suite.group(suite.groupA1, suite.companyA), nil).Once()

	scope, err := suite.service.ResolveScope(ctx, member.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.ScopeGroup, scope.Kind)
	suite.Equal(suite.groupA1, scope.GroupID)
}

func (suite *ScopeServiceTestSuite) TestResolveScope_DanglingGroupFallsBackToSelf() {
	ctx := context.Background()
	member := suite.user(domain.RoleComum, false, suite.groupA1)

	suite.mockUserRepo.On("FindUserByID", ctx, member.UserID).Return(member, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.groupA1).Return(nil, apperrors.ErrNotFound).Once()

	scope, err := suite.service.ResolveScope(ctx, member.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.ScopeSelf, scope.Kind)
	suite.Equal(member.UserID, scope.UserID)
}

func (suite *ScopeServiceTestSuite) TestResolveScope_MissingActor() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, actorID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ResolveScope(ctx, actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrActorNotFound)
}

// --- CanAccessCompany ---

func (suite *ScopeServiceTestSuite) TestCanAccessCompany_RHSameCompany() {
	ctx := context.Background()
	rh := suite.user(domain.RoleRH, false, suite.groupA1)

	suite.mockUserRepo.On("FindUserByID", ctx, rh.UserID).Return(rh, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.groupA1).Return(suite.group(suite.groupA1, suite.companyA), nil).Once()

	allowed, err := suite.service.CanAccessCompany(ctx, rh.UserID, suite.companyA)

	suite.Require().NoError(err)
	suite.True(allowed)
}

func (suite *ScopeServiceTestSuite) TestCanAccessCompany_NonRHDenied() {
	ctx := context.Background()
	manager := suite.user(domain.RoleComum, true, suite.groupA1)

	suite.mockUserRepo.On("FindUserByID", ctx, manager.UserID).Return(manager, nil).Once()

	allowed, err := suite.service.CanAccessCompany(ctx, manager.UserID, suite.companyA)

	suite.Require().NoError(err)
	suite.False(allowed)
}

// --- CanAccessGroup ---

func (suite *ScopeServiceTestSuite) TestCanAccessGroup_RHSeesAllCompanyGroups() {
	ctx := context.Background()
	rh := suite.user(domain.RoleRH, false, suite.groupA1)

	suite.mockUserRepo.On("FindUserByID", ctx, rh.UserID).Return(rh, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.groupA2).Return(suite.group(suite.groupA2, suite.companyA), nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.groupA1).Return(suite.group(suite.groupA1, suite.companyA), nil).Once()

	allowed, err := suite.service.CanAccessGroup(ctx, rh.UserID, suite.groupA2)

	suite.Require().NoError(err)
	suite.True(allowed)
}

func (suite *ScopeServiceTestSuite) TestCanAccessGroup_MemberOwnGroupOnly() {
	ctx := context.Background()
	member := suite.user(domain.RoleComum, false, suite.groupA1)

	suite.mockUserRepo.On("FindUserByID", ctx, member.UserID).Return(member, nil).Twice()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.groupA1).Return(suite.group(suite.groupA1, suite.companyA), nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.groupA2).Return(suite.group(suite.groupA2, suite.companyA), nil).Once()

	allowed, err := suite.service.CanAccessGroup(ctx, member.UserID, suite.groupA1)
	suite.Require().NoError(err)
	suite.True(allowed)

	allowed, err = suite.service.CanAccessGroup(ctx, member.UserID, suite.groupA2)
	suite.Require().NoError(err)
	suite.False(allowed)
}

func (suite *ScopeServiceTestSuite) TestCanAccessGroup_MissingTargetDenies() {
	ctx := context.Background()
	member := suite.user(domain.RoleComum, false, suite.groupA1)
	unknownGroup := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, member.UserID).Return(member, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, unknownGroup).Return(nil, apperrors.ErrNotFound).Once()

	allowed, err := suite.service.CanAccessGroup(ctx, member.UserID, unknownGroup)

	suite.Require().NoError(err)
	suite.False(allowed)
}

// --- CanAccessUser ---

func (suite *ScopeServiceTestSuite) TestCanAccessUser_SelfAlwaysAllowed() {
	ctx := context.Background()
	userID := uuid.NewString()

	allowed, err := suite.service.CanAccessUser(ctx, userID, userID)

	suite.Require().NoError(err)
	suite.True(allowed)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID")
}

func (suite *ScopeServiceTestSuite) TestCanAccessUser_RHSameCompany() {
	ctx := context.Background()
	rh := suite.user(domain.RoleRH, false, suite.groupA1)
	target := suite.user(domain.RoleComum, false, suite.groupA2)

	suite.mockUserRepo.On("FindUserByID", ctx, rh.UserID).Return(rh, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.groupA1).Return(suite.group(suite.groupA1, suite.companyA), nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.groupA2).Return(suite.group(suite.groupA2, suite.companyA), nil).Once()

	allowed, err := suite.service.CanAccessUser(ctx, rh.UserID, target.UserID)

	suite.Require().NoError(err)
	suite.True(allowed)
}

func (suite *ScopeServiceTestSuite) TestCanAccessUser_RHCrossCompanyDenied() {
	ctx := context.Background()
	rh := suite.user(domain.RoleRH, false, suite.groupA1)
	target := suite.user(domain.RoleComum, false, suite.groupB1)

	suite.mockUserRepo.On("FindUserByID", ctx, rh.UserID).Return(rh, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.groupA1).Return(suite.group(suite.groupA1, suite.companyA), nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.groupB1).Return(suite.group(suite.groupB1, suite.companyB), nil).Once()

	allowed, err := suite.service.CanAccessUser(ctx, rh.UserID, target.UserID)

	suite.Require().NoError(err)
	suite.False(allowed)
}

func (suite *ScopeServiceTestSuite) TestCanAccessUser_MemberCrossGroupDenied() {
	ctx := context.Background()
	member := suite.user(domain.RoleComum, false, suite.groupA1)
	target := suite.user(domain.RoleComum, false, suite.groupA2)

	suite.mockUserRepo.On("FindUserByID", ctx, member.UserID).Return(member, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()

	allowed, err := suite.service.CanAccessUser(ctx, member.UserID, target.UserID)

	suite.Require().NoError(err)
	suite.False(allowed)
}

func (suite *ScopeServiceTestSuite) TestCanAccessUser_MissingTargetDenies() {
	ctx := context.Background()
	member := suite.user(domain.RoleComum, false, suite.groupA1)
	unknownUser := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, member.UserID).Return(member, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, unknownUser).Return(nil, apperrors.ErrNotFound).Once()

	allowed, err := suite.service.CanAccessUser(ctx, member.UserID, unknownUser)

	suite.Require().NoError(err)
	suite.False(allowed)
}

// --- CanDecideEvent ---

func (suite *ScopeServiceTestSuite) TestCanDecideEvent_ManagerSameGroup() {
	ctx := context.Background()
	manager := suite.user(domain.RoleComum, true, suite.groupA1)
	owner := suite.user(domain.RoleComum, false, suite.groupA1)
	event := &domain.Event{EventID: uuid.NewString(), UserID: owner.UserID, Status: domain.StatusPending}

	suite.mockUserRepo.On("FindUserByID", ctx, manager.UserID).Return(manager, nil).Twice()
	suite.mockUserRepo.On("FindUserByID", ctx, owner.UserID).Return(owner, nil).Once()

	allowed, err := suite.service.CanDecideEvent(ctx, manager.UserID, event)

	suite.Require().NoError(err)
	suite.True(allowed)
}

func (suite *ScopeServiceTestSuite) TestCanDecideEvent_PlainMemberDeniedOwnEvent() {
	ctx := context.Background()
	member := suite.user(domain.RoleComum, false, suite.groupA1)
	event := &domain.Event{EventID: uuid.NewString(), UserID: member.UserID, Status: domain.StatusPending}

	suite.mockUserRepo.On("FindUserByID", ctx, member.UserID).Return(member, nil).Once()

	allowed, err := suite.service.CanDecideEvent(ctx, member.UserID, event)

	suite.Require().NoError(err)
	suite.False(allowed)
}

func TestScopeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScopeServiceTestSuite))
}
