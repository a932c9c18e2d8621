package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/core/services"
	"github.com/tooff-app/tooff-backend/internal/dto"
	"github.com/tooff-app/tooff-backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo  *MockUserRepository
	mockGroupRepo *MockGroupRepository
	mockScope     *MockScopeResolver
	service       portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockGroupRepo = new(MockGroupRepository)
	suite.mockScope = new(MockScopeResolver)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockGroupRepo, suite.mockScope)
}

// --- CreateUser ---

func (suite *UserServiceTestSuite) TestCreateUser_ManagerInOwnGroup() {
	ctx := context.Background()
	groupID := uuid.NewString()
	manager := &domain.User{UserID: uuid.NewString(), Role: domain.RoleComum, IsManager: true, GroupID: groupID}

	req := dto.CreateUserRequest{
		Name:      "New Member",
		Email:     "New.Member@Example.COM",
		Password:  "password123",
		Role:      "COMUM",
		GroupID:   groupID,
		Region:    "rj",
		StartDate: "2025-01-15",
	}

	suite.mockUserRepo.On("FindUserByID", ctx, manager.UserID).Return(manager, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "new.member@example.com" &&
			user.Region == "RJ" &&
			user.PasswordHash != "password123" &&
			user.IsActive
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, manager.UserID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.UserID)
	suite.True(utils.CheckPasswordHash("password123", created.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_OutsideScopeDenied() {
	ctx := context.Background()
	member := &domain.User{UserID: uuid.NewString(), Role: domain.RoleComum, GroupID: uuid.NewString()}
	otherGroup := uuid.NewString()

	req := dto.CreateUserRequest{
		Name:      "New Member",
		Email:     "member@example.com",
		Password:  "password123",
		Role:      "COMUM",
		GroupID:   otherGroup,
		Region:    "SP",
		StartDate: "2025-01-15",
	}

	suite.mockUserRepo.On("FindUserByID", ctx, member.UserID).Return(member, nil).Once()

	created, err := suite.service.CreateUser(ctx, member.UserID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

// --- Authenticate ---

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "user@example.com", PasswordHash: hash, IsActive: true}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "user@example.com").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, " User@Example.com ", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "user@example.com", PasswordHash: hash, IsActive: true}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "user@example.com").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "user@example.com", "wrong")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmailSameError() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(ctx, "ghost@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_InactiveDenied() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "user@example.com", PasswordHash: hash, IsActive: false}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "user@example.com").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "user@example.com", "correct-horse")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
