package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/dto"
	"github.com/tooff-app/tooff-backend/internal/handlers"
	"github.com/tooff-app/tooff-backend/internal/middleware"
)

// --- Mock EventService ---
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, actorID string, req dto.CreateEventRequest) (*domain.Event, error) {
	args := m.Called(ctx, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) GetEvent(ctx context.Context, actorID, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, actorID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) ListEvents(ctx context.Context, actorID string, params dto.ListEventsParams) ([]domain.Event, error) {
	args := m.Called(ctx, actorID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventService) EditEvent(ctx context.Context, actorID, eventID string, req dto.UpdateEventRequest) (*domain.Event, error) {
	args := m.Called(ctx, actorID, eventID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) ApproveEvent(ctx context.Context, actorID, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, actorID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) RejectEvent(ctx context.Context, actorID, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, actorID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) DeleteEvent(ctx context.Context, actorID, eventID string) error {
	args := m.Called(ctx, actorID, eventID)
	return args.Error(0)
}

var _ portssvc.EventSvcFacade = (*MockEventService)(nil)

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

var _ portssvc.VacationSvcFacade = (*MockVacationService)(nil)

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

var _ portssvc.ScopeResolverSvc = (*MockScopeResolver)(nil)

// --- Test Suite ---
type EventHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockEventService    *MockEventService
	mockVacationService *MockVacationService
	mockScopeResolver   *MockScopeResolver
	jwtSecret           string
}

func (suite *EventHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "tooff-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockEventService = new(MockEventService)
	suite.mockVacationService = new(MockVacationService)
	suite.mockScopeResolver = new(MockScopeResolver)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterEventRoutes(v1, suite.mockEventService, suite.mockVacationService, suite.mockScopeResolver, 30)
}

func (suite *EventHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *EventHandlerTestSuite) TestCreateEvent_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateEventRequest{
		UserID:        userID,
		AbsenceTypeID: uuid.NewString(),
		Region:        "SP",
		StartDate:     "2025-07-01",
		EndDate:       "2025-07-15",
	}
	created := &domain.Event{
		EventID:       uuid.NewString(),
		UserID:        userID,
		AbsenceTypeID: reqBody.AbsenceTypeID,
		Region:        "SP",
		StartDate:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		TotalDays:     15,
		Status:        domain.StatusPending,
		ApproverID:    userID,
	}

	suite.mockEventService.On("CreateEvent", mock.Anything, userID, reqBody).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/events", userID, reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EventResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.EventID, resp.EventID)
	suite.Equal(15, resp.TotalDays)
	suite.Equal("PENDING", resp.Status)
	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestCreateEvent_MissingDatesRejected() {
	userID := uuid.NewString()
	reqBody := map[string]string{"userID": userID}

	w := suite.doRequest(http.MethodPost, "/api/v1/events", userID, reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEventService.AssertNotCalled(suite.T(), "CreateEvent")
}

func (suite *EventHandlerTestSuite) TestCreateEvent_NoTokenUnauthorized() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/events", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *EventHandlerTestSuite) TestApproveEvent_Success() {
	actor := uuid.NewString()
	eventID := uuid.NewString()
	decidedAt := time.Now()
	decided := &domain.Event{
		EventID:    eventID,
		UserID:     uuid.NewString(),
		Status:     domain.StatusApproved,
		ApproverID: actor,
		DecidedAt:  &decidedAt,
	}

	suite.mockEventService.On("ApproveEvent", mock.Anything, actor, eventID).Return(decided, nil).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/events/%s/approve", eventID), actor, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EventResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("APPROVED", resp.Status)
	suite.Equal(actor, resp.ApproverID)
}

func (suite *EventHandlerTestSuite) TestApproveEvent_ForbiddenForPlainMember() {
	actor := uuid.NewString()
	eventID := uuid.NewString()

	suite.mockEventService.On("ApproveEvent", mock.Anything, actor, eventID).
		Return(nil, fmt.Errorf("%w: actor may not decide event %s", apperrors.ErrForbidden, eventID)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/events/%s/approve", eventID), actor, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *EventHandlerTestSuite) TestRejectEvent_AlreadyDecidedConflict() {
	actor := uuid.NewString()
	eventID := uuid.NewString()

	suite.mockEventService.On("RejectEvent", mock.Anything, actor, eventID).
		Return(nil, fmt.Errorf("%w: event %s is APPROVED", apperrors.ErrInvalidTransition, eventID)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/events/%s/reject", eventID), actor, nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *EventHandlerTestSuite) TestVacationSummary_DefaultsToActor() {
	actor := uuid.NewString()

	suite.mockScopeResolver.On("CanAccessUser", mock.Anything, actor, actor).Return(true, nil).Once()
	suite.mockVacationService.On("CheckVacationAllowance", mock.Anything, actor, mock.AnythingOfType("time.Time"), 0).
		Return(20, false, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/events/vacation-summary", actor, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.VacationSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(actor, resp.UserID)
	suite.Equal(20, resp.ApprovedDays)
	suite.Equal(30, resp.AllowanceDays)
	suite.False(resp.Exceeded)
}

func (suite *EventHandlerTestSuite) TestVacationSummary_OutOfScopeUserForbidden() {
	actor := uuid.NewString()
	other := uuid.NewString()

	suite.mockScopeResolver.On("CanAccessUser", mock.Anything, actor, other).Return(false, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/events/vacation-summary?user_id="+other, actor, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockVacationService.AssertNotCalled(suite.T(), "CheckVacationAllowance")
}

func (suite *EventHandlerTestSuite) TestListEvents_InvalidStatusRejected() {
	actor := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/events?status=BOGUS", actor, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEventService.AssertNotCalled(suite.T(), "ListEvents")
}

func TestEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}
