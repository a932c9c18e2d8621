package services

import (
	"context"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
	"github.com/tooff-app/tooff-backend/internal/dto"
)

// UserReaderSvc is the narrow read surface other services depend on.
type UserReaderSvc interface {
	// GetUserByID retrieves a user without scope checks. Internal use only.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserSvcFacade handles user CRUD with scope enforcement.
type UserSvcFacade interface {
	UserReaderSvc

	// CreateUser registers a new user in a group the actor controls.
	CreateUser(ctx context.Context, actorID string, req dto.CreateUserRequest) (*domain.User, error)

	// GetUser retrieves a user the actor may observe.
	GetUser(ctx context.Context, actorID, targetUserID string) (*domain.User, error)

	// ListUsers retrieves users within the actor's scope, narrowed by filters.
	ListUsers(ctx context.Context, actorID string, params dto.ListUsersParams) ([]domain.User, error)

	// UpdateUser applies the closed set of editable user fields.
	UpdateUser(ctx context.Context, actorID, targetUserID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeactivateUser soft-deletes a user.
	DeactivateUser(ctx context.Context, actorID, targetUserID string) error

	// Authenticate verifies email/password and returns the active user.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// AbsenceTypeSvcFacade handles the absence-type and shift catalogs.
type AbsenceTypeSvcFacade interface {
	// CreateAbsenceType adds a catalog row. RH only.
	CreateAbsenceType(ctx context.Context, actorID string, req dto.CreateAbsenceTypeRequest) (*domain.AbsenceType, error)

	// GetAbsenceType retrieves a catalog row.
	GetAbsenceType(ctx context.Context, absenceTypeID string) (*domain.AbsenceType, error)

	// ListAbsenceTypes retrieves the full catalog.
	ListAbsenceTypes(ctx context.Context) ([]domain.AbsenceType, error)

	// CreateShift adds a shift row. RH only.
	CreateShift(ctx context.Context, actorID string, req dto.CreateShiftRequest) (*domain.Shift, error)

	// GetShift retrieves a shift row.
	GetShift(ctx context.Context, shiftID string) (*domain.Shift, error)

	// ListShifts retrieves the full shift catalog.
	ListShifts(ctx context.Context) ([]domain.Shift, error)
}
