package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portsrepo "github.com/tooff-app/tooff-backend/internal/core/ports/repositories"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/dto"
	"github.com/tooff-app/tooff-backend/internal/utils"
)

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo  portsrepo.UserRepositoryFacade
	groupRepo portsrepo.GroupReader
	scope     portssvc.ScopeResolverSvc
}

// NewUserService creates a new user service with the provided dependencies.
func NewUserService(
	userRepo portsrepo.UserRepositoryFacade,
	groupRepo portsrepo.GroupReader,
	scope portssvc.ScopeResolverSvc,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:  userRepo,
		groupRepo: groupRepo,
		scope:     scope,
	}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user without scope checks. Internal use only.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) fetchActor(ctx context.Context, actorID string) (*domain.User, error) {
	actor, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrActorNotFound, actorID)
		}
		return nil, err
	}
	return actor, nil
}

// canManageUsersIn reports whether the actor administers the given group:
// RH of the owning company, or the group's own manager.
func (s *userService) canManageUsersIn(ctx context.Context, actor *domain.User, groupID string) (bool, error) {
	if actor.IsManager && actor.GroupID == groupID {
		return true, nil
	}
	if actor.Role != domain.RoleRH {
		return false, nil
	}
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.scope.CanAccessCompany(ctx, actor.UserID, group.CompanyID)
}

// CreateUser registers a new user in a group the actor administers.
func (s *userService) CreateUser(ctx context.Context, actorID string, req dto.CreateUserRequest) (*domain.User, error) {
	actor, err := s.fetchActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canManageUsersIn(ctx, actor, req.GroupID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: group %s is outside actor scope", apperrors.ErrForbidden, req.GroupID)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         domain.UserRole(req.Role),
		IsManager:    req.IsManager,
		GroupID:      req.GroupID,
		Region:       domain.NormalizeRegion(req.Region),
		StartDate:    startDate,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", user.Email))
		return nil, err
	}

	s.LogInfo(ctx, "User created",
		slog.String("new_user_id", user.UserID), slog.String("group_id", user.GroupID))
	return &user, nil
}

// GetUser retrieves a user the actor may observe.
func (s *userService) GetUser(ctx context.Context, actorID, targetUserID string) (*domain.User, error) {
	allowed, err := s.scope.CanAccessUser(ctx, actorID, targetUserID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: user %s is outside actor scope", apperrors.ErrForbidden, targetUserID)
	}
	return s.userRepo.FindUserByID(ctx, targetUserID)
}

// ListUsers retrieves users within the actor's resolved scope.
func (s *userService) ListUsers(ctx context.Context, actorID string, params dto.ListUsersParams) ([]domain.User, error) {
	scope, err := s.scope.ResolveScope(ctx, actorID)
	if err != nil {
		return nil, err
	}

	filter := portsrepo.UserListFilter{
		Role:       domain.UserRole(params.Role),
		ActiveOnly: true,
	}

	switch scope.Kind {
	case domain.ScopeCompany:
		if params.GroupID != "" {
			allowed, err := s.scope.CanAccessGroup(ctx, actorID, params.GroupID)
			if err != nil {
				return nil, err
			}
			if !allowed {
				return nil, fmt.Errorf("%w: group %s is outside actor scope", apperrors.ErrForbidden, params.GroupID)
			}
		}
		filter.GroupID = params.GroupID
	case domain.ScopeGroup:
		if params.GroupID != "" && params.GroupID != scope.GroupID {
			return nil, fmt.Errorf("%w: group %s is outside actor scope", apperrors.ErrForbidden, params.GroupID)
		}
		filter.GroupID = scope.GroupID
	default:
		self, err := s.userRepo.FindUserByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
		return []domain.User{*self}, nil
	}

	users, err := s.userRepo.ListUsers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// UpdateUser applies the closed set of editable user fields. Users may edit
// their own profile fields; role, manager flag and group moves require an
// actor that administers the target's group.
func (s *userService) UpdateUser(ctx context.Context, actorID, targetUserID string, req dto.UpdateUserRequest) (*domain.User, error) {
	actor, err := s.fetchActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	target, err := s.userRepo.FindUserByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	elevatedChange := req.Role != nil || req.IsManager != nil || req.GroupID != nil
	if actorID == targetUserID && !elevatedChange {
		// Self-service profile update, always allowed.
	} else {
		allowed, err := s.canManageUsersIn(ctx, actor, target.GroupID)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, fmt.Errorf("%w: user %s is outside actor scope", apperrors.ErrForbidden, targetUserID)
		}
	}

	if req.Name != nil {
		target.Name = *req.Name
	}
	if req.Email != nil {
		target.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password")
			return nil, err
		}
		target.PasswordHash = hash
	}
	if req.Role != nil {
		target.Role = domain.UserRole(*req.Role)
	}
	if req.IsManager != nil {
		target.IsManager = *req.IsManager
	}
	if req.Region != nil {
		target.Region = domain.NormalizeRegion(*req.Region)
	}
	if req.GroupID != nil {
		// Moving a user requires authority over the destination group too.
		allowed, err := s.canManageUsersIn(ctx, actor, *req.GroupID)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, fmt.Errorf("%w: group %s is outside actor scope", apperrors.ErrForbidden, *req.GroupID)
		}
		target.GroupID = *req.GroupID
	}

	target.LastUpdatedAt = time.Now()
	target.LastUpdatedBy = actorID

	if err := s.userRepo.UpdateUser(ctx, *target); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("target_user_id", targetUserID))
		return nil, err
	}

	s.LogInfo(ctx, "User updated", slog.String("target_user_id", targetUserID))
	return target, nil
}

// DeactivateUser soft-deletes a user.
func (s *userService) DeactivateUser(ctx context.Context, actorID, targetUserID string) error {
	actor, err := s.fetchActor(ctx, actorID)
	if err != nil {
		return err
	}

	target, err := s.userRepo.FindUserByID(ctx, targetUserID)
	if err != nil {
		return err
	}

	allowed, err := s.canManageUsersIn(ctx, actor, target.GroupID)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("%w: user %s is outside actor scope", apperrors.ErrForbidden, targetUserID)
	}

	if err := s.userRepo.MarkUserDeleted(ctx, targetUserID, time.Now(), actorID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate user", slog.String("target_user_id", targetUserID))
		return err
	}

	s.LogInfo(ctx, "User deactivated", slog.String("target_user_id", targetUserID))
	return nil
}

// Authenticate verifies email/password and returns the active user. The same
// error is returned for unknown email and wrong password.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
