package repositories

import (
	"context"
	"time"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// UserListFilter narrows ListUsers results. Zero values mean "no filter".
type UserListFilter struct {
	GroupID    string
	Role       domain.UserRole
	ActiveOnly bool
}

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves an active user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves users matching the filter.
	ListUsers(ctx context.Context, filter UserListFilter) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// MarkUserDeleted deactivates a user (soft delete).
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
