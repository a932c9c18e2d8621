package repositories

import (
	"context"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// GroupReader defines read operations for group data
type GroupReader interface {
	// FindGroupByID retrieves a specific group by its ID.
	FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error)

	// ListGroups retrieves groups, optionally filtered by company.
	ListGroups(ctx context.Context, companyID string, activeOnly bool) ([]domain.Group, error)
}

// GroupWriter defines write operations for group data
type GroupWriter interface {
	// SaveGroup persists a new group.
	SaveGroup(ctx context.Context, group domain.Group) error

	// UpdateGroup updates an existing group's details.
	UpdateGroup(ctx context.Context, group domain.Group) error

	// DeactivateGroup clears the active flag (soft delete).
	DeactivateGroup(ctx context.Context, groupID string, updatedBy string) error
}

// GroupRepositoryFacade combines all group-related repository interfaces
type GroupRepositoryFacade interface {
	GroupReader
	GroupWriter
}
