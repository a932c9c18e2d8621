package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portsrepo "github.com/tooff-app/tooff-backend/internal/core/ports/repositories"
)

type PgxGroupRepository struct {
	BaseRepository
}

// newPgxGroupRepository creates a new repository for group data.
func newPgxGroupRepository(pool *pgxpool.Pool) portsrepo.GroupRepositoryFacade {
	return &PgxGroupRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxGroupRepository implements portsrepo.GroupRepositoryFacade
var _ portsrepo.GroupRepositoryFacade = (*PgxGroupRepository)(nil)

var FULL_GROUP_SELECT_QUERY = `
SELECT
	g.group_id, g.name, g.description, g.phone, g.company_id, g.is_active,
	g.created_at, g.created_by, g.last_updated_at, g.last_updated_by
FROM groups g
`

func (r *PgxGroupRepository) getGroups(ctx context.Context, filterQuery string, args ...any) ([]domain.Group, error) {
	query := FULL_GROUP_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query groups", err)
	}
	defer rows.Close()
	groups, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Group])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Group{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect group rows", err)
	}
	return groups, nil
}

func (r *PgxGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	groups, err := r.getGroups(ctx, `WHERE g.group_id = $1`, groupID)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &groups[0], nil
}

func (r *PgxGroupRepository) ListGroups(ctx context.Context, companyID string, activeOnly bool) ([]domain.Group, error) {
	filter := `WHERE ($1 = '' OR g.company_id = $1) AND (NOT $2 OR g.is_active) ORDER BY g.name`
	return r.getGroups(ctx, filter, companyID, activeOnly)
}

func (r *PgxGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	query := `
		INSERT INTO groups (
			group_id, name, description, phone, company_id, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		group.GroupID,
		group.Name,
		group.Description,
		group.Phone,
		group.CompanyID,
		group.IsActive,
		group.CreatedAt,
		group.CreatedBy,
		group.LastUpdatedAt,
		group.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("group ID " + group.GroupID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("company " + group.CompanyID + " does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save group "+group.GroupID, err)
	}
	return nil
}

func (r *PgxGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	query := `
		UPDATE groups SET
			name = $2, description = $3, phone = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE group_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		group.GroupID,
		group.Name,
		group.Description,
		group.Phone,
		group.LastUpdatedAt,
		group.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update group "+group.GroupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGroupRepository) DeactivateGroup(ctx context.Context, groupID string, updatedBy string) error {
	query := `
		UPDATE groups SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
		WHERE group_id = $1 AND is_active;
	`
	tag, err := r.Pool.Exec(ctx, query, groupID, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate group "+groupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
