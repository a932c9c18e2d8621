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

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

var FULL_COMPANY_SELECT_QUERY = `
SELECT
	c.company_id, c.tax_id, c.name, c.address, c.phone, c.email, c.is_active,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM companies c
`

func (r *PgxCompanyRepository) getCompanies(ctx context.Context, filterQuery string, args ...any) ([]domain.Company, error) {
	query := FULL_COMPANY_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies", err)
	}
	defer rows.Close()
	companies, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Company])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Company{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect company rows", err)
	}
	return companies, nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	companies, err := r.getCompanies(ctx, `WHERE c.company_id = $1`, companyID)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &companies[0], nil
}

func (r *PgxCompanyRepository) ListCompanies(ctx context.Context, activeOnly bool) ([]domain.Company, error) {
	if activeOnly {
		return r.getCompanies(ctx, `WHERE c.is_active ORDER BY c.name`)
	}
	return r.getCompanies(ctx, `ORDER BY c.name`)
}

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (
			company_id, tax_id, name, address, phone, email, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		company.CompanyID,
		company.TaxID,
		company.Name,
		company.Address,
		company.Phone,
		company.Email,
		company.IsActive,
		company.CreatedAt,
		company.CreatedBy,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("company with tax ID " + company.TaxID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save company "+company.CompanyID, err)
	}
	return nil
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	query := `
		UPDATE companies SET
			name = $2, address = $3, phone = $4, email = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE company_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		company.Address,
		company.Phone,
		company.Email,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update company "+company.CompanyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCompanyRepository) DeactivateCompany(ctx context.Context, companyID string, updatedBy string) error {
	query := `
		UPDATE companies SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
		WHERE company_id = $1 AND is_active;
	`
	tag, err := r.Pool.Exec(ctx, query, companyID, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate company "+companyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
