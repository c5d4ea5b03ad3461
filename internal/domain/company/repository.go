package company

import (
	"context"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/shared"
)

// CompanyRepository persists Company aggregates
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Company, error)
	Save(ctx context.Context, c *Company) error
}

// TaxConfigRepository persists per-company tax configuration
type TaxConfigRepository interface {
	FindByCompany(ctx context.Context, companyID uuid.UUID) (*TaxConfig, error)
	Save(ctx context.Context, cfg *TaxConfig) error
}
