package asset

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerza/backend/internal/domain/asset"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RegisterAssetInput describes a new fixed asset
type RegisterAssetInput struct {
	CompanyID        uuid.UUID
	Name             string
	CostPrice        decimal.Decimal
	DepreciationRate decimal.Decimal
	PurchaseDate     time.Time
}

// AssetService provides the fixed asset register
type AssetService struct {
	repo asset.FixedAssetRepository
}

// NewAssetService creates a new AssetService
func NewAssetService(repo asset.FixedAssetRepository) *AssetService {
	return &AssetService{repo: repo}
}

// Register adds a fixed asset to the register
func (s *AssetService) Register(ctx context.Context, input RegisterAssetInput) (*asset.FixedAsset, error) {
	a, err := asset.NewFixedAsset(input.CompanyID, input.Name, input.CostPrice,
		input.DepreciationRate, input.PurchaseDate)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns one asset by ID
func (s *AssetService) Get(ctx context.Context, companyID, id uuid.UUID) (*asset.FixedAsset, error) {
	a, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, shared.NewDomainError("ASSET_NOT_FOUND", "Fixed asset does not exist")
	}
	return a, nil
}

// List returns every asset on the company's register
func (s *AssetService) List(ctx context.Context, companyID uuid.UUID) ([]*asset.FixedAsset, error) {
	return s.repo.FindAllForCompany(ctx, companyID)
}
