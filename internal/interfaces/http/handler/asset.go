package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	assetapp "github.com/ledgerza/backend/internal/application/asset"
	"github.com/ledgerza/backend/internal/domain/asset"
	"github.com/shopspring/decimal"
)

// AssetHandler handles the fixed asset register and disposal workflow
type AssetHandler struct {
	BaseHandler
	assets    *assetapp.AssetService
	disposals *assetapp.DisposalService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assets *assetapp.AssetService, disposals *assetapp.DisposalService) *AssetHandler {
	return &AssetHandler{assets: assets, disposals: disposals}
}

// RegisterRoutes registers asset routes
func (h *AssetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	assets := rg.Group("/assets")
	assets.POST("", h.Register)
	assets.GET("", h.List)
	assets.GET("/:id", h.Get)
	assets.POST("/:id/dispose", h.Dispose)
}

// RegisterAssetRequest represents a request to register a fixed asset
type RegisterAssetRequest struct {
	Name             string    `json:"name" binding:"required" example:"Delivery bakkie"`
	CostPrice        float64   `json:"cost_price" binding:"required,gt=0" example:"12000.00"`
	DepreciationRate float64   `json:"depreciation_rate" binding:"required,gt=0,lte=1" example:"0.20"`
	PurchaseDate     time.Time `json:"purchase_date" binding:"required"`
}

// DisposeAssetRequest represents a request to dispose of a fixed asset
type DisposeAssetRequest struct {
	DisposalDate time.Time `json:"disposal_date" binding:"required"`
	SellingPrice float64   `json:"selling_price" binding:"omitempty,gte=0" example:"10000.00"`
	Method       string    `json:"method" binding:"required,oneof=CASH CREDIT" example:"CASH"`
}

// FixedAssetResponse represents a fixed asset in API responses
type FixedAssetResponse struct {
	ID               string     `json:"id"`
	CompanyID        string     `json:"company_id"`
	Name             string     `json:"name"`
	CostPrice        string     `json:"cost_price"`
	DepreciationRate string     `json:"depreciation_rate"`
	PurchaseDate     time.Time  `json:"purchase_date"`
	AccumDepr        string     `json:"accumulated_depreciation"`
	Status           string     `json:"status"`
	DisposalDate     *time.Time `json:"disposal_date,omitempty"`
	SellingPrice     *string    `json:"selling_price,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// DisposalResponse represents a disposal record
type DisposalResponse struct {
	ID                  string    `json:"id"`
	AssetID             string    `json:"asset_id"`
	DisposalDate        time.Time `json:"disposal_date"`
	SellingPrice        string    `json:"selling_price"`
	Method              string    `json:"method"`
	DepreciationCharged string    `json:"depreciation_charged"`
	NetBookValue        string    `json:"net_book_value"`
	ProfitLoss          string    `json:"profit_loss"`
	GainLossEntryID     *string   `json:"gain_loss_entry_id,omitempty"`
}

// DisposeAssetResponse is the disposal with the journal entries it posted
type DisposeAssetResponse struct {
	Disposal DisposalResponse       `json:"disposal"`
	Asset    FixedAssetResponse     `json:"asset"`
	Entries  []JournalEntryResponse `json:"entries"`
}

func toFixedAssetResponse(a *asset.FixedAsset) FixedAssetResponse {
	resp := FixedAssetResponse{
		ID:               a.ID.String(),
		CompanyID:        a.CompanyID.String(),
		Name:             a.Name,
		CostPrice:        a.CostPrice.StringFixed(2),
		DepreciationRate: a.DepreciationRate.String(),
		PurchaseDate:     a.PurchaseDate,
		AccumDepr:        a.AccumDepr.StringFixed(2),
		Status:           string(a.Status),
		DisposalDate:     a.DisposalDate,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
	if a.SellingPrice != nil {
		price := a.SellingPrice.StringFixed(2)
		resp.SellingPrice = &price
	}
	return resp
}

func toDisposalResponse(d *asset.Disposal) DisposalResponse {
	resp := DisposalResponse{
		ID:                  d.ID.String(),
		AssetID:             d.AssetID.String(),
		DisposalDate:        d.DisposalDate,
		SellingPrice:        d.SellingPrice.StringFixed(2),
		Method:              string(d.Method),
		DepreciationCharged: d.DepreciationCharged.StringFixed(2),
		NetBookValue:        d.NetBookValue.StringFixed(2),
		ProfitLoss:          d.ProfitLoss.StringFixed(2),
	}
	if d.GainLossEntryID != nil {
		id := d.GainLossEntryID.String()
		resp.GainLossEntryID = &id
	}
	return resp
}

// Register adds a fixed asset to the register
func (h *AssetHandler) Register(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company")
		return
	}

	var req RegisterAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	a, err := h.assets.Register(c.Request.Context(), assetapp.RegisterAssetInput{
		CompanyID:        companyID,
		Name:             req.Name,
		CostPrice:        decimal.NewFromFloat(req.CostPrice),
		DepreciationRate: decimal.NewFromFloat(req.DepreciationRate),
		PurchaseDate:     req.PurchaseDate,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, toFixedAssetResponse(a))
}

// List returns all fixed assets for the company
func (h *AssetHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company")
		return
	}

	assets, err := h.assets.List(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	responses := make([]FixedAssetResponse, len(assets))
	for i, a := range assets {
		responses[i] = toFixedAssetResponse(a)
	}
	h.Success(c, responses)
}

// Get returns one fixed asset
func (h *AssetHandler) Get(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID")
		return
	}

	a, err := h.assets.Get(c.Request.Context(), companyID, assetID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toFixedAssetResponse(a))
}

// Dispose runs the disposal workflow for a fixed asset
func (h *AssetHandler) Dispose(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID")
		return
	}

	var req DisposeAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.disposals.DisposeAsset(c.Request.Context(), assetapp.DisposeAssetInput{
		CompanyID:    companyID,
		AssetID:      assetID,
		DisposalDate: req.DisposalDate,
		SellingPrice: decimal.NewFromFloat(req.SellingPrice),
		Method:       asset.DisposalMethod(req.Method),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	entries := make([]JournalEntryResponse, len(result.Entries))
	for i, e := range result.Entries {
		entries[i] = toJournalEntryResponse(e)
	}

	h.Created(c, DisposeAssetResponse{
		Disposal: toDisposalResponse(result.Disposal),
		Asset:    toFixedAssetResponse(result.Asset),
		Entries:  entries,
	})
}
