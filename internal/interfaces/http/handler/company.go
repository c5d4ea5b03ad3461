package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	companyapp "github.com/ledgerza/backend/internal/application/company"
	"github.com/ledgerza/backend/internal/domain/company"
	"github.com/shopspring/decimal"
)

// CompanyHandler handles company onboarding API endpoints
type CompanyHandler struct {
	BaseHandler
	service *companyapp.SetupService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(service *companyapp.SetupService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// RegisterRoutes registers company routes
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	companies.POST("/setup", h.Setup)
	companies.POST("/:id/chart/seed", h.SeedChart)
}

// SetupCompanyRequest represents a company onboarding request
type SetupCompanyRequest struct {
	Name                 string  `json:"name" binding:"required" example:"Mzansi Trading CC"`
	Ownership            string  `json:"ownership" binding:"required,oneof=SOLE PARTNERSHIP LLC CORPORATION" example:"LLC"`
	Address              string  `json:"address" example:"12 Long Street, Cape Town"`
	FiscalYearStartMonth int     `json:"fiscal_year_start_month" binding:"omitempty,min=1,max=12" example:"3"`
	VATRate              float64 `json:"vat_rate" binding:"omitempty,gt=0,lt=1" example:"0.15"`
	TaxReference         string  `json:"tax_reference" example:"9012345678"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Ownership            string    `json:"ownership"`
	Address              string    `json:"address,omitempty"`
	FiscalYearStartMonth int       `json:"fiscal_year_start_month"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TaxConfigResponse represents a company's tax configuration
type TaxConfigResponse struct {
	ID            string  `json:"id"`
	CompanyID     string  `json:"company_id"`
	VATRate       float64 `json:"vat_rate"`
	VATRegistered bool    `json:"vat_registered"`
	TaxReference  string  `json:"tax_reference,omitempty"`
}

// SetupCompanyResponse is the onboarded company with its seeded chart
type SetupCompanyResponse struct {
	Company   CompanyResponse   `json:"company"`
	TaxConfig TaxConfigResponse `json:"tax_config"`
	Accounts  []AccountResponse `json:"accounts"`
}

// Setup onboards a company with its tax config and starter chart of accounts
func (h *CompanyHandler) Setup(c *gin.Context) {
	var req SetupCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := companyapp.SetupInput{
		Name:                 req.Name,
		Ownership:            company.OwnershipForm(req.Ownership),
		Address:              req.Address,
		FiscalYearStartMonth: req.FiscalYearStartMonth,
		TaxReference:         req.TaxReference,
	}
	if req.VATRate > 0 {
		input.VATRate = decimal.NewFromFloat(req.VATRate)
	}

	result, err := h.service.SetupCompany(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, h.toSetupResponse(result))
}

// SeedChart seeds the starter chart of accounts for an existing company
func (h *CompanyHandler) SeedChart(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	accounts, err := h.service.SeedChart(c.Request.Context(), companyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	responses := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		responses[i] = toAccountResponse(a)
	}
	h.Created(c, responses)
}

func (h *CompanyHandler) toSetupResponse(result *companyapp.SetupResult) SetupCompanyResponse {
	vatRate, _ := result.TaxConfig.VATRate.Float64()

	accounts := make([]AccountResponse, len(result.Accounts))
	for i, a := range result.Accounts {
		accounts[i] = toAccountResponse(a)
	}

	return SetupCompanyResponse{
		Company: CompanyResponse{
			ID:                   result.Company.ID.String(),
			Name:                 result.Company.Name,
			Ownership:            string(result.Company.Ownership),
			Address:              result.Company.Address,
			FiscalYearStartMonth: result.Company.FiscalYearStartMonth,
			CreatedAt:            result.Company.CreatedAt,
			UpdatedAt:            result.Company.UpdatedAt,
		},
		TaxConfig: TaxConfigResponse{
			ID:            result.TaxConfig.ID.String(),
			CompanyID:     result.TaxConfig.CompanyID.String(),
			VATRate:       vatRate,
			VATRegistered: result.TaxConfig.VATRegistered,
			TaxReference:  result.TaxConfig.TaxReference,
		},
		Accounts: accounts,
	}
}
