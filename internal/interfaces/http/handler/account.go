package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	ledgerapp "github.com/ledgerza/backend/internal/application/ledger"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/ledgerza/backend/internal/interfaces/http/dto"
)

// AccountHandler handles account directory API endpoints
type AccountHandler struct {
	BaseHandler
	directory *ledgerapp.AccountDirectory
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(directory *ledgerapp.AccountDirectory) *AccountHandler {
	return &AccountHandler{directory: directory}
}

// RegisterRoutes registers account routes
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts")
	accounts.GET("", h.List)
	accounts.GET("/code/:code", h.GetByCode)
}

// AccountResponse represents a ledger account in API responses
type AccountResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   string    `json:"balance"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAccountResponse(a *ledger.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID.String(),
		CompanyID: a.CompanyID.String(),
		Code:      a.Code,
		Name:      a.Name,
		Type:      string(a.Type),
		Balance:   a.Balance.StringFixed(2),
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// List returns the company's chart of accounts, paginated and ordered by code
func (h *AccountHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.Normalize()

	filter := shared.Filter{Page: req.Page, PageSize: req.PageSize}
	result, err := h.directory.ListAccounts(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	responses := make([]AccountResponse, len(result.Items))
	for i := range result.Items {
		responses[i] = toAccountResponse(&result.Items[i])
	}

	h.SuccessWithMeta(c, responses, result.Total, result.Page, result.PageSize)
}

// GetByCode looks up one account by its code
func (h *AccountHandler) GetByCode(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company")
		return
	}

	account, err := h.directory.GetByCode(c.Request.Context(), companyID, c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toAccountResponse(account))
}
