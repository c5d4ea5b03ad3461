package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ledgerapp "github.com/ledgerza/backend/internal/application/ledger"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/ledgerza/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
)

// JournalHandler handles manual journal API endpoints
type JournalHandler struct {
	BaseHandler
	service *ledgerapp.JournalManagerService
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(service *ledgerapp.JournalManagerService) *JournalHandler {
	return &JournalHandler{service: service}
}

// RegisterRoutes registers manual journal routes
func (h *JournalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	journals := rg.Group("/journals")
	journals.POST("", h.Create)
	journals.GET("", h.List)
	journals.GET("/:id", h.Get)
	journals.PUT("/:id/lines", h.UpdateLines)
	journals.POST("/:id/approve", h.Approve)
	journals.POST("/:id/reject", h.Reject)
	journals.POST("/:id/post", h.Post)
}

// JournalLineRequest represents one line of a manual journal
type JournalLineRequest struct {
	AccountID string  `json:"account_id" binding:"required,uuid"`
	Debit     float64 `json:"debit" binding:"omitempty,gte=0"`
	Credit    float64 `json:"credit" binding:"omitempty,gte=0"`
	Memo      string  `json:"memo"`
}

// CreateJournalRequest represents a request to capture a manual journal
type CreateJournalRequest struct {
	Reference string               `json:"reference" binding:"required" example:"MJ-2026-001"`
	Date      time.Time            `json:"date" binding:"required"`
	Memo      string               `json:"memo"`
	Lines     []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateJournalLinesRequest represents a request to replace a draft's lines
type UpdateJournalLinesRequest struct {
	Lines []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// RejectJournalRequest represents a request to reject a draft journal
type RejectJournalRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// JournalLineResponse represents one journal line in API responses
type JournalLineResponse struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Debit     string `json:"debit"`
	Credit    string `json:"credit"`
	Memo      string `json:"memo,omitempty"`
}

// ManualJournalResponse represents a manual journal in API responses
type ManualJournalResponse struct {
	ID           string                `json:"id"`
	CompanyID    string                `json:"company_id"`
	Reference    string                `json:"reference"`
	Date         time.Time             `json:"date"`
	Memo         string                `json:"memo,omitempty"`
	Status       string                `json:"status"`
	Lines        []JournalLineResponse `json:"lines"`
	ApprovedAt   *time.Time            `json:"approved_at,omitempty"`
	RejectedAt   *time.Time            `json:"rejected_at,omitempty"`
	RejectReason string                `json:"reject_reason,omitempty"`
	PostedAt     *time.Time            `json:"posted_at,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func toManualJournalResponse(mj *ledger.ManualJournal) ManualJournalResponse {
	lines := make([]JournalLineResponse, len(mj.Lines))
	for i, line := range mj.Lines {
		lines[i] = JournalLineResponse{
			ID:        line.ID.String(),
			AccountID: line.AccountID.String(),
			Debit:     line.Debit.StringFixed(2),
			Credit:    line.Credit.StringFixed(2),
			Memo:      line.Memo,
		}
	}

	return ManualJournalResponse{
		ID:           mj.ID.String(),
		CompanyID:    mj.CompanyID.String(),
		Reference:    mj.Reference,
		Date:         mj.Date,
		Memo:         mj.Memo,
		Status:       string(mj.Status),
		Lines:        lines,
		ApprovedAt:   mj.ApprovedAt,
		RejectedAt:   mj.RejectedAt,
		RejectReason: mj.RejectReason,
		PostedAt:     mj.PostedAt,
		CreatedAt:    mj.CreatedAt,
		UpdatedAt:    mj.UpdatedAt,
	}
}

func toLineInputs(lines []JournalLineRequest) []ledger.LineInput {
	inputs := make([]ledger.LineInput, len(lines))
	for i, line := range lines {
		accountID, _ := uuid.Parse(line.AccountID)
		inputs[i] = ledger.LineInput{
			AccountID: accountID,
			Debit:     decimal.NewFromFloat(line.Debit),
			Credit:    decimal.NewFromFloat(line.Credit),
			Memo:      line.Memo,
		}
	}
	return inputs
}

// Create captures a manual journal as a draft
func (h *JournalHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company")
		return
	}

	var req CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	mj, err := h.service.Create(c.Request.Context(), ledgerapp.CreateManualJournalInput{
		CompanyID: companyID,
		Reference: req.Reference,
		Date:      req.Date,
		Memo:      req.Memo,
		Lines:     toLineInputs(req.Lines),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, toManualJournalResponse(mj))
}

// List returns the company's manual journals, paginated
func (h *JournalHandler) List(c *gin.Context) {
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
	result, err := h.service.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	responses := make([]ManualJournalResponse, len(result.Items))
	for i := range result.Items {
		responses[i] = toManualJournalResponse(&result.Items[i])
	}

	h.SuccessWithMeta(c, responses, result.Total, result.Page, result.PageSize)
}

// Get returns one manual journal
func (h *JournalHandler) Get(c *gin.Context) {
	h.withJournalID(c, func(companyID, id uuid.UUID) (*ledger.ManualJournal, error) {
		return h.service.Get(c.Request.Context(), companyID, id)
	})
}

// UpdateLines replaces the lines of a draft journal
func (h *JournalHandler) UpdateLines(c *gin.Context) {
	var req UpdateJournalLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	h.withJournalID(c, func(companyID, id uuid.UUID) (*ledger.ManualJournal, error) {
		return h.service.UpdateLines(c.Request.Context(), companyID, id, toLineInputs(req.Lines))
	})
}

// Approve moves a draft journal to APPROVED
func (h *JournalHandler) Approve(c *gin.Context) {
	h.withJournalID(c, func(companyID, id uuid.UUID) (*ledger.ManualJournal, error) {
		return h.service.Approve(c.Request.Context(), companyID, id)
	})
}

// Reject moves a draft journal to REJECTED
func (h *JournalHandler) Reject(c *gin.Context) {
	var req RejectJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	h.withJournalID(c, func(companyID, id uuid.UUID) (*ledger.ManualJournal, error) {
		return h.service.Reject(c.Request.Context(), companyID, id, req.Reason)
	})
}

// Post posts an approved journal, applying its lines to account balances
func (h *JournalHandler) Post(c *gin.Context) {
	h.withJournalID(c, func(companyID, id uuid.UUID) (*ledger.ManualJournal, error) {
		return h.service.Post(c.Request.Context(), companyID, id)
	})
}

// withJournalID resolves company and journal IDs and renders the outcome
func (h *JournalHandler) withJournalID(c *gin.Context, fn func(companyID, id uuid.UUID) (*ledger.ManualJournal, error)) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid journal ID")
		return
	}

	mj, err := fn(companyID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toManualJournalResponse(mj))
}
