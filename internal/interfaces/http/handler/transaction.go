package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	ledgerapp "github.com/ledgerza/backend/internal/application/ledger"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction recording API endpoints
type TransactionHandler struct {
	BaseHandler
	service *ledgerapp.RecordingService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(service *ledgerapp.RecordingService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// RegisterRoutes registers transaction routes
func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/transactions", h.Record)
}

// RecordTransactionRequest represents a request to record a business transaction
type RecordTransactionRequest struct {
	Type        string    `json:"type" binding:"required" example:"sale_cash"`
	Amount      float64   `json:"amount" binding:"required,gt=0" example:"1000.00"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description" example:"Counter sale"`
}

// TransactionResponse represents a recorded transaction
type TransactionResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	ApplyVAT    bool      `json:"apply_vat"`
	CreatedAt   time.Time `json:"created_at"`
}

// JournalEntryResponse represents a posted journal entry
type JournalEntryResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Date            time.Time `json:"date"`
	DebitAccountID  string    `json:"debit_account_id"`
	CreditAccountID string    `json:"credit_account_id"`
	Amount          string    `json:"amount"`
	Memo            string    `json:"memo,omitempty"`
	TransactionID   *string   `json:"transaction_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// AccountRefResponse identifies one account a mapping resolved to
type AccountRefResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// SuggestedAccountsResponse is the debit/credit pair the transaction
// type mapped to
type SuggestedAccountsResponse struct {
	Debit  AccountRefResponse `json:"debit"`
	Credit AccountRefResponse `json:"credit"`
}

// RecordTransactionResponse is the transaction with the accounts its
// mapping selected and the entries it produced
type RecordTransactionResponse struct {
	Transaction TransactionResponse       `json:"transaction"`
	Suggested   SuggestedAccountsResponse `json:"suggested"`
	Entries     []JournalEntryResponse    `json:"entries"`
	VATAmount   string                    `json:"vat_amount"`
}

func toTransactionResponse(tx *ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID.String(),
		CompanyID:   tx.CompanyID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount.StringFixed(2),
		Date:        tx.Date,
		Description: tx.Description,
		ApplyVAT:    tx.ApplyVAT,
		CreatedAt:   tx.CreatedAt,
	}
}

func toJournalEntryResponse(e *ledger.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		ID:              e.ID.String(),
		CompanyID:       e.CompanyID.String(),
		Date:            e.Date,
		DebitAccountID:  e.DebitAccountID.String(),
		CreditAccountID: e.CreditAccountID.String(),
		Amount:          e.Amount.StringFixed(2),
		Memo:            e.Memo,
		CreatedAt:       e.CreatedAt,
	}
	if e.TransactionID != nil {
		id := e.TransactionID.String()
		resp.TransactionID = &id
	}
	return resp
}

func toAccountRefResponse(a *ledger.Account) AccountRefResponse {
	return AccountRefResponse{
		ID:   a.ID.String(),
		Code: a.Code,
		Name: a.Name,
	}
}

// Record records a business transaction and posts its journal entries
func (h *TransactionHandler) Record(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company")
		return
	}

	var req RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RecordTransaction(c.Request.Context(), ledgerapp.RecordTransactionInput{
		CompanyID:   companyID,
		Type:        ledger.TransactionType(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	entries := make([]JournalEntryResponse, len(result.Entries))
	for i, e := range result.Entries {
		entries[i] = toJournalEntryResponse(e)
	}

	h.Created(c, RecordTransactionResponse{
		Transaction: toTransactionResponse(result.Transaction),
		Suggested: SuggestedAccountsResponse{
			Debit:  toAccountRefResponse(result.Resolved.Debit),
			Credit: toAccountRefResponse(result.Resolved.Credit),
		},
		Entries:   entries,
		VATAmount: result.VATAmount.StringFixed(2),
	})
}
