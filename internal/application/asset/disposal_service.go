package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	appledger "github.com/ledgerza/backend/internal/application/ledger"
	"github.com/ledgerza/backend/internal/domain/asset"
	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DisposeAssetInput describes a fixed-asset disposal request
type DisposeAssetInput struct {
	CompanyID    uuid.UUID
	AssetID      uuid.UUID
	DisposalDate time.Time
	SellingPrice decimal.Decimal
	Method       asset.DisposalMethod
}

// DisposeAssetResult is the disposal record with every journal entry the
// workflow posted.
type DisposeAssetResult struct {
	Disposal *asset.Disposal
	Asset    *asset.FixedAsset
	Entries  []*ledger.JournalEntry
}

// DisposalService runs the fixed-asset disposal workflow. All of it
// executes inside one transaction scope: depreciation catch-up, cost
// removal, proceeds, the gain/loss entry, the asset status flip and the
// disposal record commit together or roll back together.
type DisposalService struct {
	scope   appledger.TransactionScope
	posting *appledger.PostingService
	logger  *zap.Logger
}

// NewDisposalService creates a new DisposalService
func NewDisposalService(scope appledger.TransactionScope, posting *appledger.PostingService, logger *zap.Logger) *DisposalService {
	return &DisposalService{scope: scope, posting: posting, logger: logger}
}

// DisposeAsset disposes a fixed asset:
//
//  1. catch-up depreciation from purchase to disposal date
//  2. remove the asset's cost to the disposal control account
//  3. record the sale proceeds
//  4. compute net book value and gain/loss
//  5. post the gain or loss entry when the sale didn't break even
func (s *DisposalService) DisposeAsset(ctx context.Context, input DisposeAssetInput) (*DisposeAssetResult, error) {
	if !input.Method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", "Disposal method must be CASH or CREDIT")
	}

	var result *DisposeAssetResult
	err := s.scope.Execute(ctx, func(repos appledger.TransactionalRepositories) error {
		var err error
		result, err = s.disposeIn(ctx, repos, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("asset disposed",
		zap.String("company_id", input.CompanyID.String()),
		zap.String("asset_id", input.AssetID.String()),
		zap.String("profit_loss", result.Disposal.ProfitLoss.String()),
		zap.Int("entries", len(result.Entries)))
	return result, nil
}

func (s *DisposalService) disposeIn(ctx context.Context, repos appledger.TransactionalRepositories, input DisposeAssetInput) (*DisposeAssetResult, error) {
	a, err := repos.FixedAssetRepo().FindByID(ctx, input.CompanyID, input.AssetID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, shared.NewDomainError("ASSET_NOT_FOUND", "Fixed asset does not exist")
	}
	if a.IsDisposed() {
		return nil, shared.NewDomainError("ALREADY_DISPOSED",
			fmt.Sprintf("Asset %s has already been disposed", a.Name))
	}
	loadedVersion := a.Version

	var entries []*ledger.JournalEntry
	post := func(txType ledger.TransactionType, amount decimal.Decimal, memo string) (*ledger.JournalEntry, error) {
		resolved, err := appledger.ResolveMapping(ctx, repos, input.CompanyID, txType)
		if err != nil {
			return nil, err
		}
		entry, err := s.posting.PostEntryIn(ctx, repos, appledger.PostEntryInput{
			CompanyID:       input.CompanyID,
			Date:            input.DisposalDate,
			DebitAccountID:  resolved.Debit.ID,
			CreditAccountID: resolved.Credit.ID,
			Amount:          amount,
			Memo:            memo,
		})
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		return entry, nil
	}

	// Step 1: depreciation catch-up from purchase to disposal date.
	catchUp := a.DepreciationUntil(input.DisposalDate).Sub(a.AccumDepr)
	if catchUp.IsPositive() {
		if _, err := post(ledger.TypeMonthlyDepreciation, catchUp,
			fmt.Sprintf("Depreciation to disposal of %s", a.Name)); err != nil {
			return nil, err
		}
		if err := a.ApplyDepreciation(catchUp); err != nil {
			return nil, err
		}
	}

	// Step 2: move the asset's cost to the disposal control account.
	if _, err := post(ledger.TypeDisposalCostRemove, a.CostPrice,
		fmt.Sprintf("Remove cost of %s", a.Name)); err != nil {
		return nil, err
	}

	// Step 3: record the sale proceeds.
	if input.SellingPrice.IsPositive() {
		proceedsType := ledger.TypeDisposalSaleCash
		if input.Method == asset.DisposalCredit {
			proceedsType = ledger.TypeDisposalSaleCredit
		}
		if _, err := post(proceedsType, input.SellingPrice,
			fmt.Sprintf("Proceeds on disposal of %s", a.Name)); err != nil {
			return nil, err
		}
	}

	// Step 4: net book value and gain/loss.
	netBookValue := a.CostPrice.Sub(a.AccumDepr)
	profitLoss := input.SellingPrice.Sub(netBookValue)

	// Step 5: gain or loss entry, only when the sale didn't break even.
	var gainLossEntry *ledger.JournalEntry
	if !profitLoss.IsZero() {
		gainLossType := ledger.TypeDisposalGain
		memo := fmt.Sprintf("Gain on disposal of %s", a.Name)
		if profitLoss.IsNegative() {
			gainLossType = ledger.TypeDisposalLoss
			memo = fmt.Sprintf("Loss on disposal of %s", a.Name)
		}
		gainLossEntry, err = post(gainLossType, profitLoss.Abs(), memo)
		if err != nil {
			return nil, err
		}
	}

	if err := a.MarkDisposed(input.DisposalDate, input.SellingPrice); err != nil {
		return nil, err
	}
	if err := repos.FixedAssetRepo().SaveWithLock(ctx, a, loadedVersion); err != nil {
		return nil, err
	}

	disposal, err := asset.NewDisposal(input.CompanyID, a.ID, input.DisposalDate,
		input.SellingPrice, input.Method, a.AccumDepr, netBookValue, profitLoss)
	if err != nil {
		return nil, err
	}
	if gainLossEntry != nil {
		disposal.AttachGainLossEntry(gainLossEntry.ID)
	}
	if err := repos.DisposalRepo().Save(ctx, disposal); err != nil {
		return nil, err
	}

	return &DisposeAssetResult{Disposal: disposal, Asset: a, Entries: entries}, nil
}
