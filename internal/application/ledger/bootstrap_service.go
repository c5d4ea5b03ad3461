package ledger

import (
	"context"
	"fmt"

	"github.com/ledgerza/backend/internal/domain/ledger"
	"github.com/ledgerza/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// BootstrapService seeds the global reference data the ledger needs:
// the transaction type mapping table and the chart-of-accounts
// templates. Seeding is an explicit deployment step, idempotent, and
// backed by unique constraints on the natural keys so concurrent
// attempts cannot duplicate rows.
type BootstrapService struct {
	mappingRepo  ledger.MappingRepository
	templateRepo ledger.CoaTemplateRepository
	logger       *zap.Logger
}

// NewBootstrapService creates a new BootstrapService
func NewBootstrapService(mappingRepo ledger.MappingRepository, templateRepo ledger.CoaTemplateRepository, logger *zap.Logger) *BootstrapService {
	return &BootstrapService{
		mappingRepo:  mappingRepo,
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// SeedAll seeds mappings and templates, then verifies mapping totality
func (s *BootstrapService) SeedAll(ctx context.Context) error {
	if err := s.SeedMappings(ctx); err != nil {
		return err
	}
	if err := s.SeedCoaTemplates(ctx); err != nil {
		return err
	}
	return s.VerifyMappingTotality(ctx)
}

// SeedMappings inserts the built-in transaction type mappings if the
// table is empty.
func (s *BootstrapService) SeedMappings(ctx context.Context) error {
	count, err := s.mappingRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("transaction type mappings already seeded", zap.Int64("count", count))
		return nil
	}

	mappings := ledger.BuiltinMappings()
	if err := s.mappingRepo.SaveAll(ctx, mappings); err != nil {
		return err
	}
	s.logger.Info("seeded transaction type mappings", zap.Int("count", len(mappings)))
	return nil
}

// SeedCoaTemplates inserts the built-in chart templates if the table is
// empty.
func (s *BootstrapService) SeedCoaTemplates(ctx context.Context) error {
	count, err := s.templateRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("chart templates already seeded", zap.Int64("count", count))
		return nil
	}

	templates := ledger.BuiltinCoaTemplates()
	if err := s.templateRepo.SaveAll(ctx, templates); err != nil {
		return err
	}
	s.logger.Info("seeded chart templates", zap.Int("count", len(templates)))
	return nil
}

// VerifyMappingTotality checks that every transaction type has exactly
// one active mapping. Run at startup so a hole in the mapping table
// fails the deployment instead of a customer's transaction.
func (s *BootstrapService) VerifyMappingTotality(ctx context.Context) error {
	mappings, err := s.mappingRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	active := make(map[ledger.TransactionType]int)
	for _, m := range mappings {
		if m.IsActive {
			active[m.Type]++
		}
	}
	for _, txType := range ledger.AllTransactionTypes() {
		switch active[txType] {
		case 1:
		case 0:
			return shared.NewDomainError("MAPPING_NOT_RESOLVED",
				fmt.Sprintf("No active mapping for transaction type %s", txType))
		default:
			return shared.NewDomainError("MAPPING_AMBIGUOUS",
				fmt.Sprintf("Transaction type %s has %d active mappings", txType, active[txType]))
		}
	}
	return nil
}
