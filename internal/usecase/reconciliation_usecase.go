package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terracommons/settlement-service/internal/domain"
	recdto "github.com/terracommons/settlement-service/internal/usecase/dto/reconciliation"
)

type ReconciliationUsecase interface {
	BuildReport(territoryID string, from, to time.Time) (*domain.SettlementReport, error)
	ReconcileStatement(input *recdto.ReconcileStatementInput) (*domain.ReconciliationRecord, error)
	ListRecords(territoryID string) ([]*domain.ReconciliationRecord, error)
	GetPlatformBalance(territoryID, currency string) (*domain.PlatformFinancialBalance, error)
}

type DefaultReconciliationUsecase struct {
	CheckoutRepo domain.CheckoutRepository
	BalanceRepo  domain.SellerBalanceRepository
	LedgerRepo   domain.PlatformLedgerRepository
}

func NewDefaultReconciliationUsecase(
	checkoutRepo domain.CheckoutRepository,
	balanceRepo domain.SellerBalanceRepository,
	ledgerRepo domain.PlatformLedgerRepository) *DefaultReconciliationUsecase {

	return &DefaultReconciliationUsecase{
		CheckoutRepo: checkoutRepo,
		BalanceRepo:  balanceRepo,
		LedgerRepo:   ledgerRepo,
	}
}

// BuildReport assembles the per-period settlement export for one territory
// from the internal books alone.
func (uc *DefaultReconciliationUsecase) BuildReport(territoryID string, from, to time.Time) (*domain.SettlementReport, error) {
	gross, fee, err := uc.CheckoutRepo.SumPaidTotals(territoryID, from, to)
	if err != nil {
		return nil, fmt.Errorf("paid totals: %w", err)
	}

	expense, err := uc.LedgerRepo.SumExpenseForPeriod(territoryID, from, to)
	if err != nil {
		return nil, fmt.Errorf("payout expense: %w", err)
	}

	buckets, err := uc.BalanceRepo.SumBuckets(territoryID)
	if err != nil {
		return nil, fmt.Errorf("bucket totals: %w", err)
	}

	return &domain.SettlementReport{
		TerritoryID:   territoryID,
		PeriodStart:   from,
		PeriodEnd:     to,
		GrossRevenue:  gross,
		FeeRevenue:    fee,
		PayoutExpense: expense,
		EndingPending: buckets.Pending,
		EndingReady:   buckets.Ready,
		EndingPaid:    buckets.Paid,
	}, nil
}

// ReconcileStatement compares the internal report against the gateway's
// statement and persists the verdict. Discrepancies are recorded, never
// blocking: finance operators pick them up from the record list.
func (uc *DefaultReconciliationUsecase) ReconcileStatement(input *recdto.ReconcileStatementInput) (*domain.ReconciliationRecord, error) {
	report, err := uc.BuildReport(input.TerritoryID, input.PeriodStart, input.PeriodEnd)
	if err != nil {
		return nil, err
	}

	var notes []string
	if report.GrossRevenue != input.StatementGrossRevenue {
		notes = append(notes, fmt.Sprintf("gross mismatch: internal=%d statement=%d", report.GrossRevenue, input.StatementGrossRevenue))
	}
	if report.FeeRevenue != input.StatementFeeRevenue {
		notes = append(notes, fmt.Sprintf("fee mismatch: internal=%d statement=%d", report.FeeRevenue, input.StatementFeeRevenue))
	}
	if report.PayoutExpense != input.StatementPayoutExpense {
		notes = append(notes, fmt.Sprintf("payout mismatch: internal=%d statement=%d", report.PayoutExpense, input.StatementPayoutExpense))
	}

	status := domain.ReconciliationMatched
	if len(notes) > 0 {
		status = domain.ReconciliationDiscrepant
	}

	record := &domain.ReconciliationRecord{
		ID:                     uuid.New().String(),
		TerritoryID:            input.TerritoryID,
		PeriodStart:            input.PeriodStart,
		PeriodEnd:              input.PeriodEnd,
		InternalGrossRevenue:   report.GrossRevenue,
		InternalFeeRevenue:     report.FeeRevenue,
		InternalPayoutExpense:  report.PayoutExpense,
		StatementGrossRevenue:  input.StatementGrossRevenue,
		StatementFeeRevenue:    input.StatementFeeRevenue,
		StatementPayoutExpense: input.StatementPayoutExpense,
		Status:                 status,
		Notes:                  strings.Join(notes, "; "),
		CreatedAt:              time.Now(),
	}

	if err := uc.LedgerRepo.CreateReconciliationRecord(record); err != nil {
		return nil, err
	}

	return record, nil
}

func (uc *DefaultReconciliationUsecase) ListRecords(territoryID string) ([]*domain.ReconciliationRecord, error) {
	return uc.LedgerRepo.ListReconciliationRecords(territoryID)
}

func (uc *DefaultReconciliationUsecase) GetPlatformBalance(territoryID, currency string) (*domain.PlatformFinancialBalance, error) {
	return uc.LedgerRepo.GetPlatformBalance(territoryID, currency)
}
