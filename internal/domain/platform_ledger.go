package domain

import "time"

// PlatformFinancialBalance accumulates the platform's own books per
// territory: fee revenue on one side, payout transfers on the other.
type PlatformFinancialBalance struct {
	ID            string
	TerritoryID   string
	Currency      string
	RevenueAmount int64
	ExpenseAmount int64
	UpdatedAt     time.Time
}

// PlatformRevenueTransaction records the fee taken when a checkout is paid.
type PlatformRevenueTransaction struct {
	ID          string
	TerritoryID string
	CheckoutID  string
	Currency    string
	Amount      int64
	RecordedAt  time.Time
}

// PlatformExpenseTransaction records the transfer side of a completed payout.
type PlatformExpenseTransaction struct {
	ID            string
	TerritoryID   string
	PayoutBatchID string
	SellerUserID  string
	Currency      string
	Amount        int64
	RecordedAt    time.Time
}

type ReconciliationStatus string

const (
	ReconciliationMatched    ReconciliationStatus = "MATCHED"
	ReconciliationDiscrepant ReconciliationStatus = "DISCREPANT"
)

// ReconciliationRecord compares a period's internal totals against the
// gateway's settlement statement. Advisory: discrepancies alert finance
// operators, they never block ledger operations.
type ReconciliationRecord struct {
	ID          string
	TerritoryID string
	PeriodStart time.Time
	PeriodEnd   time.Time

	InternalGrossRevenue  int64
	InternalFeeRevenue    int64
	InternalPayoutExpense int64

	StatementGrossRevenue  int64
	StatementFeeRevenue    int64
	StatementPayoutExpense int64

	Status    ReconciliationStatus
	Notes     string
	CreatedAt time.Time
}

// SettlementReport is the per-period export handed to finance operators for
// comparison against the gateway statement.
type SettlementReport struct {
	TerritoryID   string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	GrossRevenue  int64
	FeeRevenue    int64
	PayoutExpense int64

	EndingPending int64
	EndingReady   int64
	EndingPaid    int64
}
