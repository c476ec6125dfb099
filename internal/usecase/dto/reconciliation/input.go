package recdto

import "time"

// ReconcileStatementInput carries the gateway statement totals for one
// period, as reported by the payment network.
type ReconcileStatementInput struct {
	TerritoryID            string
	PeriodStart            time.Time
	PeriodEnd              time.Time
	StatementGrossRevenue  int64
	StatementFeeRevenue    int64
	StatementPayoutExpense int64
}
