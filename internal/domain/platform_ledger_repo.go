package domain

import "time"

type PlatformLedgerRepository interface {
	RecordRevenue(txn *PlatformRevenueTransaction) error
	RecordExpense(txn *PlatformExpenseTransaction) error
	GetPlatformBalance(territoryID, currency string) (*PlatformFinancialBalance, error)
	SumExpenseForPeriod(territoryID string, from, to time.Time) (int64, error)
	CreateReconciliationRecord(record *ReconciliationRecord) error
	ListReconciliationRecords(territoryID string) ([]*ReconciliationRecord, error)
}
