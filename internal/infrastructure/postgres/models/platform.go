package models

import (
	"time"

	"github.com/terracommons/settlement-service/internal/domain"
)

type PlatformFinancialBalanceModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	TerritoryID   string `gorm:"uniqueIndex:idx_platform_territory_currency;not null"`
	Currency      string `gorm:"uniqueIndex:idx_platform_territory_currency;not null"`
	RevenueAmount int64  `gorm:"not null;default:0"`
	ExpenseAmount int64  `gorm:"not null;default:0"`
	UpdatedAt     time.Time
}

type PlatformRevenueTransactionModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	TerritoryID string    `gorm:"index;not null"`
	CheckoutID  string    `gorm:"type:uuid;uniqueIndex;not null"`
	Currency    string    `gorm:"not null"`
	Amount      int64     `gorm:"not null"`
	RecordedAt  time.Time `gorm:"index;not null"`
}

type PlatformExpenseTransactionModel struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	TerritoryID   string    `gorm:"index;not null"`
	PayoutBatchID string    `gorm:"type:uuid;index;not null"`
	SellerUserID  string    `gorm:"not null"`
	Currency      string    `gorm:"not null"`
	Amount        int64     `gorm:"not null"`
	RecordedAt    time.Time `gorm:"index;not null"`
}

type ReconciliationRecordModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	TerritoryID string    `gorm:"index;not null"`
	PeriodStart time.Time `gorm:"not null"`
	PeriodEnd   time.Time `gorm:"not null"`

	InternalGrossRevenue  int64 `gorm:"not null"`
	InternalFeeRevenue    int64 `gorm:"not null"`
	InternalPayoutExpense int64 `gorm:"not null"`

	StatementGrossRevenue  int64 `gorm:"not null"`
	StatementFeeRevenue    int64 `gorm:"not null"`
	StatementPayoutExpense int64 `gorm:"not null"`

	Status    domain.ReconciliationStatus `gorm:"index;not null"`
	Notes     string
	CreatedAt time.Time
}
