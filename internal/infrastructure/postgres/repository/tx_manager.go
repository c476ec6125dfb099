package repository

import (
	"context"

	"github.com/terracommons/settlement-service/internal/domain"
	"gorm.io/gorm"
)

// GormTxManager binds every repository to one database transaction so a
// money-moving unit of work commits or rolls back as a whole.
type GormTxManager struct {
	DB *gorm.DB
}

func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{DB: db}
}

func (m *GormTxManager) WithinTransaction(ctx context.Context, fn func(s domain.Stores) error) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(domain.Stores{
			Checkouts:     NewDefaultCheckoutRepository(tx),
			Transactions:  NewDefaultSellerTransactionRepository(tx),
			Balances:      NewDefaultSellerBalanceRepository(tx),
			Batches:       NewDefaultPayoutBatchRepository(tx),
			Platform:      NewDefaultPlatformLedgerRepository(tx),
			FeeConfigs:    NewDefaultFeeConfigRepository(tx),
			PayoutConfigs: NewDefaultPayoutConfigRepository(tx),
		})
	})
}
