package postgres

import (
	"log"

	"github.com/terracommons/settlement-service/internal/config"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.SettlementConfig) *gorm.DB {
	dsn := cfg.SettlementDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.PlatformFeeConfigModel{},
		&models.TerritoryPayoutConfigModel{},
		&models.CheckoutModel{},
		&models.CheckoutItemModel{},
		&models.SellerTransactionModel{},
		&models.SellerBalanceModel{},
		&models.PayoutBatchModel{},
		&models.PlatformFinancialBalanceModel{},
		&models.PlatformRevenueTransactionModel{},
		&models.PlatformExpenseTransactionModel{},
		&models.ReconciliationRecordModel{},
	)

	return db
}
