package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPlatformLedgerRepository struct {
	DB *gorm.DB
}

func NewDefaultPlatformLedgerRepository(db *gorm.DB) *DefaultPlatformLedgerRepository {
	return &DefaultPlatformLedgerRepository{DB: db}
}

func (r *DefaultPlatformLedgerRepository) RecordRevenue(txn *domain.PlatformRevenueTransaction) error {
	model := &models.PlatformRevenueTransactionModel{
		ID:          txn.ID,
		TerritoryID: txn.TerritoryID,
		CheckoutID:  txn.CheckoutID,
		Currency:    txn.Currency,
		Amount:      txn.Amount,
		RecordedAt:  txn.RecordedAt,
	}
	if err := r.DB.Create(model).Error; err != nil {
		return err
	}

	return r.accumulate(txn.TerritoryID, txn.Currency, txn.Amount, 0)
}

func (r *DefaultPlatformLedgerRepository) RecordExpense(txn *domain.PlatformExpenseTransaction) error {
	model := &models.PlatformExpenseTransactionModel{
		ID:            txn.ID,
		TerritoryID:   txn.TerritoryID,
		PayoutBatchID: txn.PayoutBatchID,
		SellerUserID:  txn.SellerUserID,
		Currency:      txn.Currency,
		Amount:        txn.Amount,
		RecordedAt:    txn.RecordedAt,
	}
	if err := r.DB.Create(model).Error; err != nil {
		return err
	}

	return r.accumulate(txn.TerritoryID, txn.Currency, 0, txn.Amount)
}

func (r *DefaultPlatformLedgerRepository) accumulate(territoryID, currency string, revenue, expense int64) error {
	var balance models.PlatformFinancialBalanceModel
	err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&balance, "territory_id = ? AND currency = ?", territoryID, currency).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		balance = models.PlatformFinancialBalanceModel{
			ID:          uuid.New().String(),
			TerritoryID: territoryID,
			Currency:    currency,
		}
		if cerr := r.DB.Create(&balance).Error; cerr != nil {
			return fmt.Errorf("create platform balance: %w", cerr)
		}
	} else if err != nil {
		return err
	}

	return r.DB.Model(&models.PlatformFinancialBalanceModel{}).
		Where("id = ?", balance.ID).
		Updates(map[string]interface{}{
			"revenue_amount": gorm.Expr("revenue_amount + ?", revenue),
			"expense_amount": gorm.Expr("expense_amount + ?", expense),
			"updated_at":     time.Now(),
		}).Error
}

func (r *DefaultPlatformLedgerRepository) GetPlatformBalance(territoryID, currency string) (*domain.PlatformFinancialBalance, error) {
	var balance models.PlatformFinancialBalanceModel
	if err := r.DB.First(&balance, "territory_id = ? AND currency = ?", territoryID, currency).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainPlatformBalance(&balance), nil
}

func (r *DefaultPlatformLedgerRepository) SumExpenseForPeriod(territoryID string, from, to time.Time) (int64, error) {
	var total int64
	err := r.DB.Model(&models.PlatformExpenseTransactionModel{}).
		Where("territory_id = ?", territoryID).
		Where("recorded_at >= ? AND recorded_at < ?", from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("expense agg: %w", err)
	}

	return total, nil
}

func (r *DefaultPlatformLedgerRepository) CreateReconciliationRecord(record *domain.ReconciliationRecord) error {
	return r.DB.Create(mappers.ToGORMReconciliationRecord(record)).Error
}

func (r *DefaultPlatformLedgerRepository) ListReconciliationRecords(territoryID string) ([]*domain.ReconciliationRecord, error) {
	var recordModels []models.ReconciliationRecordModel
	if err := r.DB.
		Where("territory_id = ?", territoryID).
		Order("period_start DESC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.ReconciliationRecord, len(recordModels))
	for i, recordModel := range recordModels {
		records[i] = mappers.ToDomainReconciliationRecord(&recordModel)
	}

	return records, nil
}
