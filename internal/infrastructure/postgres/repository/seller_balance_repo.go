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

type DefaultSellerBalanceRepository struct {
	DB *gorm.DB
}

func NewDefaultSellerBalanceRepository(db *gorm.DB) *DefaultSellerBalanceRepository {
	return &DefaultSellerBalanceRepository{DB: db}
}

// GetOrCreateForUpdate takes a FOR UPDATE lock on the balance row so
// concurrent checkouts for the same seller serialize on the increment.
// Call only inside a transaction; the lock lives until commit.
func (r *DefaultSellerBalanceRepository) GetOrCreateForUpdate(territoryID, sellerUserID, currency string) (*domain.SellerBalance, error) {
	var balanceModel models.SellerBalanceModel
	err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&balanceModel, "territory_id = ? AND seller_user_id = ?", territoryID, sellerUserID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		balance, berr := domain.NewSellerBalance(uuid.New().String(), territoryID, sellerUserID, currency)
		if berr != nil {
			return nil, berr
		}
		if cerr := r.DB.Create(mappers.ToGORMSellerBalance(balance)).Error; cerr != nil {
			return nil, fmt.Errorf("create balance row: %w", cerr)
		}
		// Re-read under the lock so the caller owns the row.
		if lerr := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&balanceModel, "territory_id = ? AND seller_user_id = ?", territoryID, sellerUserID).Error; lerr != nil {
			return nil, lerr
		}
		return mappers.ToDomainSellerBalance(&balanceModel), nil
	}
	if err != nil {
		return nil, err
	}

	return mappers.ToDomainSellerBalance(&balanceModel), nil
}

// Save writes the mutated buckets back guarded by the optimistic version.
// With the row already locked FOR UPDATE the version check is belt and
// braces for callers that skipped the lock.
func (r *DefaultSellerBalanceRepository) Save(balance *domain.SellerBalance) error {
	res := r.DB.Model(&models.SellerBalanceModel{}).
		Where("id = ? AND version = ?", balance.ID, balance.Version).
		Updates(map[string]interface{}{
			"pending_amount":          balance.PendingAmount,
			"ready_for_payout_amount": balance.ReadyForPayoutAmount,
			"paid_amount":             balance.PaidAmount,
			"version":                 balance.Version + 1,
			"updated_at":              time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrVersionConflict
	}

	balance.Version++
	return nil
}

func (r *DefaultSellerBalanceRepository) GetBalance(territoryID, sellerUserID string) (*domain.SellerBalance, error) {
	var balanceModel models.SellerBalanceModel
	if err := r.DB.First(&balanceModel, "territory_id = ? AND seller_user_id = ?", territoryID, sellerUserID).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainSellerBalance(&balanceModel), nil
}

func (r *DefaultSellerBalanceRepository) ListReadyAbove(territoryID string, minimum int64) ([]*domain.SellerBalance, error) {
	var balanceModels []models.SellerBalanceModel
	if err := r.DB.
		Where("territory_id = ?", territoryID).
		Where("ready_for_payout_amount >= ?", minimum).
		Where("ready_for_payout_amount > 0").
		Find(&balanceModels).Error; err != nil {
		return nil, err
	}

	balances := make([]*domain.SellerBalance, len(balanceModels))
	for i, balanceModel := range balanceModels {
		balances[i] = mappers.ToDomainSellerBalance(&balanceModel)
	}

	return balances, nil
}

func (r *DefaultSellerBalanceRepository) SumBuckets(territoryID string) (domain.BucketTotals, error) {
	type bucketAgg struct {
		Pending int64
		Ready   int64
		Paid    int64
	}
	var agg bucketAgg
	err := r.DB.Model(&models.SellerBalanceModel{}).
		Where("territory_id = ?", territoryID).
		Select("COALESCE(SUM(pending_amount), 0) as pending, COALESCE(SUM(ready_for_payout_amount), 0) as ready, COALESCE(SUM(paid_amount), 0) as paid").
		Scan(&agg).Error
	if err != nil {
		return domain.BucketTotals{}, fmt.Errorf("bucket agg: %w", err)
	}

	return domain.BucketTotals{Pending: agg.Pending, Ready: agg.Ready, Paid: agg.Paid}, nil
}
