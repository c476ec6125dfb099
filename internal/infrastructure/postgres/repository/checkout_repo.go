package repository

import (
	"fmt"
	"time"

	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCheckoutRepository struct {
	DB *gorm.DB
}

func NewDefaultCheckoutRepository(db *gorm.DB) *DefaultCheckoutRepository {
	return &DefaultCheckoutRepository{DB: db}
}

func (r *DefaultCheckoutRepository) CreateCheckout(checkout *domain.Checkout) error {
	checkoutModel := mappers.ToGORMCheckout(checkout)
	if err := r.DB.Create(checkoutModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultCheckoutRepository) GetCheckoutByID(checkoutID string) (*domain.Checkout, error) {
	var checkout models.CheckoutModel
	if err := r.DB.Preload("Items").First(&checkout, "id = ?", checkoutID).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainCheckout(&checkout), nil
}

func (r *DefaultCheckoutRepository) UpdateCheckout(checkout *domain.Checkout) error {
	checkoutModel := mappers.ToGORMCheckout(checkout)
	// Items are immutable snapshots; only the checkout row itself changes.
	if err := r.DB.Omit("Items").Save(checkoutModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultCheckoutRepository) SumPaidTotals(territoryID string, from, to time.Time) (int64, int64, error) {
	type totalsAgg struct {
		Gross int64
		Fee   int64
	}
	var agg totalsAgg
	err := r.DB.Model(&models.CheckoutModel{}).
		Where("territory_id = ?", territoryID).
		Where("status = ?", domain.CheckoutStatusPaid).
		Where("paid_at >= ? AND paid_at < ?", from, to).
		Select("COALESCE(SUM(total_amount), 0) as gross, COALESCE(SUM(platform_fee_amount), 0) as fee").
		Scan(&agg).Error
	if err != nil {
		return 0, 0, fmt.Errorf("paid totals agg: %w", err)
	}

	return agg.Gross, agg.Fee, nil
}
