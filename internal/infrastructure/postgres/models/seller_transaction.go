package models

import (
	"time"

	"github.com/terracommons/settlement-service/internal/domain"
)

type SellerTransactionModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	CheckoutID   string `gorm:"type:uuid;uniqueIndex;not null"`
	TerritoryID  string `gorm:"index:idx_seller_tx_territory_status;not null"`
	SellerUserID string `gorm:"index;not null"`
	Currency     string `gorm:"not null"`

	GrossAmount int64 `gorm:"not null"`
	PlatformFee int64 `gorm:"not null"`
	NetAmount   int64 `gorm:"not null"`

	Status         domain.SellerTransactionStatus `gorm:"index:idx_seller_tx_territory_status;not null"`
	PayoutID       *string                        `gorm:"index"`
	PayoutAttempts int                            `gorm:"not null;default:0"`

	ReadyForPayoutAt *time.Time
	PaidAt           *time.Time
	CreatedAt        time.Time `gorm:"index:idx_seller_tx_created_at"`
	UpdatedAt        time.Time
}
