package models

import "time"

type SellerBalanceModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	TerritoryID  string `gorm:"uniqueIndex:idx_balance_territory_seller;not null"`
	SellerUserID string `gorm:"uniqueIndex:idx_balance_territory_seller;not null"`
	Currency     string `gorm:"not null"`

	PendingAmount        int64 `gorm:"not null;default:0"`
	ReadyForPayoutAmount int64 `gorm:"not null;default:0;index"`
	PaidAmount           int64 `gorm:"not null;default:0"`

	Version   int `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
