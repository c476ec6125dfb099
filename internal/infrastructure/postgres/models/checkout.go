package models

import (
	"time"

	"github.com/terracommons/settlement-service/internal/domain"
)

type CheckoutModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	TerritoryID  string `gorm:"index:idx_checkout_territory;not null"`
	BuyerUserID  string `gorm:"not null"`
	SellerUserID string `gorm:"index"`
	StoreID      string
	Currency     string                `gorm:"not null"`
	Status       domain.CheckoutStatus `gorm:"index:idx_checkout_status;not null"`

	ItemsSubtotal     *int64
	PlatformFeeAmount *int64
	TotalAmount       *int64

	Items []CheckoutItemModel `gorm:"foreignKey:CheckoutID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	PaidAt    *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"index:idx_checkout_created_at"`
	UpdatedAt time.Time
}

type CheckoutItemModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	CheckoutID string `gorm:"type:uuid;index;not null"`
	ItemID     string `gorm:"not null"`
	ItemType   string `gorm:"not null"`
	Title      string
	Quantity   int64 `gorm:"not null"`
	UnitPrice  int64 `gorm:"not null"`
	Subtotal   int64 `gorm:"not null"`
	FeeAmount  int64 `gorm:"not null"`
	Total      int64 `gorm:"not null"`
}
