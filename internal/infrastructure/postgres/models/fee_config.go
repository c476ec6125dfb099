package models

import (
	"time"

	"github.com/terracommons/settlement-service/internal/domain"
)

// PlatformFeeConfigModel keeps deactivated rows; the "one active per
// (territory, item type)" rule is a partial unique index in migrations.
type PlatformFeeConfigModel struct {
	ID          string         `gorm:"primaryKey;type:uuid"`
	TerritoryID string         `gorm:"index:idx_fee_territory_item;not null"`
	ItemType    string         `gorm:"index:idx_fee_territory_item;not null"`
	FeeMode     domain.FeeMode `gorm:"not null"`
	FeeValue    float64        `gorm:"not null"`
	IsActive    bool           `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
