package models

import (
	"time"

	"github.com/terracommons/settlement-service/internal/domain"
)

type TerritoryPayoutConfigModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	TerritoryID         string `gorm:"index;not null"`
	RetentionPeriodDays int    `gorm:"not null"`
	MinimumPayoutAmount int64  `gorm:"not null"`
	MaximumPayoutAmount *int64
	Frequency           domain.PayoutFrequency `gorm:"not null"`
	AutoPayoutEnabled   bool                   `gorm:"not null;default:true"`
	RequiresApproval    bool                   `gorm:"not null;default:false"`
	IsActive            bool                   `gorm:"not null;default:true;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
