package models

import (
	"time"

	"github.com/terracommons/settlement-service/internal/domain"
)

type PayoutBatchModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Reference    string `gorm:"uniqueIndex;not null"`
	TerritoryID  string `gorm:"index:idx_batch_territory_status;not null"`
	SellerUserID string `gorm:"index;not null"`
	Currency     string `gorm:"not null"`
	Amount       int64  `gorm:"not null"`

	// JSON-encoded list of seller transaction ids in the batch.
	TransactionIDs string `gorm:"type:jsonb;not null"`

	Status        domain.PayoutBatchStatus `gorm:"index:idx_batch_territory_status;not null"`
	PayoutID      *string                  `gorm:"index"`
	FailureReason string

	CreatedAt    time.Time
	DispatchedAt *time.Time
	UpdatedAt    time.Time
}
