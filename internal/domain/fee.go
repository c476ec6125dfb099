package domain

import (
	"math"
	"time"
)

type FeeMode string

const (
	FeeModePercentage FeeMode = "PERCENTAGE"
	FeeModeFixed      FeeMode = "FIXED"
)

// PlatformFeeConfig is the fee rule for one (territory, item type) pair.
// At most one active config may exist per pair; configs are deactivated,
// never deleted.
type PlatformFeeConfig struct {
	ID          string
	TerritoryID string
	ItemType    string
	FeeMode     FeeMode
	FeeValue    float64 // percent for PERCENTAGE, minor units for FIXED
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewPlatformFeeConfig(id, territoryID, itemType string, mode FeeMode, value float64) (*PlatformFeeConfig, error) {
	if territoryID == "" {
		return nil, ErrMissingTerritory
	}
	if value < 0 {
		return nil, ErrNegativeFeeValue
	}
	switch mode {
	case FeeModePercentage, FeeModeFixed:
	default:
		return nil, ErrUnknownFeeMode
	}
	now := time.Now()
	return &PlatformFeeConfig{
		ID:          id,
		TerritoryID: territoryID,
		ItemType:    itemType,
		FeeMode:     mode,
		FeeValue:    value,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (c *PlatformFeeConfig) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}

func (c *PlatformFeeConfig) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
}

// CalculateFee computes the platform fee and net seller amount for a price
// in minor units. A nil or inactive config means the platform takes no fee.
// Percentage fees round half-up to the minor unit; fixed fees are capped at
// the price so the net amount can never go negative.
func CalculateFee(price int64, cfg *PlatformFeeConfig) (fee int64, net int64, err error) {
	if price < 0 {
		return 0, 0, ErrNegativeAmount
	}
	if cfg == nil || !cfg.IsActive {
		return 0, price, nil
	}

	switch cfg.FeeMode {
	case FeeModePercentage:
		fee = int64(math.Floor(float64(price)*cfg.FeeValue/100 + 0.5))
	case FeeModeFixed:
		fee = int64(cfg.FeeValue)
		if fee > price {
			fee = price
		}
	default:
		return 0, 0, ErrUnknownFeeMode
	}

	return fee, price - fee, nil
}
