package domain

type FeeConfigRepository interface {
	CreateFeeConfig(cfg *PlatformFeeConfig) error
	// GetActiveFeeConfig returns (nil, nil) when no active config exists:
	// the platform deliberately takes no fee in that case.
	GetActiveFeeConfig(territoryID, itemType string) (*PlatformFeeConfig, error)
	SaveFeeConfig(cfg *PlatformFeeConfig) error
}

type PayoutConfigRepository interface {
	CreatePayoutConfig(cfg *TerritoryPayoutConfig) error
	// GetActivePayoutConfig returns (nil, nil) when the territory has no
	// active payout policy; the engine skips such territories.
	GetActivePayoutConfig(territoryID string) (*TerritoryPayoutConfig, error)
	ListActivePayoutConfigs() ([]*TerritoryPayoutConfig, error)
	SavePayoutConfig(cfg *TerritoryPayoutConfig) error
}
