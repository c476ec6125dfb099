package usecase

import (
	"github.com/google/uuid"
	"github.com/terracommons/settlement-service/internal/domain"
)

type ConfigUsecase interface {
	SetFeeConfig(territoryID, itemType string, mode domain.FeeMode, value float64) (*domain.PlatformFeeConfig, error)
	SetPayoutConfig(territoryID string, retentionDays int, minimum int64, maximum *int64, frequency domain.PayoutFrequency) (*domain.TerritoryPayoutConfig, error)
	GetActiveFeeConfig(territoryID, itemType string) (*domain.PlatformFeeConfig, error)
	GetActivePayoutConfig(territoryID string) (*domain.TerritoryPayoutConfig, error)
}

type DefaultConfigUsecase struct {
	FeeRepo    domain.FeeConfigRepository
	PayoutRepo domain.PayoutConfigRepository
}

func NewDefaultConfigUsecase(feeRepo domain.FeeConfigRepository, payoutRepo domain.PayoutConfigRepository) *DefaultConfigUsecase {
	return &DefaultConfigUsecase{FeeRepo: feeRepo, PayoutRepo: payoutRepo}
}

// SetFeeConfig activates a new fee rule for the (territory, item type) pair.
// The previous active rule is deactivated, never deleted: already-settled
// checkouts keep their snapshots and history stays queryable.
func (uc *DefaultConfigUsecase) SetFeeConfig(territoryID, itemType string, mode domain.FeeMode, value float64) (*domain.PlatformFeeConfig, error) {
	cfg, err := domain.NewPlatformFeeConfig(uuid.New().String(), territoryID, itemType, mode, value)
	if err != nil {
		return nil, err
	}

	previous, err := uc.FeeRepo.GetActiveFeeConfig(territoryID, itemType)
	if err != nil {
		return nil, err
	}
	if previous != nil {
		previous.Deactivate()
		if err := uc.FeeRepo.SaveFeeConfig(previous); err != nil {
			return nil, err
		}
	}

	if err := uc.FeeRepo.CreateFeeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetPayoutConfig activates a new payout policy for the territory, retiring
// the previous one.
func (uc *DefaultConfigUsecase) SetPayoutConfig(territoryID string, retentionDays int, minimum int64, maximum *int64, frequency domain.PayoutFrequency) (*domain.TerritoryPayoutConfig, error) {
	cfg, err := domain.NewTerritoryPayoutConfig(uuid.New().String(), territoryID, retentionDays, minimum, maximum, frequency)
	if err != nil {
		return nil, err
	}

	previous, err := uc.PayoutRepo.GetActivePayoutConfig(territoryID)
	if err != nil {
		return nil, err
	}
	if previous != nil {
		previous.Deactivate()
		if err := uc.PayoutRepo.SavePayoutConfig(previous); err != nil {
			return nil, err
		}
	}

	if err := uc.PayoutRepo.CreatePayoutConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (uc *DefaultConfigUsecase) GetActiveFeeConfig(territoryID, itemType string) (*domain.PlatformFeeConfig, error) {
	return uc.FeeRepo.GetActiveFeeConfig(territoryID, itemType)
}

func (uc *DefaultConfigUsecase) GetActivePayoutConfig(territoryID string) (*domain.TerritoryPayoutConfig, error) {
	return uc.PayoutRepo.GetActivePayoutConfig(territoryID)
}
