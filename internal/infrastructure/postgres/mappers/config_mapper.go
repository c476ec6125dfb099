package mappers

import (
	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainFeeConfig(model *models.PlatformFeeConfigModel) *domain.PlatformFeeConfig {
	return &domain.PlatformFeeConfig{
		ID:          model.ID,
		TerritoryID: model.TerritoryID,
		ItemType:    model.ItemType,
		FeeMode:     model.FeeMode,
		FeeValue:    model.FeeValue,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMFeeConfig(cfg *domain.PlatformFeeConfig) *models.PlatformFeeConfigModel {
	return &models.PlatformFeeConfigModel{
		ID:          cfg.ID,
		TerritoryID: cfg.TerritoryID,
		ItemType:    cfg.ItemType,
		FeeMode:     cfg.FeeMode,
		FeeValue:    cfg.FeeValue,
		IsActive:    cfg.IsActive,
		CreatedAt:   cfg.CreatedAt,
		UpdatedAt:   cfg.UpdatedAt,
	}
}

func ToDomainPayoutConfig(model *models.TerritoryPayoutConfigModel) *domain.TerritoryPayoutConfig {
	return &domain.TerritoryPayoutConfig{
		ID:                  model.ID,
		TerritoryID:         model.TerritoryID,
		RetentionPeriodDays: model.RetentionPeriodDays,
		MinimumPayoutAmount: model.MinimumPayoutAmount,
		MaximumPayoutAmount: model.MaximumPayoutAmount,
		Frequency:           model.Frequency,
		AutoPayoutEnabled:   model.AutoPayoutEnabled,
		RequiresApproval:    model.RequiresApproval,
		IsActive:            model.IsActive,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMPayoutConfig(cfg *domain.TerritoryPayoutConfig) *models.TerritoryPayoutConfigModel {
	return &models.TerritoryPayoutConfigModel{
		ID:                  cfg.ID,
		TerritoryID:         cfg.TerritoryID,
		RetentionPeriodDays: cfg.RetentionPeriodDays,
		MinimumPayoutAmount: cfg.MinimumPayoutAmount,
		MaximumPayoutAmount: cfg.MaximumPayoutAmount,
		Frequency:           cfg.Frequency,
		AutoPayoutEnabled:   cfg.AutoPayoutEnabled,
		RequiresApproval:    cfg.RequiresApproval,
		IsActive:            cfg.IsActive,
		CreatedAt:           cfg.CreatedAt,
		UpdatedAt:           cfg.UpdatedAt,
	}
}
