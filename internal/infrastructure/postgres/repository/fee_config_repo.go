package repository

import (
	"errors"

	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultFeeConfigRepository struct {
	DB *gorm.DB
}

func NewDefaultFeeConfigRepository(db *gorm.DB) *DefaultFeeConfigRepository {
	return &DefaultFeeConfigRepository{DB: db}
}

func (r *DefaultFeeConfigRepository) CreateFeeConfig(cfg *domain.PlatformFeeConfig) error {
	return r.DB.Create(mappers.ToGORMFeeConfig(cfg)).Error
}

func (r *DefaultFeeConfigRepository) GetActiveFeeConfig(territoryID, itemType string) (*domain.PlatformFeeConfig, error) {
	var cfgModel models.PlatformFeeConfigModel
	err := r.DB.
		Where("territory_id = ? AND item_type = ?", territoryID, itemType).
		Where("is_active = ?", true).
		First(&cfgModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No active config means zero fee, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return mappers.ToDomainFeeConfig(&cfgModel), nil
}

func (r *DefaultFeeConfigRepository) SaveFeeConfig(cfg *domain.PlatformFeeConfig) error {
	return r.DB.Save(mappers.ToGORMFeeConfig(cfg)).Error
}
