package repository

import (
	"errors"

	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPayoutConfigRepository struct {
	DB *gorm.DB
}

func NewDefaultPayoutConfigRepository(db *gorm.DB) *DefaultPayoutConfigRepository {
	return &DefaultPayoutConfigRepository{DB: db}
}

func (r *DefaultPayoutConfigRepository) CreatePayoutConfig(cfg *domain.TerritoryPayoutConfig) error {
	return r.DB.Create(mappers.ToGORMPayoutConfig(cfg)).Error
}

func (r *DefaultPayoutConfigRepository) GetActivePayoutConfig(territoryID string) (*domain.TerritoryPayoutConfig, error) {
	var cfgModel models.TerritoryPayoutConfigModel
	err := r.DB.
		Where("territory_id = ? AND is_active = ?", territoryID, true).
		First(&cfgModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return mappers.ToDomainPayoutConfig(&cfgModel), nil
}

func (r *DefaultPayoutConfigRepository) ListActivePayoutConfigs() ([]*domain.TerritoryPayoutConfig, error) {
	var cfgModels []models.TerritoryPayoutConfigModel
	if err := r.DB.Where("is_active = ?", true).Find(&cfgModels).Error; err != nil {
		return nil, err
	}

	cfgs := make([]*domain.TerritoryPayoutConfig, len(cfgModels))
	for i, cfgModel := range cfgModels {
		cfgs[i] = mappers.ToDomainPayoutConfig(&cfgModel)
	}

	return cfgs, nil
}

func (r *DefaultPayoutConfigRepository) SavePayoutConfig(cfg *domain.TerritoryPayoutConfig) error {
	return r.DB.Save(mappers.ToGORMPayoutConfig(cfg)).Error
}
