package mappers

import (
	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainSellerBalance(model *models.SellerBalanceModel) *domain.SellerBalance {
	return &domain.SellerBalance{
		ID:                   model.ID,
		TerritoryID:          model.TerritoryID,
		SellerUserID:         model.SellerUserID,
		Currency:             model.Currency,
		PendingAmount:        model.PendingAmount,
		ReadyForPayoutAmount: model.ReadyForPayoutAmount,
		PaidAmount:           model.PaidAmount,
		Version:              model.Version,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

func ToGORMSellerBalance(balance *domain.SellerBalance) *models.SellerBalanceModel {
	return &models.SellerBalanceModel{
		ID:                   balance.ID,
		TerritoryID:          balance.TerritoryID,
		SellerUserID:         balance.SellerUserID,
		Currency:             balance.Currency,
		PendingAmount:        balance.PendingAmount,
		ReadyForPayoutAmount: balance.ReadyForPayoutAmount,
		PaidAmount:           balance.PaidAmount,
		Version:              balance.Version,
		CreatedAt:            balance.CreatedAt,
		UpdatedAt:            balance.UpdatedAt,
	}
}
