package mappers

import (
	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainSellerTransaction(model *models.SellerTransactionModel) *domain.SellerTransaction {
	return &domain.SellerTransaction{
		ID:               model.ID,
		CheckoutID:       model.CheckoutID,
		TerritoryID:      model.TerritoryID,
		SellerUserID:     model.SellerUserID,
		Currency:         model.Currency,
		GrossAmount:      model.GrossAmount,
		PlatformFee:      model.PlatformFee,
		NetAmount:        model.NetAmount,
		Status:           model.Status,
		PayoutID:         model.PayoutID,
		PayoutAttempts:   model.PayoutAttempts,
		ReadyForPayoutAt: model.ReadyForPayoutAt,
		PaidAt:           model.PaidAt,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMSellerTransaction(txn *domain.SellerTransaction) *models.SellerTransactionModel {
	return &models.SellerTransactionModel{
		ID:               txn.ID,
		CheckoutID:       txn.CheckoutID,
		TerritoryID:      txn.TerritoryID,
		SellerUserID:     txn.SellerUserID,
		Currency:         txn.Currency,
		GrossAmount:      txn.GrossAmount,
		PlatformFee:      txn.PlatformFee,
		NetAmount:        txn.NetAmount,
		Status:           txn.Status,
		PayoutID:         txn.PayoutID,
		PayoutAttempts:   txn.PayoutAttempts,
		ReadyForPayoutAt: txn.ReadyForPayoutAt,
		PaidAt:           txn.PaidAt,
		CreatedAt:        txn.CreatedAt,
		UpdatedAt:        txn.UpdatedAt,
	}
}
