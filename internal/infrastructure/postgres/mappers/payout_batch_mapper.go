package mappers

import (
	"encoding/json"

	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainPayoutBatch(model *models.PayoutBatchModel) (*domain.PayoutBatch, error) {
	var txnIDs []string
	if model.TransactionIDs != "" {
		if err := json.Unmarshal([]byte(model.TransactionIDs), &txnIDs); err != nil {
			return nil, err
		}
	}

	return &domain.PayoutBatch{
		ID:             model.ID,
		Reference:      model.Reference,
		TerritoryID:    model.TerritoryID,
		SellerUserID:   model.SellerUserID,
		Currency:       model.Currency,
		Amount:         model.Amount,
		TransactionIDs: txnIDs,
		Status:         model.Status,
		PayoutID:       model.PayoutID,
		FailureReason:  model.FailureReason,
		CreatedAt:      model.CreatedAt,
		DispatchedAt:   model.DispatchedAt,
		UpdatedAt:      model.UpdatedAt,
	}, nil
}

func ToGORMPayoutBatch(batch *domain.PayoutBatch) (*models.PayoutBatchModel, error) {
	txnIDs, err := json.Marshal(batch.TransactionIDs)
	if err != nil {
		return nil, err
	}

	return &models.PayoutBatchModel{
		ID:             batch.ID,
		Reference:      batch.Reference,
		TerritoryID:    batch.TerritoryID,
		SellerUserID:   batch.SellerUserID,
		Currency:       batch.Currency,
		Amount:         batch.Amount,
		TransactionIDs: string(txnIDs),
		Status:         batch.Status,
		PayoutID:       batch.PayoutID,
		FailureReason:  batch.FailureReason,
		CreatedAt:      batch.CreatedAt,
		DispatchedAt:   batch.DispatchedAt,
		UpdatedAt:      batch.UpdatedAt,
	}, nil
}
