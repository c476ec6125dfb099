package repository

import (
	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPayoutBatchRepository struct {
	DB *gorm.DB
}

func NewDefaultPayoutBatchRepository(db *gorm.DB) *DefaultPayoutBatchRepository {
	return &DefaultPayoutBatchRepository{DB: db}
}

func (r *DefaultPayoutBatchRepository) CreateBatch(batch *domain.PayoutBatch) error {
	batchModel, err := mappers.ToGORMPayoutBatch(batch)
	if err != nil {
		return err
	}
	return r.DB.Create(batchModel).Error
}

func (r *DefaultPayoutBatchRepository) GetBatchByID(batchID string) (*domain.PayoutBatch, error) {
	var batchModel models.PayoutBatchModel
	if err := r.DB.First(&batchModel, "id = ?", batchID).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainPayoutBatch(&batchModel)
}

// GetBatchForUpdate serializes concurrent approval dispatches: the second
// caller blocks here and then fails the PENDING_APPROVAL status check.
func (r *DefaultPayoutBatchRepository) GetBatchForUpdate(batchID string) (*domain.PayoutBatch, error) {
	var batchModel models.PayoutBatchModel
	if err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&batchModel, "id = ?", batchID).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainPayoutBatch(&batchModel)
}

// GetBatchByPayoutID locks the batch row; duplicate gateway callbacks
// serialize here and the later one sees the terminal status.
func (r *DefaultPayoutBatchRepository) GetBatchByPayoutID(payoutID string) (*domain.PayoutBatch, error) {
	var batchModel models.PayoutBatchModel
	if err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&batchModel, "payout_id = ?", payoutID).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainPayoutBatch(&batchModel)
}

func (r *DefaultPayoutBatchRepository) UpdateBatch(batch *domain.PayoutBatch) error {
	batchModel, err := mappers.ToGORMPayoutBatch(batch)
	if err != nil {
		return err
	}
	return r.DB.Save(batchModel).Error
}

func (r *DefaultPayoutBatchRepository) ListBatchesByStatus(territoryID string, status domain.PayoutBatchStatus) ([]*domain.PayoutBatch, error) {
	var batchModels []models.PayoutBatchModel
	if err := r.DB.
		Where("territory_id = ? AND status = ?", territoryID, status).
		Order("created_at ASC").
		Find(&batchModels).Error; err != nil {
		return nil, err
	}

	batches := make([]*domain.PayoutBatch, len(batchModels))
	for i, batchModel := range batchModels {
		batch, err := mappers.ToDomainPayoutBatch(&batchModel)
		if err != nil {
			return nil, err
		}
		batches[i] = batch
	}

	return batches, nil
}
