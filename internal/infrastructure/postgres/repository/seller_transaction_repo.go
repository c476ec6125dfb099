package repository

import (
	"time"

	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultSellerTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultSellerTransactionRepository(db *gorm.DB) *DefaultSellerTransactionRepository {
	return &DefaultSellerTransactionRepository{DB: db}
}

func (r *DefaultSellerTransactionRepository) CreateTransaction(txn *domain.SellerTransaction) error {
	txnModel := mappers.ToGORMSellerTransaction(txn)
	if err := r.DB.Create(txnModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultSellerTransactionRepository) GetTransactionByID(transactionID string) (*domain.SellerTransaction, error) {
	var txn models.SellerTransactionModel
	if err := r.DB.First(&txn, "id = ?", transactionID).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainSellerTransaction(&txn), nil
}

// GetTransactionForUpdate holds the row lock until the surrounding
// transaction commits, so racing payout runs serialize here.
func (r *DefaultSellerTransactionRepository) GetTransactionForUpdate(transactionID string) (*domain.SellerTransaction, error) {
	var txn models.SellerTransactionModel
	if err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&txn, "id = ?", transactionID).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainSellerTransaction(&txn), nil
}

func (r *DefaultSellerTransactionRepository) GetTransactionByCheckoutID(checkoutID string) (*domain.SellerTransaction, error) {
	var txn models.SellerTransactionModel
	if err := r.DB.First(&txn, "checkout_id = ?", checkoutID).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainSellerTransaction(&txn), nil
}

func (r *DefaultSellerTransactionRepository) UpdateTransaction(txn *domain.SellerTransaction) error {
	txnModel := mappers.ToGORMSellerTransaction(txn)
	if err := r.DB.Save(txnModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultSellerTransactionRepository) FindPendingBefore(territoryID string, cutoff time.Time) ([]*domain.SellerTransaction, error) {
	var txnModels []models.SellerTransactionModel
	if err := r.DB.
		Where("territory_id = ?", territoryID).
		Where("status = ?", domain.SellerTxPending).
		Where("created_at <= ?", cutoff).
		Find(&txnModels).Error; err != nil {
		return nil, err
	}

	txns := make([]*domain.SellerTransaction, len(txnModels))
	for i, txnModel := range txnModels {
		txns[i] = mappers.ToDomainSellerTransaction(&txnModel)
	}

	return txns, nil
}

// FindReadyBySeller locks the READY rows FOR UPDATE. A concurrent dispatch
// run blocks on the same rows and re-reads them after commit, by which time
// they are PROCESSING_PAYOUT and fall out of the filter.
func (r *DefaultSellerTransactionRepository) FindReadyBySeller(territoryID, sellerUserID string) ([]*domain.SellerTransaction, error) {
	var txnModels []models.SellerTransactionModel
	if err := r.DB.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("territory_id = ? AND seller_user_id = ?", territoryID, sellerUserID).
		Where("status = ?", domain.SellerTxReadyForPayout).
		Order("ready_for_payout_at ASC").
		Find(&txnModels).Error; err != nil {
		return nil, err
	}

	txns := make([]*domain.SellerTransaction, len(txnModels))
	for i, txnModel := range txnModels {
		txns[i] = mappers.ToDomainSellerTransaction(&txnModel)
	}

	return txns, nil
}
