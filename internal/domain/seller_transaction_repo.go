package domain

import "time"

type SellerTransactionRepository interface {
	CreateTransaction(txn *SellerTransaction) error
	GetTransactionByID(transactionID string) (*SellerTransaction, error)
	// GetTransactionForUpdate loads the row under a row-level lock
	// (FOR UPDATE). Must be called inside a storage transaction; money
	// movers use it so two runs never batch the same transaction.
	GetTransactionForUpdate(transactionID string) (*SellerTransaction, error)
	GetTransactionByCheckoutID(checkoutID string) (*SellerTransaction, error)
	UpdateTransaction(txn *SellerTransaction) error
	// FindPendingBefore returns PENDING transactions credited at or before
	// the retention cutoff for one territory.
	FindPendingBefore(territoryID string, cutoff time.Time) ([]*SellerTransaction, error)
	// FindReadyBySeller locks the READY rows it returns (FOR UPDATE), so a
	// concurrent dispatch run blocks until commit and then finds them
	// already consumed. Must be called inside a storage transaction.
	FindReadyBySeller(territoryID, sellerUserID string) ([]*SellerTransaction, error)
}
