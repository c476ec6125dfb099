package domain

type BucketTotals struct {
	Pending int64
	Ready   int64
	Paid    int64
}

type SellerBalanceRepository interface {
	// GetOrCreateForUpdate loads the balance row under a row-level lock
	// (FOR UPDATE), creating a zero balance if the seller has none yet.
	// Must be called inside a storage transaction.
	GetOrCreateForUpdate(territoryID, sellerUserID, currency string) (*SellerBalance, error)
	// Save writes the balance back guarded by its optimistic-lock version;
	// a stale version yields ErrVersionConflict.
	Save(balance *SellerBalance) error
	GetBalance(territoryID, sellerUserID string) (*SellerBalance, error)
	// ListReadyAbove returns balances whose ready bucket meets the
	// territory's minimum payout amount.
	ListReadyAbove(territoryID string, minimum int64) ([]*SellerBalance, error)
	SumBuckets(territoryID string) (BucketTotals, error)
}
