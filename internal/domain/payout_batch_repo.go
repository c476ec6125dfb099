package domain

type PayoutBatchRepository interface {
	CreateBatch(batch *PayoutBatch) error
	GetBatchByID(batchID string) (*PayoutBatch, error)
	// GetBatchForUpdate loads the batch under a row-level lock (FOR UPDATE)
	// so concurrent approval dispatches serialize on the status check. Must
	// be called inside a storage transaction.
	GetBatchForUpdate(batchID string) (*PayoutBatch, error)
	// GetBatchByPayoutID locks the row it returns; it only runs inside the
	// gateway-callback transaction, where concurrent deliveries must
	// serialize on the batch status.
	GetBatchByPayoutID(payoutID string) (*PayoutBatch, error)
	UpdateBatch(batch *PayoutBatch) error
	ListBatchesByStatus(territoryID string, status PayoutBatchStatus) ([]*PayoutBatch, error)
}
