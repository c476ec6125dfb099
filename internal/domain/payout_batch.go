package domain

import "time"

type PayoutBatchStatus string

const (
	PayoutBatchPendingApproval PayoutBatchStatus = "PENDING_APPROVAL"
	PayoutBatchCreated         PayoutBatchStatus = "CREATED"
	PayoutBatchDispatched      PayoutBatchStatus = "DISPATCHED"
	PayoutBatchCompleted       PayoutBatchStatus = "COMPLETED"
	PayoutBatchFailed          PayoutBatchStatus = "FAILED"
)

// PayoutBatch groups one seller's ready transactions into a single gateway
// instruction. Batches are persisted rows, not process memory, so a restart
// mid-run resumes from the store.
type PayoutBatch struct {
	ID             string
	Reference      string
	TerritoryID    string
	SellerUserID   string
	Currency       string
	Amount         int64
	TransactionIDs []string

	Status        PayoutBatchStatus
	PayoutID      *string
	FailureReason string

	CreatedAt    time.Time
	DispatchedAt *time.Time
	UpdatedAt    time.Time
}

func (b *PayoutBatch) MarkDispatched(payoutID string, now time.Time) error {
	if b.Status != PayoutBatchCreated && b.Status != PayoutBatchPendingApproval {
		return ErrBatchNotDispatchable
	}
	b.Status = PayoutBatchDispatched
	b.PayoutID = &payoutID
	b.DispatchedAt = &now
	b.UpdatedAt = now
	return nil
}

func (b *PayoutBatch) MarkCompleted(now time.Time) {
	b.Status = PayoutBatchCompleted
	b.UpdatedAt = now
}

func (b *PayoutBatch) MarkFailed(reason string, now time.Time) {
	b.Status = PayoutBatchFailed
	b.FailureReason = reason
	b.UpdatedAt = now
}
