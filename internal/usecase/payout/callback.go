package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/terracommons/settlement-service/internal/domain"
)

// HandleGatewayResult applies the gateway's asynchronous verdict to a
// dispatched batch. The handler is idempotent: a redelivered callback finds
// the batch already terminal and returns without touching the ledger.
func (uc *DefaultPayoutUsecase) HandleGatewayResult(ctx context.Context, result domain.GatewayResult) error {
	var batch *domain.PayoutBatch

	err := uc.TxManager.WithinTransaction(ctx, func(s domain.Stores) error {
		var err error
		batch, err = s.Batches.GetBatchByPayoutID(result.PayoutID)
		if err != nil {
			return err
		}

		switch batch.Status {
		case domain.PayoutBatchCompleted, domain.PayoutBatchFailed:
			// Duplicate delivery.
			batch = nil
			return nil
		case domain.PayoutBatchDispatched:
		default:
			return domain.ErrBatchNotDispatchable
		}

		now := time.Now()
		if result.Succeeded {
			return uc.completeBatch(s, batch, now)
		}
		return uc.failBatch(s, batch, result, now)
	})
	if err != nil {
		return err
	}
	if batch == nil {
		return nil
	}

	uc.Metrics.RecordPayoutBatch(batch.TerritoryID, string(batch.Status), batch.Currency, batch.Amount)
	go uc.publishBatchEvent(batch)

	return nil
}

// completeBatch settles every member transaction: PROCESSING_PAYOUT -> PAID,
// ready bucket -> paid bucket, one platform expense row per transaction.
func (uc *DefaultPayoutUsecase) completeBatch(s domain.Stores, batch *domain.PayoutBatch, now time.Time) error {
	txns, err := loadBatchTransactions(s, batch)
	if err != nil {
		return err
	}

	for _, txn := range txns {
		if err := txn.CompletePayout(now); err != nil {
			if errors.Is(err, domain.ErrAlreadyTerminal) {
				continue
			}
			return err
		}

		balance, err := s.Balances.GetOrCreateForUpdate(txn.TerritoryID, txn.SellerUserID, txn.Currency)
		if err != nil {
			return err
		}
		if err := balance.MarkAsPaid(txn.NetAmount); err != nil {
			return err
		}

		if err := s.Transactions.UpdateTransaction(txn); err != nil {
			return err
		}
		if err := s.Balances.Save(balance); err != nil {
			return err
		}

		if err := s.Platform.RecordExpense(&domain.PlatformExpenseTransaction{
			ID:            uuid.New().String(),
			TerritoryID:   txn.TerritoryID,
			PayoutBatchID: batch.ID,
			SellerUserID:  txn.SellerUserID,
			Currency:      txn.Currency,
			Amount:        txn.NetAmount,
			RecordedAt:    now,
		}); err != nil {
			return err
		}

		uc.Metrics.RecordTransactionStatus(txn.TerritoryID, string(txn.Status))
	}

	batch.MarkCompleted(now)
	return s.Batches.UpdateBatch(batch)
}

// failBatch handles a rejected payout. Retryable rejections send every
// member back to READY_FOR_PAYOUT for the next cycle; permanent ones park
// them in FAILED for an operator. Either way the funds stay in the ready
// bucket, visible to reconciliation.
func (uc *DefaultPayoutUsecase) failBatch(s domain.Stores, batch *domain.PayoutBatch, result domain.GatewayResult, now time.Time) error {
	txns, err := loadBatchTransactions(s, batch)
	if err != nil {
		return err
	}

	kind := "retryable"
	if result.Permanent {
		kind = "permanent"
	}
	uc.Metrics.RecordPayoutFailure(batch.TerritoryID, kind)

	for _, txn := range txns {
		var terr error
		if result.Permanent {
			terr = txn.MarkFailed()
		} else {
			terr = txn.FailPayout()
		}
		if terr != nil {
			if errors.Is(terr, domain.ErrAlreadyTerminal) {
				continue
			}
			return terr
		}
		if err := s.Transactions.UpdateTransaction(txn); err != nil {
			return err
		}
		uc.Metrics.RecordTransactionStatus(txn.TerritoryID, string(txn.Status))
	}

	batch.MarkFailed(result.Reason, now)
	return s.Batches.UpdateBatch(batch)
}
