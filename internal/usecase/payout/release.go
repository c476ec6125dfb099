package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/kafka"
)

// ReleaseRetainedFunds moves every pending transaction past the territory's
// retention gate: PENDING -> READY_FOR_PAYOUT plus the matching balance
// bucket move, one storage transaction for the whole territory sweep.
func (uc *DefaultPayoutUsecase) ReleaseRetainedFunds(ctx context.Context, territoryID string) error {
	cfg, err := uc.PayoutConfigRepo.GetActivePayoutConfig(territoryID)
	if err != nil {
		return err
	}
	if cfg == nil {
		// No active policy: funds stay pending until an operator adds one.
		return nil
	}

	now := time.Now()
	cutoff := cfg.RetentionCutoff(now)

	var released []*domain.SellerTransaction
	err = uc.TxManager.WithinTransaction(ctx, func(s domain.Stores) error {
		matured, err := s.Transactions.FindPendingBefore(territoryID, cutoff)
		if err != nil {
			return err
		}

		for _, txn := range matured {
			balance, err := s.Balances.GetOrCreateForUpdate(txn.TerritoryID, txn.SellerUserID, txn.Currency)
			if err != nil {
				return err
			}

			if err := balance.MoveToReadyForPayout(txn.NetAmount); err != nil {
				var insufficient *domain.InsufficientFundsError
				if errors.As(err, &insufficient) {
					// Ledger drift: leave the row pending and surface it.
					uc.Metrics.RecordLedgerError(territoryID, "insufficient_pending")
					slog.Error("pending bucket short on release",
						"transaction_id", txn.ID,
						"seller_user_id", txn.SellerUserID,
						"error", err.Error())
					continue
				}
				return err
			}

			if err := txn.MarkReadyForPayout(now); err != nil {
				return err
			}
			if err := s.Transactions.UpdateTransaction(txn); err != nil {
				return err
			}
			if err := s.Balances.Save(balance); err != nil {
				return err
			}

			released = append(released, txn)
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, txn := range released {
		uc.Metrics.RecordFundsReleased(txn.TerritoryID, txn.Currency, txn.NetAmount)
		uc.Metrics.RecordTransactionStatus(txn.TerritoryID, string(txn.Status))
	}

	if len(released) > 0 {
		go uc.publishReleased(released)
	}

	return nil
}

func (uc *DefaultPayoutUsecase) publishReleased(released []*domain.SellerTransaction) {
	msgs := make([]domain.Message, 0, len(released))
	for _, txn := range released {
		payload, err := json.Marshal(kafka.FundsReleasedEvent{
			TransactionID: txn.ID,
			TerritoryID:   txn.TerritoryID,
			SellerUserID:  txn.SellerUserID,
			Amount:        txn.NetAmount,
			Currency:      txn.Currency,
		})
		if err != nil {
			slog.Error("failed to marshal FundsReleasedEvent", "error", err.Error())
			continue
		}
		msgs = append(msgs, domain.Message{Key: []byte(txn.ID), Value: payload})
	}

	if err := uc.Publisher.Publish(kafka.TopicSettlementEvents, msgs...); err != nil {
		slog.Error("failed to publish FundsReleasedEvent batch", "error", err.Error())
	}
}
