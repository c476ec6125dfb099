package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/kafka"
)

var newBatchReference = mustReferenceGenerator()

func mustReferenceGenerator() func() string {
	gen, err := nanoid.Standard(16)
	if err != nil {
		panic(err)
	}
	return func() string { return "po_" + gen() }
}

// DispatchPayouts runs one payout cycle for a territory: group each eligible
// seller's ready transactions into batches, persist them, then submit each
// batch to the gateway. Gateway calls happen outside the storage transaction;
// member transactions are locked into PROCESSING_PAYOUT before submission so
// a concurrent run can never double-batch them.
func (uc *DefaultPayoutUsecase) DispatchPayouts(ctx context.Context, territoryID string) error {
	start := time.Now()
	defer func() {
		uc.Metrics.RecordDispatchDuration(territoryID, time.Since(start).Seconds())
	}()

	cfg, err := uc.PayoutConfigRepo.GetActivePayoutConfig(territoryID)
	if err != nil {
		return err
	}
	if cfg == nil || !cfg.AutoPayoutEnabled {
		return nil
	}

	var created []*domain.PayoutBatch
	err = uc.TxManager.WithinTransaction(ctx, func(s domain.Stores) error {
		balances, err := s.Balances.ListReadyAbove(territoryID, cfg.MinimumPayoutAmount)
		if err != nil {
			return err
		}

		for _, balance := range balances {
			txns, err := s.Transactions.FindReadyBySeller(territoryID, balance.SellerUserID)
			if err != nil {
				return err
			}

			for _, group := range splitByMaximum(txns, cfg.MaximumPayoutAmount) {
				if group.amount < cfg.MinimumPayoutAmount {
					continue
				}

				batch := buildBatch(cfg, balance, group)
				if err := s.Batches.CreateBatch(batch); err != nil {
					return err
				}

				if batch.Status == domain.PayoutBatchPendingApproval {
					uc.Metrics.RecordPayoutBatch(territoryID, string(batch.Status), batch.Currency, batch.Amount)
					continue
				}

				if err := lockBatchTransactions(s, batch, group.txns); err != nil {
					return err
				}
				created = append(created, batch)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, batch := range created {
		if err := uc.submitBatch(ctx, batch); err != nil {
			slog.Error("payout batch submit failed",
				"batch_id", batch.ID,
				"territory_id", batch.TerritoryID,
				"error", err.Error())
		}
	}

	return nil
}

// DispatchApprovedBatch is the operator-approval path: a PENDING_APPROVAL
// batch queued by DispatchPayouts is locked and submitted on demand.
func (uc *DefaultPayoutUsecase) DispatchApprovedBatch(ctx context.Context, batchID string) error {
	var batch *domain.PayoutBatch
	err := uc.TxManager.WithinTransaction(ctx, func(s domain.Stores) error {
		var err error
		batch, err = s.Batches.GetBatchForUpdate(batchID)
		if err != nil {
			return err
		}
		if batch.Status != domain.PayoutBatchPendingApproval {
			return domain.ErrBatchNotDispatchable
		}

		txns, err := loadBatchTransactions(s, batch)
		if err != nil {
			return err
		}
		return lockBatchTransactions(s, batch, txns)
	})
	if err != nil {
		return err
	}

	return uc.submitBatch(ctx, batch)
}

// submitBatch hands one batch to the gateway and records the outcome. A
// submit error returns every member transaction to READY_FOR_PAYOUT so the
// next cycle retries; funds are never stranded in PROCESSING_PAYOUT.
func (uc *DefaultPayoutUsecase) submitBatch(ctx context.Context, batch *domain.PayoutBatch) error {
	payoutID, submitErr := uc.Gateway.SubmitPayout(ctx, domain.PayoutInstruction{
		Reference:    batch.Reference,
		SellerUserID: batch.SellerUserID,
		Amount:       batch.Amount,
		Currency:     batch.Currency,
	})

	now := time.Now()
	if submitErr != nil {
		uc.Metrics.RecordPayoutFailure(batch.TerritoryID, "submit")
		err := uc.TxManager.WithinTransaction(ctx, func(s domain.Stores) error {
			txns, err := loadBatchTransactions(s, batch)
			if err != nil {
				return err
			}
			for _, txn := range txns {
				if err := txn.FailPayout(); err != nil {
					return err
				}
				if err := s.Transactions.UpdateTransaction(txn); err != nil {
					return err
				}
			}
			batch.MarkFailed(fmt.Sprintf("submit: %v", submitErr), now)
			return s.Batches.UpdateBatch(batch)
		})
		if err != nil {
			return err
		}
		uc.Metrics.RecordPayoutBatch(batch.TerritoryID, string(batch.Status), batch.Currency, batch.Amount)
		return submitErr
	}

	err := uc.TxManager.WithinTransaction(ctx, func(s domain.Stores) error {
		if err := batch.MarkDispatched(payoutID, now); err != nil {
			return err
		}
		txns, err := loadBatchTransactions(s, batch)
		if err != nil {
			return err
		}
		for _, txn := range txns {
			txn.PayoutID = &payoutID
			if err := s.Transactions.UpdateTransaction(txn); err != nil {
				return err
			}
		}
		return s.Batches.UpdateBatch(batch)
	})
	if err != nil {
		return err
	}

	uc.Metrics.RecordPayoutBatch(batch.TerritoryID, string(batch.Status), batch.Currency, batch.Amount)
	go uc.publishBatchEvent(batch)

	return nil
}

type txnGroup struct {
	txns   []*domain.SellerTransaction
	amount int64
}

// splitByMaximum packs ready transactions into groups whose net sum stays at
// or below the territory maximum. A single transaction above the maximum
// still gets its own group: it has to be paid out somehow.
func splitByMaximum(txns []*domain.SellerTransaction, maximum *int64) []txnGroup {
	if len(txns) == 0 {
		return nil
	}
	if maximum == nil {
		group := txnGroup{txns: txns}
		for _, txn := range txns {
			group.amount += txn.NetAmount
		}
		return []txnGroup{group}
	}

	var groups []txnGroup
	current := txnGroup{}
	for _, txn := range txns {
		if len(current.txns) > 0 && current.amount+txn.NetAmount > *maximum {
			groups = append(groups, current)
			current = txnGroup{}
		}
		current.txns = append(current.txns, txn)
		current.amount += txn.NetAmount
	}
	if len(current.txns) > 0 {
		groups = append(groups, current)
	}

	return groups
}

func buildBatch(cfg *domain.TerritoryPayoutConfig, balance *domain.SellerBalance, group txnGroup) *domain.PayoutBatch {
	status := domain.PayoutBatchCreated
	if cfg.RequiresApproval {
		status = domain.PayoutBatchPendingApproval
	}

	ids := make([]string, len(group.txns))
	for i, txn := range group.txns {
		ids[i] = txn.ID
	}

	now := time.Now()
	return &domain.PayoutBatch{
		ID:             uuid.New().String(),
		Reference:      newBatchReference(),
		TerritoryID:    cfg.TerritoryID,
		SellerUserID:   balance.SellerUserID,
		Currency:       balance.Currency,
		Amount:         group.amount,
		TransactionIDs: ids,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// loadBatchTransactions reads members under row locks: runs touching the
// same batch serialize here instead of double-spending its transactions.
func loadBatchTransactions(s domain.Stores, batch *domain.PayoutBatch) ([]*domain.SellerTransaction, error) {
	txns := make([]*domain.SellerTransaction, 0, len(batch.TransactionIDs))
	for _, id := range batch.TransactionIDs {
		txn, err := s.Transactions.GetTransactionForUpdate(id)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// lockBatchTransactions pins each member into PROCESSING_PAYOUT under the
// batch reference. The gateway payout id replaces the reference once the
// submit succeeds.
func lockBatchTransactions(s domain.Stores, batch *domain.PayoutBatch, txns []*domain.SellerTransaction) error {
	for _, txn := range txns {
		if err := txn.StartPayout(batch.Reference); err != nil {
			return err
		}
		if err := s.Transactions.UpdateTransaction(txn); err != nil {
			return err
		}
	}
	return nil
}

func (uc *DefaultPayoutUsecase) publishBatchEvent(batch *domain.PayoutBatch) {
	payload, err := json.Marshal(kafka.PayoutBatchEvent{
		BatchID:      batch.ID,
		Reference:    batch.Reference,
		TerritoryID:  batch.TerritoryID,
		SellerUserID: batch.SellerUserID,
		Status:       string(batch.Status),
		Amount:       batch.Amount,
		Currency:     batch.Currency,
	})
	if err != nil {
		slog.Error("failed to marshal PayoutBatchEvent", "error", err.Error())
		return
	}
	if err := uc.Publisher.Publish(kafka.TopicPayoutEvents, domain.Message{
		Key:   []byte(batch.ID),
		Value: payload,
	}); err != nil {
		slog.Error("failed to publish PayoutBatchEvent", "error", err.Error())
	}
}
