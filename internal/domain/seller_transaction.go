package domain

import (
	"fmt"
	"time"
)

type SellerTransactionStatus string

const (
	SellerTxPending          SellerTransactionStatus = "PENDING"
	SellerTxReadyForPayout   SellerTransactionStatus = "READY_FOR_PAYOUT"
	SellerTxProcessingPayout SellerTransactionStatus = "PROCESSING_PAYOUT"
	SellerTxPaid             SellerTransactionStatus = "PAID"
	SellerTxFailed           SellerTransactionStatus = "FAILED"
	SellerTxCanceled         SellerTransactionStatus = "CANCELED"
)

// InvalidTransitionError reports a state-machine call made from a state that
// does not permit it. Callers treat it as a bug signal for that row, not a
// reason to abort a whole batch run.
type InvalidTransitionError struct {
	Entity    string
	From      string
	Operation string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: invalid transition %s from state %s", e.Entity, e.Operation, e.From)
}

// SellerTransaction is the money owed to a seller for one paid checkout.
// Exactly one exists per checkout; gross, fee and net are fixed at creation
// and net = gross - fee always holds.
type SellerTransaction struct {
	ID           string
	CheckoutID   string
	TerritoryID  string
	SellerUserID string
	Currency     string

	GrossAmount int64
	PlatformFee int64
	NetAmount   int64

	Status         SellerTransactionStatus
	PayoutID       *string
	PayoutAttempts int

	ReadyForPayoutAt *time.Time
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewSellerTransaction snapshots a paid checkout's totals. The checkout must
// already be Paid with totals frozen. Gross is the items subtotal — the
// price the platform fee is levied against — so the seller is owed
// price minus fee, never the buyer-facing total.
func NewSellerTransaction(id string, checkout *Checkout) (*SellerTransaction, error) {
	if checkout.Status != CheckoutStatusPaid {
		return nil, &InvalidTransitionError{Entity: "seller_transaction", From: string(checkout.Status), Operation: "NewSellerTransaction"}
	}
	if checkout.TotalAmount == nil || checkout.ItemsSubtotal == nil || checkout.PlatformFeeAmount == nil {
		return nil, ErrTotalsNotSet
	}

	gross := *checkout.ItemsSubtotal
	fee := *checkout.PlatformFeeAmount
	now := time.Now()
	return &SellerTransaction{
		ID:           id,
		CheckoutID:   checkout.ID,
		TerritoryID:  checkout.TerritoryID,
		SellerUserID: checkout.SellerUserID,
		Currency:     checkout.Currency,
		GrossAmount:  gross,
		PlatformFee:  fee,
		NetAmount:    gross - fee,
		Status:       SellerTxPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (t *SellerTransaction) IsTerminal() bool {
	switch t.Status {
	case SellerTxPaid, SellerTxFailed, SellerTxCanceled:
		return true
	}
	return false
}

// MarkReadyForPayout moves pending funds past the retention gate.
func (t *SellerTransaction) MarkReadyForPayout(now time.Time) error {
	if t.Status != SellerTxPending {
		return &InvalidTransitionError{Entity: "seller_transaction", From: string(t.Status), Operation: "MarkReadyForPayout"}
	}
	t.Status = SellerTxReadyForPayout
	t.ReadyForPayoutAt = &now
	t.UpdatedAt = now
	return nil
}

// StartPayout records the external payout identifier and locks the row into
// the in-flight state. Repeated StartPayout attempts on a ReadyForPayout
// transaction are allowed across batch runs; only the current state gates it.
func (t *SellerTransaction) StartPayout(payoutID string) error {
	if t.Status != SellerTxReadyForPayout {
		return &InvalidTransitionError{Entity: "seller_transaction", From: string(t.Status), Operation: "StartPayout"}
	}
	t.Status = SellerTxProcessingPayout
	t.PayoutID = &payoutID
	t.PayoutAttempts++
	t.UpdatedAt = time.Now()
	return nil
}

// CompletePayout finishes a payout. A second delivery of the same gateway
// callback finds the row terminal and gets ErrAlreadyTerminal, never a
// double credit.
func (t *SellerTransaction) CompletePayout(now time.Time) error {
	if t.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if t.Status != SellerTxProcessingPayout {
		return &InvalidTransitionError{Entity: "seller_transaction", From: string(t.Status), Operation: "CompletePayout"}
	}
	t.Status = SellerTxPaid
	t.PaidAt = &now
	t.UpdatedAt = now
	return nil
}

// FailPayout returns an in-flight transaction to ReadyForPayout. The funds
// stay in the ready bucket and the next batch run retries it; nothing is
// silently dropped.
func (t *SellerTransaction) FailPayout() error {
	if t.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if t.Status != SellerTxProcessingPayout {
		return &InvalidTransitionError{Entity: "seller_transaction", From: string(t.Status), Operation: "FailPayout"}
	}
	t.Status = SellerTxReadyForPayout
	t.PayoutID = nil
	t.UpdatedAt = time.Now()
	return nil
}

// MarkFailed is the permanent-rejection path: the gateway has refused the
// transfer outright and retrying is pointless. Operators see the row in
// FAILED; the ready-bucket funds stay visible to reconciliation.
func (t *SellerTransaction) MarkFailed() error {
	if t.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if t.Status != SellerTxProcessingPayout {
		return &InvalidTransitionError{Entity: "seller_transaction", From: string(t.Status), Operation: "MarkFailed"}
	}
	t.Status = SellerTxFailed
	t.UpdatedAt = time.Now()
	return nil
}

// Cancel is permitted before any payout is in flight. A paid transaction can
// never be canceled: the money already left the ledger.
func (t *SellerTransaction) Cancel() error {
	if t.Status != SellerTxPending && t.Status != SellerTxReadyForPayout {
		return &InvalidTransitionError{Entity: "seller_transaction", From: string(t.Status), Operation: "Cancel"}
	}
	t.Status = SellerTxCanceled
	t.UpdatedAt = time.Now()
	return nil
}
