package domain

import (
	"fmt"
	"time"
)

// InsufficientFundsError is returned when a ledger move would overdraw its
// source bucket. Nothing is mutated when it is returned.
type InsufficientFundsError struct {
	Bucket    string
	Requested int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient %s funds: requested %d, available %d", e.Bucket, e.Requested, e.Available)
}

// SellerBalance is the per-(territory, seller) running total in a single
// currency. It is mutated only through the four operations below; each one
// validates before applying, so a rejected call leaves every bucket intact.
// Conservation invariant: pending + ready + paid equals everything ever
// added minus everything ever canceled out.
type SellerBalance struct {
	ID           string
	TerritoryID  string
	SellerUserID string
	Currency     string

	PendingAmount        int64
	ReadyForPayoutAmount int64
	PaidAmount           int64

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSellerBalance(id, territoryID, sellerUserID, currency string) (*SellerBalance, error) {
	if territoryID == "" {
		return nil, ErrMissingTerritory
	}
	now := time.Now()
	return &SellerBalance{
		ID:           id,
		TerritoryID:  territoryID,
		SellerUserID: sellerUserID,
		Currency:     currency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// AddPendingAmount credits a new seller transaction's net amount.
func (b *SellerBalance) AddPendingAmount(amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	b.PendingAmount += amount
	b.UpdatedAt = time.Now()
	return nil
}

// MoveToReadyForPayout moves funds past the retention gate.
func (b *SellerBalance) MoveToReadyForPayout(amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount > b.PendingAmount {
		return &InsufficientFundsError{Bucket: "pending", Requested: amount, Available: b.PendingAmount}
	}
	b.PendingAmount -= amount
	b.ReadyForPayoutAmount += amount
	b.UpdatedAt = time.Now()
	return nil
}

// MarkAsPaid settles a completed payout.
func (b *SellerBalance) MarkAsPaid(amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount > b.ReadyForPayoutAmount {
		return &InsufficientFundsError{Bucket: "ready_for_payout", Requested: amount, Available: b.ReadyForPayoutAmount}
	}
	b.ReadyForPayoutAmount -= amount
	b.PaidAmount += amount
	b.UpdatedAt = time.Now()
	return nil
}

// CancelPendingAmount backs out a canceled pending transaction. There is no
// counterpart for ready or paid funds: those states cannot be canceled.
func (b *SellerBalance) CancelPendingAmount(amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount > b.PendingAmount {
		return &InsufficientFundsError{Bucket: "pending", Requested: amount, Available: b.PendingAmount}
	}
	b.PendingAmount -= amount
	b.UpdatedAt = time.Now()
	return nil
}

func (b *SellerBalance) Total() int64 {
	return b.PendingAmount + b.ReadyForPayoutAmount + b.PaidAmount
}
