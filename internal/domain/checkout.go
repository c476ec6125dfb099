package domain

import "time"

type CheckoutStatus string

const (
	CheckoutStatusCreated         CheckoutStatus = "CREATED"
	CheckoutStatusAwaitingPayment CheckoutStatus = "AWAITING_PAYMENT"
	CheckoutStatusPaid            CheckoutStatus = "PAID"
	CheckoutStatusCanceled        CheckoutStatus = "CANCELED"
)

// CheckoutItem is an immutable snapshot of one cart line taken at settlement
// time. Later catalog or fee-config edits never touch a settled line.
type CheckoutItem struct {
	ID         string
	CheckoutID string
	ItemID     string
	ItemType   string
	Title      string
	Quantity   int64
	UnitPrice  int64
	Subtotal   int64
	FeeAmount  int64
	Total      int64
}

type Checkout struct {
	ID           string
	TerritoryID  string
	BuyerUserID  string
	SellerUserID string
	StoreID      string
	Currency     string
	Status       CheckoutStatus

	// Monetary totals are nil until settled, then immutable.
	ItemsSubtotal     *int64
	PlatformFeeAmount *int64
	TotalAmount       *int64

	Items     []CheckoutItem
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCheckout(id, territoryID, buyerUserID, sellerUserID, storeID, currency string) (*Checkout, error) {
	if territoryID == "" {
		return nil, ErrMissingTerritory
	}
	now := time.Now()
	return &Checkout{
		ID:           id,
		TerritoryID:  territoryID,
		BuyerUserID:  buyerUserID,
		SellerUserID: sellerUserID,
		StoreID:      storeID,
		Currency:     currency,
		Status:       CheckoutStatusCreated,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// SetTotals freezes the checkout's monetary totals. Calling it a second time
// fails: settling the same checkout twice is a bug, not a retry.
func (c *Checkout) SetTotals(itemsSubtotal, platformFee, total int64) error {
	if c.ItemsSubtotal != nil || c.PlatformFeeAmount != nil || c.TotalAmount != nil {
		return ErrTotalsAlreadySet
	}
	if itemsSubtotal < 0 || platformFee < 0 {
		return ErrNegativeAmount
	}
	if total != itemsSubtotal+platformFee {
		return ErrTotalsMismatch
	}
	c.ItemsSubtotal = &itemsSubtotal
	c.PlatformFeeAmount = &platformFee
	c.TotalAmount = &total
	c.UpdatedAt = time.Now()
	return nil
}

func (c *Checkout) MarkAwaitingPayment() error {
	if c.Status != CheckoutStatusCreated {
		return &InvalidTransitionError{Entity: "checkout", From: string(c.Status), Operation: "MarkAwaitingPayment"}
	}
	if c.TotalAmount == nil {
		return ErrTotalsNotSet
	}
	c.Status = CheckoutStatusAwaitingPayment
	c.UpdatedAt = time.Now()
	return nil
}

// MarkPaid is terminal and triggers seller transaction creation plus platform
// revenue recording at the usecase layer, inside one storage transaction.
func (c *Checkout) MarkPaid(now time.Time) error {
	if c.Status != CheckoutStatusAwaitingPayment {
		return &InvalidTransitionError{Entity: "checkout", From: string(c.Status), Operation: "MarkPaid"}
	}
	c.Status = CheckoutStatusPaid
	c.PaidAt = &now
	c.UpdatedAt = now
	return nil
}

// Cancel is allowed from either pre-paid state. No money has moved yet, so
// cancellation has no financial side effects.
func (c *Checkout) Cancel() error {
	if c.Status != CheckoutStatusCreated && c.Status != CheckoutStatusAwaitingPayment {
		return &InvalidTransitionError{Entity: "checkout", From: string(c.Status), Operation: "Cancel"}
	}
	c.Status = CheckoutStatusCanceled
	c.UpdatedAt = time.Now()
	return nil
}
