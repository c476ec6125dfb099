package domain

import "time"

type CheckoutRepository interface {
	CreateCheckout(checkout *Checkout) error
	GetCheckoutByID(checkoutID string) (*Checkout, error)
	UpdateCheckout(checkout *Checkout) error
	// SumPaidTotals aggregates gross and fee totals over checkouts paid
	// within [from, to) for one territory.
	SumPaidTotals(territoryID string, from, to time.Time) (gross int64, fee int64, err error)
}
