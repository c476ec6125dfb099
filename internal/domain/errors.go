package domain

import "errors"

var (
	ErrNegativeAmount       = errors.New("amount must not be negative")
	ErrNegativeFeeValue     = errors.New("fee value must not be negative")
	ErrUnknownFeeMode       = errors.New("unknown fee mode")
	ErrEmptyCart            = errors.New("checkout requires at least one line item")
	ErrMixedSellerCart      = errors.New("checkout lines must belong to a single seller")
	ErrTotalsAlreadySet     = errors.New("checkout totals already set")
	ErrTotalsMismatch       = errors.New("checkout totals do not add up")
	ErrTotalsNotSet         = errors.New("checkout totals not set")
	ErrAlreadyTerminal      = errors.New("seller transaction already in terminal state")
	ErrCancelNotAllowed     = errors.New("cancel is only supported for pending seller transactions")
	ErrVersionConflict      = errors.New("balance row version conflict")
	ErrMissingTerritory     = errors.New("territory id is required")
	ErrBatchNotDispatchable = errors.New("payout batch is not in a dispatchable state")
)
