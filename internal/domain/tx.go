package domain

import "context"

// Stores bundles the repositories bound to one storage transaction. Every
// money-moving unit of work (checkout paid, retention release, payout
// bookkeeping) runs against a single Stores instance so it commits or rolls
// back as a whole.
type Stores struct {
	Checkouts     CheckoutRepository
	Transactions  SellerTransactionRepository
	Balances      SellerBalanceRepository
	Batches       PayoutBatchRepository
	Platform      PlatformLedgerRepository
	FeeConfigs    FeeConfigRepository
	PayoutConfigs PayoutConfigRepository
}

type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(s Stores) error) error
}
