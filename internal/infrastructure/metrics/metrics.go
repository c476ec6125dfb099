package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SettlementMetrics holds the prometheus instruments for the settlement and
// payout pipeline.
type SettlementMetrics struct {
	CheckoutsSettledTotal       prometheus.CounterVec
	CheckoutsSettledAmountTotal prometheus.CounterVec
	PlatformFeeAmountTotal      prometheus.CounterVec

	SellerTransactionsTotal  prometheus.CounterVec
	FundsReleasedAmountTotal prometheus.CounterVec

	PayoutBatchesTotal     prometheus.CounterVec
	PayoutBatchAmountTotal prometheus.CounterVec
	PayoutFailuresTotal    prometheus.CounterVec
	PayoutDispatchDuration prometheus.HistogramVec

	BalanceConflictsTotal prometheus.CounterVec
	LedgerErrorsTotal     prometheus.CounterVec
}

func NewSettlementMetrics() *SettlementMetrics {
	return &SettlementMetrics{
		CheckoutsSettledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkouts_settled_total",
				Help: "Checkouts that reached PAID and were settled",
			},
			[]string{"territory_id", "currency"},
		),

		CheckoutsSettledAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkouts_settled_amount_total",
				Help: "Gross amount of settled checkouts in minor units",
			},
			[]string{"territory_id", "currency"},
		),

		PlatformFeeAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "platform_fee_amount_total",
				Help: "Platform fee revenue in minor units",
			},
			[]string{"territory_id", "currency"},
		),

		SellerTransactionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seller_transactions_total",
				Help: "Seller transaction state transitions by resulting status",
			},
			[]string{"territory_id", "status"},
		),

		FundsReleasedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "funds_released_amount_total",
				Help: "Amount moved from pending to ready-for-payout in minor units",
			},
			[]string{"territory_id", "currency"},
		),

		PayoutBatchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_batches_total",
				Help: "Payout batches by resulting status",
			},
			[]string{"territory_id", "status"},
		),

		PayoutBatchAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_batch_amount_total",
				Help: "Dispatched payout batch amount in minor units",
			},
			[]string{"territory_id", "currency"},
		),

		PayoutFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_failures_total",
				Help: "Gateway payout failures by kind (retryable/permanent/submit)",
			},
			[]string{"territory_id", "kind"},
		),

		PayoutDispatchDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payout_dispatch_duration_seconds",
				Help:    "Wall time of one territory payout dispatch run",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"territory_id"},
		),

		BalanceConflictsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "balance_version_conflicts_total",
				Help: "Optimistic-lock conflicts on seller balance rows",
			},
			[]string{"territory_id"},
		),

		LedgerErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_errors_total",
				Help: "Rejected ledger operations by error type",
			},
			[]string{"territory_id", "error_type"},
		),
	}
}

func (m *SettlementMetrics) RecordCheckoutSettled(territoryID, currency string, gross, fee int64) {
	m.CheckoutsSettledTotal.WithLabelValues(territoryID, currency).Inc()
	m.CheckoutsSettledAmountTotal.WithLabelValues(territoryID, currency).Add(float64(gross))
	m.PlatformFeeAmountTotal.WithLabelValues(territoryID, currency).Add(float64(fee))
}

func (m *SettlementMetrics) RecordTransactionStatus(territoryID, status string) {
	m.SellerTransactionsTotal.WithLabelValues(territoryID, status).Inc()
}

func (m *SettlementMetrics) RecordFundsReleased(territoryID, currency string, amount int64) {
	m.FundsReleasedAmountTotal.WithLabelValues(territoryID, currency).Add(float64(amount))
}

func (m *SettlementMetrics) RecordPayoutBatch(territoryID, status, currency string, amount int64) {
	m.PayoutBatchesTotal.WithLabelValues(territoryID, status).Inc()
	m.PayoutBatchAmountTotal.WithLabelValues(territoryID, currency).Add(float64(amount))
}

func (m *SettlementMetrics) RecordPayoutFailure(territoryID, kind string) {
	m.PayoutFailuresTotal.WithLabelValues(territoryID, kind).Inc()
}

func (m *SettlementMetrics) RecordDispatchDuration(territoryID string, seconds float64) {
	m.PayoutDispatchDuration.WithLabelValues(territoryID).Observe(seconds)
}

func (m *SettlementMetrics) RecordBalanceConflict(territoryID string) {
	m.BalanceConflictsTotal.WithLabelValues(territoryID).Inc()
}

func (m *SettlementMetrics) RecordLedgerError(territoryID, errorType string) {
	m.LedgerErrorsTotal.WithLabelValues(territoryID, errorType).Inc()
}
