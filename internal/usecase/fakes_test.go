package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/metrics"
	"gorm.io/gorm"
)

// One metrics instance per test binary: promauto registers globally.
var testMetrics = metrics.NewSettlementMetrics()

// memStores is an in-memory implementation of every repository interface.
// Reads hand out copies, so forgotten Update/Save calls show up as stale
// state in assertions.
type memStores struct {
	checkouts  map[string]*domain.Checkout
	txns       map[string]*domain.SellerTransaction
	balances   map[string]*domain.SellerBalance
	batches    map[string]*domain.PayoutBatch
	feeCfgs    map[string]*domain.PlatformFeeConfig
	payoutCfgs map[string]*domain.TerritoryPayoutConfig
	revenues   []*domain.PlatformRevenueTransaction
	expenses   []*domain.PlatformExpenseTransaction
	records    []*domain.ReconciliationRecord
}

func newMemStores() *memStores {
	return &memStores{
		checkouts:  make(map[string]*domain.Checkout),
		txns:       make(map[string]*domain.SellerTransaction),
		balances:   make(map[string]*domain.SellerBalance),
		batches:    make(map[string]*domain.PayoutBatch),
		feeCfgs:    make(map[string]*domain.PlatformFeeConfig),
		payoutCfgs: make(map[string]*domain.TerritoryPayoutConfig),
	}
}

func (m *memStores) stores() domain.Stores {
	return domain.Stores{
		Checkouts:     m,
		Transactions:  m,
		Balances:      m,
		Batches:       m,
		Platform:      m,
		FeeConfigs:    m,
		PayoutConfigs: m,
	}
}

func balanceKey(territoryID, sellerUserID string) string {
	return territoryID + "|" + sellerUserID
}

func feeKey(territoryID, itemType string) string {
	return territoryID + "|" + itemType
}

// CheckoutRepository

func (m *memStores) CreateCheckout(checkout *domain.Checkout) error {
	cp := *checkout
	m.checkouts[checkout.ID] = &cp
	return nil
}

func (m *memStores) GetCheckoutByID(checkoutID string) (*domain.Checkout, error) {
	checkout, ok := m.checkouts[checkoutID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *checkout
	return &cp, nil
}

func (m *memStores) UpdateCheckout(checkout *domain.Checkout) error {
	cp := *checkout
	m.checkouts[checkout.ID] = &cp
	return nil
}

func (m *memStores) SumPaidTotals(territoryID string, from, to time.Time) (int64, int64, error) {
	var gross, fee int64
	for _, checkout := range m.checkouts {
		if checkout.TerritoryID != territoryID || checkout.Status != domain.CheckoutStatusPaid {
			continue
		}
		if checkout.PaidAt == nil || checkout.PaidAt.Before(from) || !checkout.PaidAt.Before(to) {
			continue
		}
		gross += *checkout.TotalAmount
		fee += *checkout.PlatformFeeAmount
	}
	return gross, fee, nil
}

// SellerTransactionRepository

func (m *memStores) CreateTransaction(txn *domain.SellerTransaction) error {
	cp := *txn
	m.txns[txn.ID] = &cp
	return nil
}

func (m *memStores) GetTransactionByID(transactionID string) (*domain.SellerTransaction, error) {
	txn, ok := m.txns[transactionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *txn
	return &cp, nil
}

func (m *memStores) GetTransactionForUpdate(transactionID string) (*domain.SellerTransaction, error) {
	return m.GetTransactionByID(transactionID)
}

func (m *memStores) GetTransactionByCheckoutID(checkoutID string) (*domain.SellerTransaction, error) {
	for _, txn := range m.txns {
		if txn.CheckoutID == checkoutID {
			cp := *txn
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStores) UpdateTransaction(txn *domain.SellerTransaction) error {
	cp := *txn
	m.txns[txn.ID] = &cp
	return nil
}

func (m *memStores) FindPendingBefore(territoryID string, cutoff time.Time) ([]*domain.SellerTransaction, error) {
	var out []*domain.SellerTransaction
	for _, txn := range m.txns {
		if txn.TerritoryID == territoryID && txn.Status == domain.SellerTxPending && !txn.CreatedAt.After(cutoff) {
			cp := *txn
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStores) FindReadyBySeller(territoryID, sellerUserID string) ([]*domain.SellerTransaction, error) {
	var out []*domain.SellerTransaction
	for _, txn := range m.txns {
		if txn.TerritoryID == territoryID && txn.SellerUserID == sellerUserID && txn.Status == domain.SellerTxReadyForPayout {
			cp := *txn
			out = append(out, &cp)
		}
	}
	return out, nil
}

// SellerBalanceRepository

func (m *memStores) GetOrCreateForUpdate(territoryID, sellerUserID, currency string) (*domain.SellerBalance, error) {
	key := balanceKey(territoryID, sellerUserID)
	balance, ok := m.balances[key]
	if !ok {
		created, err := domain.NewSellerBalance(uuid.New().String(), territoryID, sellerUserID, currency)
		if err != nil {
			return nil, err
		}
		m.balances[key] = created
		balance = created
	}
	cp := *balance
	return &cp, nil
}

func (m *memStores) Save(balance *domain.SellerBalance) error {
	key := balanceKey(balance.TerritoryID, balance.SellerUserID)
	stored, ok := m.balances[key]
	if ok && stored.Version != balance.Version {
		return domain.ErrVersionConflict
	}
	cp := *balance
	cp.Version++
	m.balances[key] = &cp
	balance.Version++
	return nil
}

func (m *memStores) GetBalance(territoryID, sellerUserID string) (*domain.SellerBalance, error) {
	balance, ok := m.balances[balanceKey(territoryID, sellerUserID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *balance
	return &cp, nil
}

func (m *memStores) ListReadyAbove(territoryID string, minimum int64) ([]*domain.SellerBalance, error) {
	var out []*domain.SellerBalance
	for _, balance := range m.balances {
		if balance.TerritoryID == territoryID && balance.ReadyForPayoutAmount >= minimum && balance.ReadyForPayoutAmount > 0 {
			cp := *balance
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStores) SumBuckets(territoryID string) (domain.BucketTotals, error) {
	var totals domain.BucketTotals
	for _, balance := range m.balances {
		if balance.TerritoryID != territoryID {
			continue
		}
		totals.Pending += balance.PendingAmount
		totals.Ready += balance.ReadyForPayoutAmount
		totals.Paid += balance.PaidAmount
	}
	return totals, nil
}

// PayoutBatchRepository

func (m *memStores) CreateBatch(batch *domain.PayoutBatch) error {
	cp := *batch
	m.batches[batch.ID] = &cp
	return nil
}

func (m *memStores) GetBatchByID(batchID string) (*domain.PayoutBatch, error) {
	batch, ok := m.batches[batchID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *batch
	return &cp, nil
}

func (m *memStores) GetBatchForUpdate(batchID string) (*domain.PayoutBatch, error) {
	return m.GetBatchByID(batchID)
}

func (m *memStores) GetBatchByPayoutID(payoutID string) (*domain.PayoutBatch, error) {
	for _, batch := range m.batches {
		if batch.PayoutID != nil && *batch.PayoutID == payoutID {
			cp := *batch
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStores) UpdateBatch(batch *domain.PayoutBatch) error {
	cp := *batch
	m.batches[batch.ID] = &cp
	return nil
}

func (m *memStores) ListBatchesByStatus(territoryID string, status domain.PayoutBatchStatus) ([]*domain.PayoutBatch, error) {
	var out []*domain.PayoutBatch
	for _, batch := range m.batches {
		if batch.TerritoryID == territoryID && batch.Status == status {
			cp := *batch
			out = append(out, &cp)
		}
	}
	return out, nil
}

// PlatformLedgerRepository

func (m *memStores) RecordRevenue(txn *domain.PlatformRevenueTransaction) error {
	cp := *txn
	m.revenues = append(m.revenues, &cp)
	return nil
}

func (m *memStores) RecordExpense(txn *domain.PlatformExpenseTransaction) error {
	cp := *txn
	m.expenses = append(m.expenses, &cp)
	return nil
}

func (m *memStores) GetPlatformBalance(territoryID, currency string) (*domain.PlatformFinancialBalance, error) {
	balance := &domain.PlatformFinancialBalance{TerritoryID: territoryID, Currency: currency}
	for _, rev := range m.revenues {
		if rev.TerritoryID == territoryID && rev.Currency == currency {
			balance.RevenueAmount += rev.Amount
		}
	}
	for _, exp := range m.expenses {
		if exp.TerritoryID == territoryID && exp.Currency == currency {
			balance.ExpenseAmount += exp.Amount
		}
	}
	return balance, nil
}

func (m *memStores) SumExpenseForPeriod(territoryID string, from, to time.Time) (int64, error) {
	var total int64
	for _, exp := range m.expenses {
		if exp.TerritoryID == territoryID && !exp.RecordedAt.Before(from) && exp.RecordedAt.Before(to) {
			total += exp.Amount
		}
	}
	return total, nil
}

func (m *memStores) CreateReconciliationRecord(record *domain.ReconciliationRecord) error {
	cp := *record
	m.records = append(m.records, &cp)
	return nil
}

func (m *memStores) ListReconciliationRecords(territoryID string) ([]*domain.ReconciliationRecord, error) {
	var out []*domain.ReconciliationRecord
	for _, record := range m.records {
		if record.TerritoryID == territoryID {
			cp := *record
			out = append(out, &cp)
		}
	}
	return out, nil
}

// FeeConfigRepository

func (m *memStores) CreateFeeConfig(cfg *domain.PlatformFeeConfig) error {
	cp := *cfg
	m.feeCfgs[feeKey(cfg.TerritoryID, cfg.ItemType)] = &cp
	return nil
}

func (m *memStores) GetActiveFeeConfig(territoryID, itemType string) (*domain.PlatformFeeConfig, error) {
	cfg, ok := m.feeCfgs[feeKey(territoryID, itemType)]
	if !ok || !cfg.IsActive {
		return nil, nil
	}
	cp := *cfg
	return &cp, nil
}

func (m *memStores) SaveFeeConfig(cfg *domain.PlatformFeeConfig) error {
	cp := *cfg
	m.feeCfgs[feeKey(cfg.TerritoryID, cfg.ItemType)] = &cp
	return nil
}

// PayoutConfigRepository

func (m *memStores) CreatePayoutConfig(cfg *domain.TerritoryPayoutConfig) error {
	cp := *cfg
	m.payoutCfgs[cfg.TerritoryID] = &cp
	return nil
}

func (m *memStores) GetActivePayoutConfig(territoryID string) (*domain.TerritoryPayoutConfig, error) {
	cfg, ok := m.payoutCfgs[territoryID]
	if !ok || !cfg.IsActive {
		return nil, nil
	}
	cp := *cfg
	return &cp, nil
}

func (m *memStores) ListActivePayoutConfigs() ([]*domain.TerritoryPayoutConfig, error) {
	var out []*domain.TerritoryPayoutConfig
	for _, cfg := range m.payoutCfgs {
		if cfg.IsActive {
			cp := *cfg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStores) SavePayoutConfig(cfg *domain.TerritoryPayoutConfig) error {
	cp := *cfg
	m.payoutCfgs[cfg.TerritoryID] = &cp
	return nil
}

// memTxManager runs the unit of work directly against the shared stores.
type memTxManager struct {
	m *memStores
}

func (t *memTxManager) WithinTransaction(ctx context.Context, fn func(s domain.Stores) error) error {
	return fn(t.m.stores())
}

// memPublisher records published messages and signals arrival so tests can
// wait for the async publish goroutines.
type memPublisher struct {
	mu        sync.Mutex
	published []string // topic
	arrived   chan struct{}
}

func newMemPublisher() *memPublisher {
	return &memPublisher{arrived: make(chan struct{}, 32)}
}

func (p *memPublisher) Publish(topic string, msgs ...domain.Message) error {
	p.mu.Lock()
	for range msgs {
		p.published = append(p.published, topic)
	}
	p.mu.Unlock()
	p.arrived <- struct{}{}
	return nil
}

func (p *memPublisher) waitForPublish(timeout time.Duration) bool {
	select {
	case <-p.arrived:
		return true
	case <-time.After(timeout):
		return false
	}
}
