package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/metrics"
	"gorm.io/gorm"
)

// One metrics instance per test binary: promauto registers globally.
var testMetrics = metrics.NewSettlementMetrics()

// memStores backs the payout engine's repositories in memory. Reads hand out
// copies, so forgotten Update/Save calls show up as stale state in assertions.
type memStores struct {
	txns       map[string]*domain.SellerTransaction
	balances   map[string]*domain.SellerBalance
	batches    map[string]*domain.PayoutBatch
	payoutCfgs map[string]*domain.TerritoryPayoutConfig
	expenses   []*domain.PlatformExpenseTransaction
	revenues   []*domain.PlatformRevenueTransaction
	records    []*domain.ReconciliationRecord
}

func newMemStores() *memStores {
	return &memStores{
		txns:       make(map[string]*domain.SellerTransaction),
		balances:   make(map[string]*domain.SellerBalance),
		batches:    make(map[string]*domain.PayoutBatch),
		payoutCfgs: make(map[string]*domain.TerritoryPayoutConfig),
	}
}

func (m *memStores) stores() domain.Stores {
	return domain.Stores{
		Transactions:  m,
		Balances:      m,
		Batches:       m,
		Platform:      m,
		PayoutConfigs: m,
	}
}

func balanceKey(territoryID, sellerUserID string) string {
	return territoryID + "|" + sellerUserID
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
		if balance.TerritoryID == territoryID && balance.ReadyForPayoutAmount > 0 && balance.ReadyForPayoutAmount >= minimum {
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

// fakeGateway records submitted instructions and hands out sequential payout
// identifiers. Setting err simulates the gateway refusing the submit call.
type fakeGateway struct {
	mu        sync.Mutex
	submitted []domain.PayoutInstruction
	err       error
	nextID    int
}

func (g *fakeGateway) SubmitPayout(ctx context.Context, instruction domain.PayoutInstruction) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return "", g.err
	}
	g.submitted = append(g.submitted, instruction)
	g.nextID++
	return fmt.Sprintf("po-%d", g.nextID), nil
}

func (g *fakeGateway) submitCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.submitted)
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
