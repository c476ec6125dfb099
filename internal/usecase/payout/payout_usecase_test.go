package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/terracommons/settlement-service/internal/domain"
	"gorm.io/gorm"
)

func newPayoutFixture(t *testing.T, cfg *domain.TerritoryPayoutConfig) (*DefaultPayoutUsecase, *memStores, *fakeGateway, *memPublisher) {
	t.Helper()
	m := newMemStores()
	if cfg != nil {
		if err := m.CreatePayoutConfig(cfg); err != nil {
			t.Fatalf("CreatePayoutConfig: %v", err)
		}
	}
	gateway := &fakeGateway{}
	publisher := newMemPublisher()
	uc := NewDefaultPayoutUsecase(&memTxManager{m}, m, m, gateway, publisher, testMetrics)
	return uc, m, gateway, publisher
}

func testPayoutConfig(t *testing.T, minimum int64, maximum *int64) *domain.TerritoryPayoutConfig {
	t.Helper()
	cfg, err := domain.NewTerritoryPayoutConfig(uuid.New().String(), "ter-1", 7, minimum, maximum, domain.PayoutFrequencyDaily)
	if err != nil {
		t.Fatalf("NewTerritoryPayoutConfig: %v", err)
	}
	return cfg
}

func seedTxn(m *memStores, id, seller string, net int64, status domain.SellerTransactionStatus, creditedAt time.Time) {
	m.txns[id] = &domain.SellerTransaction{
		ID:           id,
		CheckoutID:   "chk-" + id,
		TerritoryID:  "ter-1",
		SellerUserID: seller,
		Currency:     "USD",
		GrossAmount:  net,
		NetAmount:    net,
		Status:       status,
		CreatedAt:    creditedAt,
		UpdatedAt:    creditedAt,
	}
}

func seedBalance(t *testing.T, m *memStores, seller string, pending, ready int64) {
	t.Helper()
	balance, err := domain.NewSellerBalance(uuid.New().String(), "ter-1", seller, "USD")
	if err != nil {
		t.Fatalf("NewSellerBalance: %v", err)
	}
	balance.PendingAmount = pending
	balance.ReadyForPayoutAmount = ready
	m.balances[balanceKey("ter-1", seller)] = balance
}

func TestReleaseRetainedFunds(t *testing.T) {
	cfg := testPayoutConfig(t, 1000, nil)
	uc, m, _, publisher := newPayoutFixture(t, cfg)

	now := time.Now()
	seedTxn(m, "txn-old", "seller-1", 5000, domain.SellerTxPending, now.AddDate(0, 0, -8))
	seedTxn(m, "txn-new", "seller-1", 3000, domain.SellerTxPending, now)
	seedBalance(t, m, "seller-1", 8000, 0)

	if err := uc.ReleaseRetainedFunds(context.Background(), "ter-1"); err != nil {
		t.Fatalf("ReleaseRetainedFunds: %v", err)
	}

	old, _ := m.GetTransactionByID("txn-old")
	if old.Status != domain.SellerTxReadyForPayout {
		t.Errorf("matured txn: got %s, want READY_FOR_PAYOUT", old.Status)
	}
	fresh, _ := m.GetTransactionByID("txn-new")
	if fresh.Status != domain.SellerTxPending {
		t.Errorf("fresh txn: got %s, want PENDING", fresh.Status)
	}

	balance, err := m.GetBalance("ter-1", "seller-1")
	if err != nil {
		t.Fatal(err)
	}
	if balance.PendingAmount != 3000 || balance.ReadyForPayoutAmount != 5000 {
		t.Errorf("buckets: got pending=%d ready=%d, want 3000/5000", balance.PendingAmount, balance.ReadyForPayoutAmount)
	}
	if balance.Total() != 8000 {
		t.Errorf("total changed: got %d, want 8000", balance.Total())
	}

	if !publisher.waitForPublish(2 * time.Second) {
		t.Errorf("release event never published")
	}
}

func TestReleaseWithoutPolicyIsNoop(t *testing.T) {
	uc, m, _, _ := newPayoutFixture(t, nil)
	seedTxn(m, "txn-1", "seller-1", 5000, domain.SellerTxPending, time.Now().AddDate(0, 0, -30))
	seedBalance(t, m, "seller-1", 5000, 0)

	if err := uc.ReleaseRetainedFunds(context.Background(), "ter-1"); err != nil {
		t.Fatalf("ReleaseRetainedFunds: %v", err)
	}
	txn, _ := m.GetTransactionByID("txn-1")
	if txn.Status != domain.SellerTxPending {
		t.Errorf("txn without policy: got %s, want PENDING", txn.Status)
	}
}

func TestReleaseSkipsShortPendingBucket(t *testing.T) {
	cfg := testPayoutConfig(t, 1000, nil)
	uc, m, _, _ := newPayoutFixture(t, cfg)

	// Ledger drift: the row says 5000 pending but the bucket holds nothing.
	seedTxn(m, "txn-1", "seller-1", 5000, domain.SellerTxPending, time.Now().AddDate(0, 0, -8))
	seedBalance(t, m, "seller-1", 0, 0)

	if err := uc.ReleaseRetainedFunds(context.Background(), "ter-1"); err != nil {
		t.Fatalf("drift should be skipped, not fatal: %v", err)
	}
	txn, _ := m.GetTransactionByID("txn-1")
	if txn.Status != domain.SellerTxPending {
		t.Errorf("short txn: got %s, want PENDING", txn.Status)
	}
}

func TestDispatchPayouts(t *testing.T) {
	cfg := testPayoutConfig(t, 1000, nil)
	uc, m, gateway, publisher := newPayoutFixture(t, cfg)

	now := time.Now()
	seedTxn(m, "txn-1", "seller-1", 4000, domain.SellerTxReadyForPayout, now)
	seedTxn(m, "txn-2", "seller-1", 3000, domain.SellerTxReadyForPayout, now)
	seedBalance(t, m, "seller-1", 0, 7000)

	if err := uc.DispatchPayouts(context.Background(), "ter-1"); err != nil {
		t.Fatalf("DispatchPayouts: %v", err)
	}

	if got := gateway.submitCount(); got != 1 {
		t.Fatalf("gateway submits: got %d, want 1", got)
	}
	instruction := gateway.submitted[0]
	if instruction.Amount != 7000 || instruction.SellerUserID != "seller-1" || instruction.Currency != "USD" {
		t.Errorf("instruction: got %+v", instruction)
	}

	batches, err := m.ListBatchesByStatus("ter-1", domain.PayoutBatchDispatched)
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != 1 {
		t.Fatalf("dispatched batches: got %d, want 1", len(batches))
	}
	batch := batches[0]
	if batch.Amount != 7000 || batch.PayoutID == nil || *batch.PayoutID != "po-1" {
		t.Errorf("batch: got %+v", batch)
	}

	for _, id := range []string{"txn-1", "txn-2"} {
		txn, _ := m.GetTransactionByID(id)
		if txn.Status != domain.SellerTxProcessingPayout {
			t.Errorf("%s: got %s, want PROCESSING_PAYOUT", id, txn.Status)
		}
		if txn.PayoutID == nil || *txn.PayoutID != "po-1" {
			t.Errorf("%s: gateway payout id not recorded", id)
		}
	}

	if !publisher.waitForPublish(2 * time.Second) {
		t.Errorf("batch event never published")
	}
}

func TestDispatchTwiceDoesNotDoubleBatch(t *testing.T) {
	cfg := testPayoutConfig(t, 1000, nil)
	uc, m, gateway, _ := newPayoutFixture(t, cfg)

	now := time.Now()
	seedTxn(m, "txn-1", "seller-1", 4000, domain.SellerTxReadyForPayout, now)
	seedTxn(m, "txn-2", "seller-1", 3000, domain.SellerTxReadyForPayout, now)
	seedBalance(t, m, "seller-1", 0, 7000)

	if err := uc.DispatchPayouts(context.Background(), "ter-1"); err != nil {
		t.Fatalf("first DispatchPayouts: %v", err)
	}
	// The ready bucket still reads 7000 until the gateway confirms, so the
	// second cycle sees the same balance. The member transactions are
	// PROCESSING_PAYOUT now and must not be picked up again.
	if err := uc.DispatchPayouts(context.Background(), "ter-1"); err != nil {
		t.Fatalf("second DispatchPayouts: %v", err)
	}

	if got := gateway.submitCount(); got != 1 {
		t.Errorf("gateway submits: got %d, want 1", got)
	}
	if len(m.batches) != 1 {
		t.Fatalf("batches: got %d, want 1", len(m.batches))
	}
	for _, id := range []string{"txn-1", "txn-2"} {
		txn, _ := m.GetTransactionByID(id)
		if txn.Status != domain.SellerTxProcessingPayout {
			t.Errorf("%s: got %s, want PROCESSING_PAYOUT", id, txn.Status)
		}
		if txn.PayoutID == nil || *txn.PayoutID != "po-1" {
			t.Errorf("%s: payout id overwritten by second run", id)
		}
		if txn.PayoutAttempts != 1 {
			t.Errorf("%s: attempts got %d, want 1", id, txn.PayoutAttempts)
		}
	}
}

func TestDispatchSkipsWhenAutoDisabled(t *testing.T) {
	cfg := testPayoutConfig(t, 1000, nil)
	cfg.AutoPayoutEnabled = false
	uc, m, gateway, _ := newPayoutFixture(t, cfg)

	seedTxn(m, "txn-1", "seller-1", 4000, domain.SellerTxReadyForPayout, time.Now())
	seedBalance(t, m, "seller-1", 0, 4000)

	if err := uc.DispatchPayouts(context.Background(), "ter-1"); err != nil {
		t.Fatalf("DispatchPayouts: %v", err)
	}
	if gateway.submitCount() != 0 {
		t.Errorf("gateway called with auto payout disabled")
	}
	if len(m.batches) != 0 {
		t.Errorf("batches created with auto payout disabled: %d", len(m.batches))
	}
}

func TestDispatchSkipsBelowMinimum(t *testing.T) {
	cfg := testPayoutConfig(t, 1000, nil)
	uc, m, gateway, _ := newPayoutFixture(t, cfg)

	seedTxn(m, "txn-1", "seller-1", 500, domain.SellerTxReadyForPayout, time.Now())
	seedBalance(t, m, "seller-1", 0, 500)

	if err := uc.DispatchPayouts(context.Background(), "ter-1"); err != nil {
		t.Fatalf("DispatchPayouts: %v", err)
	}
	if gateway.submitCount() != 0 || len(m.batches) != 0 {
		t.Errorf("below-minimum seller should not be batched")
	}
	txn, _ := m.GetTransactionByID("txn-1")
	if txn.Status != domain.SellerTxReadyForPayout {
		t.Errorf("txn: got %s, want READY_FOR_PAYOUT", txn.Status)
	}
}

func TestDispatchSplitsByMaximum(t *testing.T) {
	maximum := int64(8000)
	cfg := testPayoutConfig(t, 1000, &maximum)
	uc, m, gateway, _ := newPayoutFixture(t, cfg)

	now := time.Now()
	seedTxn(m, "txn-1", "seller-1", 4000, domain.SellerTxReadyForPayout, now)
	seedTxn(m, "txn-2", "seller-1", 4000, domain.SellerTxReadyForPayout, now)
	seedTxn(m, "txn-3", "seller-1", 4000, domain.SellerTxReadyForPayout, now)
	seedBalance(t, m, "seller-1", 0, 12000)

	if err := uc.DispatchPayouts(context.Background(), "ter-1"); err != nil {
		t.Fatalf("DispatchPayouts: %v", err)
	}

	batches, err := m.ListBatchesByStatus("ter-1", domain.PayoutBatchDispatched)
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != 2 {
		t.Fatalf("batches: got %d, want 2", len(batches))
	}
	var total int64
	for _, batch := range batches {
		if batch.Amount > maximum {
			t.Errorf("batch %s over maximum: %d", batch.ID, batch.Amount)
		}
		total += batch.Amount
	}
	if total != 12000 {
		t.Errorf("batched total: got %d, want 12000", total)
	}
	if gateway.submitCount() != 2 {
		t.Errorf("gateway submits: got %d, want 2", gateway.submitCount())
	}
}

func TestDispatchWithApprovalQueuesBatch(t *testing.T) {
	cfg := testPayoutConfig(t, 1000, nil)
	cfg.RequiresApproval = true
	uc, m, gateway, _ := newPayoutFixture(t, cfg)

	seedTxn(m, "txn-1", "seller-1", 4000, domain.SellerTxReadyForPayout, time.Now())
	seedBalance(t, m, "seller-1", 0, 4000)

	if err := uc.DispatchPayouts(context.Background(), "ter-1"); err != nil {
		t.Fatalf("DispatchPayouts: %v", err)
	}

	if gateway.submitCount() != 0 {
		t.Fatalf("gateway called before approval")
	}
	pending, err := uc.ListPendingApprovals("ter-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending approvals: got %d, want 1", len(pending))
	}
	txn, _ := m.GetTransactionByID("txn-1")
	if txn.Status != domain.SellerTxReadyForPayout {
		t.Errorf("txn locked before approval: %s", txn.Status)
	}

	// Operator approves: the queued batch goes out like any other.
	if err := uc.DispatchApprovedBatch(context.Background(), pending[0].ID); err != nil {
		t.Fatalf("DispatchApprovedBatch: %v", err)
	}
	batch, _ := m.GetBatchByID(pending[0].ID)
	if batch.Status != domain.PayoutBatchDispatched {
		t.Errorf("batch: got %s, want DISPATCHED", batch.Status)
	}
	txn, _ = m.GetTransactionByID("txn-1")
	if txn.Status != domain.SellerTxProcessingPayout {
		t.Errorf("txn after approval: got %s, want PROCESSING_PAYOUT", txn.Status)
	}

	// Approving the same batch twice must fail: it is no longer approvable.
	if err := uc.DispatchApprovedBatch(context.Background(), pending[0].ID); !errors.Is(err, domain.ErrBatchNotDispatchable) {
		t.Errorf("second approval: got %v, want ErrBatchNotDispatchable", err)
	}
}

func TestDispatchSubmitFailureReturnsFunds(t *testing.T) {
	cfg := testPayoutConfig(t, 1000, nil)
	uc, m, gateway, _ := newPayoutFixture(t, cfg)
	gateway.err = errors.New("gateway unavailable")

	seedTxn(m, "txn-1", "seller-1", 4000, domain.SellerTxReadyForPayout, time.Now())
	seedBalance(t, m, "seller-1", 0, 4000)

	// Submit errors are logged per batch, not returned: the cycle continues.
	if err := uc.DispatchPayouts(context.Background(), "ter-1"); err != nil {
		t.Fatalf("DispatchPayouts: %v", err)
	}

	batches, err := m.ListBatchesByStatus("ter-1", domain.PayoutBatchFailed)
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != 1 {
		t.Fatalf("failed batches: got %d, want 1", len(batches))
	}
	txn, _ := m.GetTransactionByID("txn-1")
	if txn.Status != domain.SellerTxReadyForPayout {
		t.Errorf("txn after submit failure: got %s, want READY_FOR_PAYOUT", txn.Status)
	}
	if txn.PayoutID != nil {
		t.Errorf("payout id should be cleared after submit failure")
	}
}

// dispatchedFixture runs one successful dispatch: batch "po-1" in flight with
// two member transactions of 4000 and 3000.
func dispatchedFixture(t *testing.T) (*DefaultPayoutUsecase, *memStores) {
	t.Helper()
	cfg := testPayoutConfig(t, 1000, nil)
	uc, m, _, _ := newPayoutFixture(t, cfg)

	now := time.Now()
	seedTxn(m, "txn-1", "seller-1", 4000, domain.SellerTxReadyForPayout, now)
	seedTxn(m, "txn-2", "seller-1", 3000, domain.SellerTxReadyForPayout, now)
	seedBalance(t, m, "seller-1", 0, 7000)

	if err := uc.DispatchPayouts(context.Background(), "ter-1"); err != nil {
		t.Fatalf("DispatchPayouts: %v", err)
	}
	if _, err := m.GetBatchByPayoutID("po-1"); err != nil {
		t.Fatalf("dispatched batch missing: %v", err)
	}
	return uc, m
}

func TestGatewaySuccessSettlesBatch(t *testing.T) {
	uc, m := dispatchedFixture(t)

	result := domain.GatewayResult{PayoutID: "po-1", Succeeded: true}
	if err := uc.HandleGatewayResult(context.Background(), result); err != nil {
		t.Fatalf("HandleGatewayResult: %v", err)
	}

	for _, id := range []string{"txn-1", "txn-2"} {
		txn, _ := m.GetTransactionByID(id)
		if txn.Status != domain.SellerTxPaid {
			t.Errorf("%s: got %s, want PAID", id, txn.Status)
		}
	}

	balance, err := m.GetBalance("ter-1", "seller-1")
	if err != nil {
		t.Fatal(err)
	}
	if balance.ReadyForPayoutAmount != 0 || balance.PaidAmount != 7000 {
		t.Errorf("buckets: got ready=%d paid=%d, want 0/7000", balance.ReadyForPayoutAmount, balance.PaidAmount)
	}

	batch, _ := m.GetBatchByPayoutID("po-1")
	if batch.Status != domain.PayoutBatchCompleted {
		t.Errorf("batch: got %s, want COMPLETED", batch.Status)
	}

	if len(m.expenses) != 2 {
		t.Fatalf("expense rows: got %d, want 2", len(m.expenses))
	}
	var expensed int64
	for _, exp := range m.expenses {
		if exp.PayoutBatchID != batch.ID {
			t.Errorf("expense not tied to batch: %+v", exp)
		}
		expensed += exp.Amount
	}
	if expensed != 7000 {
		t.Errorf("expensed total: got %d, want 7000", expensed)
	}

	// Redelivered callback: terminal batch, nothing moves twice.
	if err := uc.HandleGatewayResult(context.Background(), result); err != nil {
		t.Fatalf("duplicate callback: %v", err)
	}
	if len(m.expenses) != 2 {
		t.Errorf("duplicate callback grew the expense ledger: %d rows", len(m.expenses))
	}
	balance, _ = m.GetBalance("ter-1", "seller-1")
	if balance.PaidAmount != 7000 {
		t.Errorf("duplicate callback moved funds: paid=%d", balance.PaidAmount)
	}
}

func TestGatewayRetryableFailureRequeues(t *testing.T) {
	uc, m := dispatchedFixture(t)

	result := domain.GatewayResult{PayoutID: "po-1", Succeeded: false, Reason: "network timeout"}
	if err := uc.HandleGatewayResult(context.Background(), result); err != nil {
		t.Fatalf("HandleGatewayResult: %v", err)
	}

	for _, id := range []string{"txn-1", "txn-2"} {
		txn, _ := m.GetTransactionByID(id)
		if txn.Status != domain.SellerTxReadyForPayout {
			t.Errorf("%s: got %s, want READY_FOR_PAYOUT", id, txn.Status)
		}
	}
	batch, _ := m.GetBatchByPayoutID("po-1")
	if batch.Status != domain.PayoutBatchFailed || batch.FailureReason != "network timeout" {
		t.Errorf("batch: got %s reason=%q", batch.Status, batch.FailureReason)
	}

	// Funds stay in the ready bucket for the next cycle.
	balance, _ := m.GetBalance("ter-1", "seller-1")
	if balance.ReadyForPayoutAmount != 7000 || balance.PaidAmount != 0 {
		t.Errorf("buckets: got ready=%d paid=%d, want 7000/0", balance.ReadyForPayoutAmount, balance.PaidAmount)
	}
	if len(m.expenses) != 0 {
		t.Errorf("failed payout recorded expenses: %d rows", len(m.expenses))
	}
}

func TestGatewayPermanentFailureParksTransactions(t *testing.T) {
	uc, m := dispatchedFixture(t)

	result := domain.GatewayResult{PayoutID: "po-1", Succeeded: false, Permanent: true, Reason: "account closed"}
	if err := uc.HandleGatewayResult(context.Background(), result); err != nil {
		t.Fatalf("HandleGatewayResult: %v", err)
	}

	for _, id := range []string{"txn-1", "txn-2"} {
		txn, _ := m.GetTransactionByID(id)
		if txn.Status != domain.SellerTxFailed {
			t.Errorf("%s: got %s, want FAILED", id, txn.Status)
		}
	}
	batch, _ := m.GetBatchByPayoutID("po-1")
	if batch.Status != domain.PayoutBatchFailed {
		t.Errorf("batch: got %s, want FAILED", batch.Status)
	}
}

func TestGatewayResultUnknownPayout(t *testing.T) {
	uc, _ := dispatchedFixture(t)
	err := uc.HandleGatewayResult(context.Background(), domain.GatewayResult{PayoutID: "po-unknown", Succeeded: true})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("unknown payout: got %v, want record not found", err)
	}
}

func TestRunScheduledReleasesSweepsAllTerritories(t *testing.T) {
	cfg := testPayoutConfig(t, 1000, nil)
	uc, m, _, _ := newPayoutFixture(t, cfg)

	cfg2, err := domain.NewTerritoryPayoutConfig(uuid.New().String(), "ter-2", 0, 1000, nil, domain.PayoutFrequencyDaily)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.CreatePayoutConfig(cfg2); err != nil {
		t.Fatal(err)
	}

	now := time.Now()
	seedTxn(m, "txn-1", "seller-1", 5000, domain.SellerTxPending, now.AddDate(0, 0, -8))
	seedBalance(t, m, "seller-1", 5000, 0)
	m.txns["txn-2"] = &domain.SellerTransaction{
		ID: "txn-2", CheckoutID: "chk-txn-2", TerritoryID: "ter-2", SellerUserID: "seller-2",
		Currency: "USD", GrossAmount: 2000, NetAmount: 2000,
		Status: domain.SellerTxPending, CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour),
	}
	balance2, err := domain.NewSellerBalance(uuid.New().String(), "ter-2", "seller-2", "USD")
	if err != nil {
		t.Fatal(err)
	}
	balance2.PendingAmount = 2000
	m.balances[balanceKey("ter-2", "seller-2")] = balance2

	if err := uc.RunScheduledReleases(context.Background()); err != nil {
		t.Fatalf("RunScheduledReleases: %v", err)
	}

	txn1, _ := m.GetTransactionByID("txn-1")
	txn2, _ := m.GetTransactionByID("txn-2")
	if txn1.Status != domain.SellerTxReadyForPayout || txn2.Status != domain.SellerTxReadyForPayout {
		t.Errorf("sweep: got %s/%s, want READY_FOR_PAYOUT for both", txn1.Status, txn2.Status)
	}
}

func TestSplitByMaximum(t *testing.T) {
	mk := func(id string, net int64) *domain.SellerTransaction {
		return &domain.SellerTransaction{ID: id, NetAmount: net}
	}

	t.Run("no maximum packs everything", func(t *testing.T) {
		groups := splitByMaximum([]*domain.SellerTransaction{mk("a", 4000), mk("b", 3000)}, nil)
		if len(groups) != 1 || groups[0].amount != 7000 {
			t.Errorf("groups: got %+v", groups)
		}
	})

	t.Run("splits at the cap", func(t *testing.T) {
		maximum := int64(6000)
		groups := splitByMaximum([]*domain.SellerTransaction{mk("a", 4000), mk("b", 3000), mk("c", 2000)}, &maximum)
		if len(groups) != 2 {
			t.Fatalf("groups: got %d, want 2", len(groups))
		}
		if groups[0].amount != 4000 || groups[1].amount != 5000 {
			t.Errorf("amounts: got %d/%d, want 4000/5000", groups[0].amount, groups[1].amount)
		}
	})

	t.Run("oversized transaction still gets a group", func(t *testing.T) {
		maximum := int64(6000)
		groups := splitByMaximum([]*domain.SellerTransaction{mk("a", 9000)}, &maximum)
		if len(groups) != 1 || groups[0].amount != 9000 {
			t.Errorf("groups: got %+v", groups)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if groups := splitByMaximum(nil, nil); groups != nil {
			t.Errorf("groups: got %+v, want nil", groups)
		}
	})
}

func TestDispatchWindowOpen(t *testing.T) {
	monday := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	firstOfMonth := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency domain.PayoutFrequency
		now       time.Time
		want      bool
	}{
		{"daily any day", domain.PayoutFrequencyDaily, tuesday, true},
		{"weekly on monday", domain.PayoutFrequencyWeekly, monday, true},
		{"weekly off monday", domain.PayoutFrequencyWeekly, tuesday, false},
		{"monthly on the first", domain.PayoutFrequencyMonthly, firstOfMonth, true},
		{"monthly mid-month", domain.PayoutFrequencyMonthly, monday, false},
		{"manual never", domain.PayoutFrequencyManual, monday, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &domain.TerritoryPayoutConfig{TerritoryID: "ter-1", Frequency: tt.frequency}
			if got := dispatchWindowOpen(cfg, tt.now); got != tt.want {
				t.Errorf("dispatchWindowOpen(%s): got %v, want %v", tt.frequency, got, tt.want)
			}
		})
	}
}
