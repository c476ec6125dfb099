package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/kafka"
	"github.com/terracommons/settlement-service/internal/infrastructure/metrics"
	checkoutdto "github.com/terracommons/settlement-service/internal/usecase/dto/checkout"
)

type SettlementUsecase interface {
	CreateCheckout(input *checkoutdto.CreateCheckoutInput) (*checkoutdto.CheckoutOutput, error)
	MarkCheckoutPaid(ctx context.Context, checkoutID string) error
	CancelCheckout(checkoutID string) error
	CancelSellerTransaction(ctx context.Context, transactionID string) error

	GetCheckoutByID(checkoutID string) (*domain.Checkout, error)
	GetSellerTransaction(transactionID string) (*domain.SellerTransaction, error)
	GetSellerBalance(territoryID, sellerUserID string) (*domain.SellerBalance, error)
}

type DefaultSettlementUsecase struct {
	TxManager    domain.TxManager
	CheckoutRepo domain.CheckoutRepository
	TxnRepo      domain.SellerTransactionRepository
	BalanceRepo  domain.SellerBalanceRepository
	FeeRepo      domain.FeeConfigRepository
	Publisher    domain.PublisherPort
	Metrics      *metrics.SettlementMetrics
}

func NewDefaultSettlementUsecase(
	txManager domain.TxManager,
	checkoutRepo domain.CheckoutRepository,
	txnRepo domain.SellerTransactionRepository,
	balanceRepo domain.SellerBalanceRepository,
	feeRepo domain.FeeConfigRepository,
	kafkaPublisher domain.PublisherPort,
	settlementMetrics *metrics.SettlementMetrics) *DefaultSettlementUsecase {

	return &DefaultSettlementUsecase{
		TxManager:    txManager,
		CheckoutRepo: checkoutRepo,
		TxnRepo:      txnRepo,
		BalanceRepo:  balanceRepo,
		FeeRepo:      feeRepo,
		Publisher:    kafkaPublisher,
		Metrics:      settlementMetrics,
	}
}

// CreateCheckout settles a cart into an immutable checkout: per-line fee
// snapshots, frozen totals, AWAITING_PAYMENT. Fee config lookups happen here
// and never again for this checkout.
func (uc *DefaultSettlementUsecase) CreateCheckout(input *checkoutdto.CreateCheckoutInput) (*checkoutdto.CheckoutOutput, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	sellerUserID := input.Items[0].SellerUserID
	for _, item := range input.Items {
		if item.SellerUserID != sellerUserID {
			return nil, domain.ErrMixedSellerCart
		}
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			return nil, domain.ErrNegativeAmount
		}
	}

	checkout, err := domain.NewCheckout(
		uuid.New().String(),
		input.TerritoryID,
		input.BuyerUserID,
		sellerUserID,
		input.StoreID,
		input.Currency,
	)
	if err != nil {
		return nil, err
	}

	var itemsSubtotal, feeTotal int64
	items := make([]domain.CheckoutItem, 0, len(input.Items))
	for _, line := range input.Items {
		feeCfg, err := uc.FeeRepo.GetActiveFeeConfig(input.TerritoryID, line.ItemType)
		if err != nil {
			return nil, fmt.Errorf("fee config lookup: %w", err)
		}

		lineSubtotal := line.Quantity * line.UnitPrice
		lineFee, _, err := domain.CalculateFee(lineSubtotal, feeCfg)
		if err != nil {
			return nil, err
		}

		items = append(items, domain.CheckoutItem{
			ID:         uuid.New().String(),
			CheckoutID: checkout.ID,
			ItemID:     line.ItemID,
			ItemType:   line.ItemType,
			Title:      line.Title,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			Subtotal:   lineSubtotal,
			FeeAmount:  lineFee,
			Total:      lineSubtotal + lineFee,
		})
		itemsSubtotal += lineSubtotal
		feeTotal += lineFee
	}

	if err := checkout.SetTotals(itemsSubtotal, feeTotal, itemsSubtotal+feeTotal); err != nil {
		return nil, err
	}
	if err := checkout.MarkAwaitingPayment(); err != nil {
		return nil, err
	}
	checkout.Items = items

	if err := uc.CheckoutRepo.CreateCheckout(checkout); err != nil {
		return nil, err
	}

	return &checkoutdto.CheckoutOutput{Checkout: *checkout}, nil
}

// MarkCheckoutPaid is the payment-confirmed entry point. Checkout terminal
// transition, seller transaction creation, pending-bucket credit and platform
// revenue all commit in one storage transaction or not at all.
func (uc *DefaultSettlementUsecase) MarkCheckoutPaid(ctx context.Context, checkoutID string) error {
	var settled *domain.Checkout
	var txn *domain.SellerTransaction

	err := uc.TxManager.WithinTransaction(ctx, func(s domain.Stores) error {
		checkout, err := s.Checkouts.GetCheckoutByID(checkoutID)
		if err != nil {
			return err
		}

		now := time.Now()
		if err := checkout.MarkPaid(now); err != nil {
			return err
		}

		txn, err = domain.NewSellerTransaction(uuid.New().String(), checkout)
		if err != nil {
			return err
		}

		balance, err := s.Balances.GetOrCreateForUpdate(checkout.TerritoryID, checkout.SellerUserID, checkout.Currency)
		if err != nil {
			return err
		}
		if err := balance.AddPendingAmount(txn.NetAmount); err != nil {
			return err
		}

		if err := s.Checkouts.UpdateCheckout(checkout); err != nil {
			return err
		}
		if err := s.Transactions.CreateTransaction(txn); err != nil {
			return err
		}
		if err := s.Balances.Save(balance); err != nil {
			return err
		}

		if err := s.Platform.RecordRevenue(&domain.PlatformRevenueTransaction{
			ID:          uuid.New().String(),
			TerritoryID: checkout.TerritoryID,
			CheckoutID:  checkout.ID,
			Currency:    checkout.Currency,
			Amount:      *checkout.PlatformFeeAmount,
			RecordedAt:  now,
		}); err != nil {
			return err
		}

		settled = checkout
		return nil
	})
	if err != nil {
		return err
	}

	uc.Metrics.RecordCheckoutSettled(settled.TerritoryID, settled.Currency, txn.GrossAmount, txn.PlatformFee)
	uc.Metrics.RecordTransactionStatus(settled.TerritoryID, string(txn.Status))

	go func(event kafka.CheckoutSettledEvent) {
		payload, err := json.Marshal(event)
		if err != nil {
			slog.Error("failed to marshal CheckoutSettledEvent", "error", err.Error())
			return
		}
		if err := uc.Publisher.Publish(kafka.TopicSettlementEvents, domain.Message{
			Key:   []byte(event.CheckoutID),
			Value: payload,
		}); err != nil {
			slog.Error("failed to publish CheckoutSettledEvent", "error", err.Error())
		}
	}(kafka.CheckoutSettledEvent{
		CheckoutID:   settled.ID,
		TerritoryID:  settled.TerritoryID,
		SellerUserID: settled.SellerUserID,
		GrossAmount:  txn.GrossAmount,
		FeeAmount:    txn.PlatformFee,
		NetAmount:    txn.NetAmount,
		Currency:     settled.Currency,
	})

	return nil
}

// CancelCheckout aborts an unpaid checkout. No ledger rows exist yet, so
// this is a pure status change.
func (uc *DefaultSettlementUsecase) CancelCheckout(checkoutID string) error {
	checkout, err := uc.CheckoutRepo.GetCheckoutByID(checkoutID)
	if err != nil {
		return err
	}
	if err := checkout.Cancel(); err != nil {
		return err
	}
	return uc.CheckoutRepo.UpdateCheckout(checkout)
}

// CancelSellerTransaction backs out a pending transaction (refund before
// retention elapsed). Once funds reached the ready bucket the cancel window
// is closed and the call fails with an invalid-transition error.
func (uc *DefaultSettlementUsecase) CancelSellerTransaction(ctx context.Context, transactionID string) error {
	var canceled *domain.SellerTransaction

	err := uc.TxManager.WithinTransaction(ctx, func(s domain.Stores) error {
		txn, err := s.Transactions.GetTransactionByID(transactionID)
		if err != nil {
			return err
		}
		if txn.Status != domain.SellerTxPending {
			return &domain.InvalidTransitionError{Entity: "seller_transaction", From: string(txn.Status), Operation: "CancelSellerTransaction"}
		}

		balance, err := s.Balances.GetOrCreateForUpdate(txn.TerritoryID, txn.SellerUserID, txn.Currency)
		if err != nil {
			return err
		}
		if err := balance.CancelPendingAmount(txn.NetAmount); err != nil {
			return err
		}
		if err := txn.Cancel(); err != nil {
			return err
		}

		if err := s.Transactions.UpdateTransaction(txn); err != nil {
			return err
		}
		if err := s.Balances.Save(balance); err != nil {
			return err
		}

		canceled = txn
		return nil
	})
	if err != nil {
		return err
	}

	uc.Metrics.RecordTransactionStatus(canceled.TerritoryID, string(canceled.Status))
	return nil
}

func (uc *DefaultSettlementUsecase) GetCheckoutByID(checkoutID string) (*domain.Checkout, error) {
	return uc.CheckoutRepo.GetCheckoutByID(checkoutID)
}

func (uc *DefaultSettlementUsecase) GetSellerTransaction(transactionID string) (*domain.SellerTransaction, error) {
	return uc.TxnRepo.GetTransactionByID(transactionID)
}

func (uc *DefaultSettlementUsecase) GetSellerBalance(territoryID, sellerUserID string) (*domain.SellerBalance, error) {
	return uc.BalanceRepo.GetBalance(territoryID, sellerUserID)
}
