package usecase

import (
	"context"

	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/metrics"
)

type PayoutUsecase interface {
	ReleaseRetainedFunds(ctx context.Context, territoryID string) error
	DispatchPayouts(ctx context.Context, territoryID string) error
	DispatchApprovedBatch(ctx context.Context, batchID string) error
	HandleGatewayResult(ctx context.Context, result domain.GatewayResult) error
	RunScheduledReleases(ctx context.Context) error
	RunScheduledDispatch(ctx context.Context) error

	GetBatchByID(batchID string) (*domain.PayoutBatch, error)
	ListPendingApprovals(territoryID string) ([]*domain.PayoutBatch, error)
}

type DefaultPayoutUsecase struct {
	TxManager        domain.TxManager
	PayoutConfigRepo domain.PayoutConfigRepository
	BatchRepo        domain.PayoutBatchRepository
	Gateway          domain.PayoutGateway
	Publisher        domain.PublisherPort
	Metrics          *metrics.SettlementMetrics
}

func NewDefaultPayoutUsecase(
	txManager domain.TxManager,
	payoutConfigRepo domain.PayoutConfigRepository,
	batchRepo domain.PayoutBatchRepository,
	gateway domain.PayoutGateway,
	kafkaPublisher domain.PublisherPort,
	settlementMetrics *metrics.SettlementMetrics) *DefaultPayoutUsecase {

	return &DefaultPayoutUsecase{
		TxManager:        txManager,
		PayoutConfigRepo: payoutConfigRepo,
		BatchRepo:        batchRepo,
		Gateway:          gateway,
		Publisher:        kafkaPublisher,
		Metrics:          settlementMetrics,
	}
}
