package setup

import (
	"fmt"

	"github.com/terracommons/settlement-service/internal/config"
	"github.com/terracommons/settlement-service/internal/domain"
	publisher "github.com/terracommons/settlement-service/internal/infrastructure/kafka"
	"github.com/terracommons/settlement-service/internal/infrastructure/metrics"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.SettlementConfig
	DB           *gorm.DB
	Publisher    *publisher.KafkaPublisher
	Metrics      *metrics.SettlementMetrics
	TxManager    domain.TxManager
	Repositories *Repositories
}

type Repositories struct {
	CheckoutRepo     domain.CheckoutRepository
	TransactionRepo  domain.SellerTransactionRepository
	BalanceRepo      domain.SellerBalanceRepository
	BatchRepo        domain.PayoutBatchRepository
	LedgerRepo       domain.PlatformLedgerRepository
	FeeConfigRepo    domain.FeeConfigRepository
	PayoutConfigRepo domain.PayoutConfigRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	settlementPublisher, err := initPublisher(cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka publisher: %w", err)
	}

	repos := &Repositories{
		CheckoutRepo:     repository.NewDefaultCheckoutRepository(db),
		TransactionRepo:  repository.NewDefaultSellerTransactionRepository(db),
		BalanceRepo:      repository.NewDefaultSellerBalanceRepository(db),
		BatchRepo:        repository.NewDefaultPayoutBatchRepository(db),
		LedgerRepo:       repository.NewDefaultPlatformLedgerRepository(db),
		FeeConfigRepo:    repository.NewDefaultFeeConfigRepository(db),
		PayoutConfigRepo: repository.NewDefaultPayoutConfigRepository(db),
	}

	return &Dependencies{
		Config:       cfg,
		DB:           db,
		Publisher:    settlementPublisher,
		Metrics:      metrics.NewSettlementMetrics(),
		TxManager:    repository.NewGormTxManager(db),
		Repositories: repos,
	}, nil
}

func initPublisher(cfg *config.SettlementConfig) (*publisher.KafkaPublisher, error) {
	kafkaConfig := publisher.KafkaConfig{
		Brokers:    []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		Username:   cfg.KafkaService.Username,
		Password:   cfg.KafkaService.Password,
		Mechanism:  cfg.KafkaService.Mechanism,
		TLSEnabled: cfg.KafkaService.TLSEnabled,
	}
	return publisher.NewKafkaPublisher(kafkaConfig)
}
