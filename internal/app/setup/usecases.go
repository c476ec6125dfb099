package setup

import (
	"fmt"

	"github.com/terracommons/settlement-service/internal/client"
	"github.com/terracommons/settlement-service/internal/config"
	"github.com/terracommons/settlement-service/internal/usecase"
	payoutusecase "github.com/terracommons/settlement-service/internal/usecase/payout"
)

type UseCases struct {
	SettlementUsecase     usecase.SettlementUsecase
	PayoutUsecase         payoutusecase.PayoutUsecase
	ReconciliationUsecase usecase.ReconciliationUsecase
	ConfigUsecase         usecase.ConfigUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	gateway, err := initPayoutGateway(deps.Config)
	if err != nil {
		return nil, fmt.Errorf("payout gateway: %w", err)
	}

	settlementUsecase := usecase.NewDefaultSettlementUsecase(
		deps.TxManager,
		deps.Repositories.CheckoutRepo,
		deps.Repositories.TransactionRepo,
		deps.Repositories.BalanceRepo,
		deps.Repositories.FeeConfigRepo,
		deps.Publisher,
		deps.Metrics,
	)

	payoutUsecase := payoutusecase.NewDefaultPayoutUsecase(
		deps.TxManager,
		deps.Repositories.PayoutConfigRepo,
		deps.Repositories.BatchRepo,
		gateway,
		deps.Publisher,
		deps.Metrics,
	)

	reconciliationUsecase := usecase.NewDefaultReconciliationUsecase(
		deps.Repositories.CheckoutRepo,
		deps.Repositories.BalanceRepo,
		deps.Repositories.LedgerRepo,
	)

	configUsecase := usecase.NewDefaultConfigUsecase(
		deps.Repositories.FeeConfigRepo,
		deps.Repositories.PayoutConfigRepo,
	)

	return &UseCases{
		SettlementUsecase:     settlementUsecase,
		PayoutUsecase:         payoutUsecase,
		ReconciliationUsecase: reconciliationUsecase,
		ConfigUsecase:         configUsecase,
	}, nil
}

func initPayoutGateway(cfg *config.SettlementConfig) (*client.HTTPPayoutGateway, error) {
	return client.NewHTTPPayoutGateway(fmt.Sprintf("http://%s:%s", cfg.PayoutGateway.Host, cfg.PayoutGateway.Port))
}
