package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/terracommons/settlement-service/internal/app/background"
	"github.com/terracommons/settlement-service/internal/app/setup"
	"github.com/terracommons/settlement-service/internal/delivery/http/handlers"
	"github.com/terracommons/settlement-service/internal/infrastructure/migrate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v\n", err)
	}
	cfg := deps.Config

	if cfg.SettlementDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(deps.DB, cfg.SettlementDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v\n", err)
		}
	}

	useCases, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v\n", err)
	}

	tasks := background.NewBackgroundTasks(
		useCases.PayoutUsecase,
		time.Duration(cfg.Scheduler.ReleaseIntervalSeconds)*time.Second,
		time.Duration(cfg.Scheduler.DispatchIntervalSeconds)*time.Second,
	)
	tasks.StartAll(context.Background())

	settlementHandler := handlers.NewSettlementHandler(useCases.SettlementUsecase)
	reconciliationHandler := handlers.NewReconciliationHandler(useCases.ReconciliationUsecase)
	callbackHandler := handlers.NewPayoutCallbackHandler(useCases.PayoutUsecase)
	payoutAdminHandler := handlers.NewPayoutAdminHandler(useCases.PayoutUsecase)
	configHandler := handlers.NewConfigHandler(useCases.ConfigUsecase)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /checkouts", settlementHandler.CreateCheckout)
	mux.HandleFunc("GET /checkouts", settlementHandler.GetCheckout)
	mux.HandleFunc("/checkouts/paid", settlementHandler.MarkCheckoutPaid)
	mux.HandleFunc("/checkouts/cancel", settlementHandler.CancelCheckout)
	mux.HandleFunc("GET /transactions", settlementHandler.GetTransaction)
	mux.HandleFunc("/transactions/cancel", settlementHandler.CancelTransaction)
	mux.HandleFunc("/balances", settlementHandler.GetSellerBalance)
	mux.HandleFunc("/payouts/callback", callbackHandler.HandleCallback)
	mux.HandleFunc("/payouts/batches", payoutAdminHandler.GetBatch)
	mux.HandleFunc("/payouts/approvals", payoutAdminHandler.ListPendingApprovals)
	mux.HandleFunc("/payouts/approvals/dispatch", payoutAdminHandler.ApproveBatch)
	mux.HandleFunc("/configs/fees", configHandler.FeeConfig)
	mux.HandleFunc("/configs/payouts", configHandler.PayoutConfig)
	mux.HandleFunc("/reconciliation/report", reconciliationHandler.GetReport)
	mux.HandleFunc("/reconciliation/statements", reconciliationHandler.ReconcileStatement)
	mux.HandleFunc("/reconciliation/records", reconciliationHandler.ListRecords)
	mux.HandleFunc("/reconciliation/platform-balance", reconciliationHandler.GetPlatformBalance)
	mux.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("settlement service started on %s\n", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
