package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/terracommons/settlement-service/internal/domain"
)

// RunScheduledReleases sweeps every active territory's retention gate. One
// territory failing never stops the others.
func (uc *DefaultPayoutUsecase) RunScheduledReleases(ctx context.Context) error {
	cfgs, err := uc.PayoutConfigRepo.ListActivePayoutConfigs()
	if err != nil {
		return err
	}

	for _, cfg := range cfgs {
		if err := uc.ReleaseRetainedFunds(ctx, cfg.TerritoryID); err != nil {
			slog.Error("retention release failed", "territory_id", cfg.TerritoryID, "error", err.Error())
		}
	}

	return nil
}

// RunScheduledDispatch runs a payout cycle for every territory whose
// frequency window is open.
func (uc *DefaultPayoutUsecase) RunScheduledDispatch(ctx context.Context) error {
	cfgs, err := uc.PayoutConfigRepo.ListActivePayoutConfigs()
	if err != nil {
		return err
	}

	now := time.Now()
	for _, cfg := range cfgs {
		if !dispatchWindowOpen(cfg, now) {
			continue
		}
		if err := uc.DispatchPayouts(ctx, cfg.TerritoryID); err != nil {
			slog.Error("payout dispatch failed", "territory_id", cfg.TerritoryID, "error", err.Error())
		}
	}

	return nil
}

// dispatchWindowOpen gates dispatch by the territory's payout frequency.
// Re-running inside an open window is harmless: ready transactions are
// consumed on the first pass and MANUAL territories never auto-dispatch.
func dispatchWindowOpen(cfg *domain.TerritoryPayoutConfig, now time.Time) bool {
	switch cfg.Frequency {
	case domain.PayoutFrequencyDaily:
		return true
	case domain.PayoutFrequencyWeekly:
		return now.Weekday() == time.Monday
	case domain.PayoutFrequencyMonthly:
		return now.Day() == 1
	default:
		return false
	}
}
