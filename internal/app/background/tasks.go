package background

import (
	"context"
	"log"
	"time"

	payoutusecase "github.com/terracommons/settlement-service/internal/usecase/payout"
)

type BackgroundTasks struct {
	PayoutUsecase    payoutusecase.PayoutUsecase
	ReleaseInterval  time.Duration
	DispatchInterval time.Duration
}

func NewBackgroundTasks(payoutUC payoutusecase.PayoutUsecase, releaseInterval, dispatchInterval time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		PayoutUsecase:    payoutUC,
		ReleaseInterval:  releaseInterval,
		DispatchInterval: dispatchInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startRetentionReleases(ctx)
	go bt.startPayoutDispatch(ctx)
}

func (bt *BackgroundTasks) startRetentionReleases(ctx context.Context) {
	ticker := time.NewTicker(bt.ReleaseInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.PayoutUsecase.RunScheduledReleases(ctx); err != nil {
				log.Printf("Retention release error: %v\n", err)
			}
		}
	}
}

func (bt *BackgroundTasks) startPayoutDispatch(ctx context.Context) {
	ticker := time.NewTicker(bt.DispatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.PayoutUsecase.RunScheduledDispatch(ctx); err != nil {
				log.Printf("Payout dispatch error: %v\n", err)
			}
		}
	}
}
