package domain

import "context"

// PayoutInstruction is one batch handed to the external payout gateway.
type PayoutInstruction struct {
	Reference    string
	SellerUserID string
	Amount       int64
	Currency     string
}

// GatewayResult is the gateway's asynchronous verdict on a dispatched
// payout. Permanent marks rejections that must not be retried.
type GatewayResult struct {
	PayoutID  string
	Succeeded bool
	Permanent bool
	Reason    string
}

// PayoutGateway is the opaque request/callback boundary to the payment
// network. SubmitPayout returns the gateway-assigned payout identifier; the
// final verdict arrives later as a GatewayResult.
type PayoutGateway interface {
	SubmitPayout(ctx context.Context, instruction PayoutInstruction) (payoutID string, err error)
}
