package gatewayResponse

type SubmitPayoutResponse struct {
	PayoutID string `json:"payout_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
