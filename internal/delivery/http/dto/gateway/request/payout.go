package gatewayRequest

type SubmitPayoutRequest struct {
	Reference    string `json:"reference"`
	SellerUserID string `json:"seller_user_id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
