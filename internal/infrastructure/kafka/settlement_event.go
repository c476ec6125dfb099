package kafka

const (
	TopicSettlementEvents = "settlement-events"
	TopicPayoutEvents     = "payout-events"
)

type CheckoutSettledEvent struct {
	CheckoutID   string `json:"checkout_id"`
	TerritoryID  string `json:"territory_id"`
	SellerUserID string `json:"seller_user_id"`
	GrossAmount  int64  `json:"gross_amount"`
	FeeAmount    int64  `json:"fee_amount"`
	NetAmount    int64  `json:"net_amount"`
	Currency     string `json:"currency"`
}

type FundsReleasedEvent struct {
	TransactionID string `json:"transaction_id"`
	TerritoryID   string `json:"territory_id"`
	SellerUserID  string `json:"seller_user_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
}

type PayoutBatchEvent struct {
	BatchID      string `json:"batch_id"`
	Reference    string `json:"reference"`
	TerritoryID  string `json:"territory_id"`
	SellerUserID string `json:"seller_user_id"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
