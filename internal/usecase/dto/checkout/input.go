package checkoutdto

type CreateCheckoutInput struct {
	TerritoryID string
	BuyerUserID string
	StoreID     string
	Currency    string
	Items       []CartItemInput
}

type CartItemInput struct {
	ItemID       string
	ItemType     string
	Title        string
	SellerUserID string
	Quantity     int64
	UnitPrice    int64
}
