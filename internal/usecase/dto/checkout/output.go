package checkoutdto

import "github.com/terracommons/settlement-service/internal/domain"

type CheckoutOutput struct {
	Checkout domain.Checkout
}
