package mappers

import (
	"github.com/terracommons/settlement-service/internal/domain"
	"github.com/terracommons/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainCheckout(model *models.CheckoutModel) *domain.Checkout {
	items := make([]domain.CheckoutItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = domain.CheckoutItem{
			ID:         item.ID,
			CheckoutID: item.CheckoutID,
			ItemID:     item.ItemID,
			ItemType:   item.ItemType,
			Title:      item.Title,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal,
			FeeAmount:  item.FeeAmount,
			Total:      item.Total,
		}
	}

	return &domain.Checkout{
		ID:                model.ID,
		TerritoryID:       model.TerritoryID,
		BuyerUserID:       model.BuyerUserID,
		SellerUserID:      model.SellerUserID,
		StoreID:           model.StoreID,
		Currency:          model.Currency,
		Status:            model.Status,
		ItemsSubtotal:     model.ItemsSubtotal,
		PlatformFeeAmount: model.PlatformFeeAmount,
		TotalAmount:       model.TotalAmount,
		Items:             items,
		PaidAt:            model.PaidAt,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMCheckout(checkout *domain.Checkout) *models.CheckoutModel {
	items := make([]models.CheckoutItemModel, len(checkout.Items))
	for i, item := range checkout.Items {
		items[i] = models.CheckoutItemModel{
			ID:         item.ID,
			CheckoutID: item.CheckoutID,
			ItemID:     item.ItemID,
			ItemType:   item.ItemType,
			Title:      item.Title,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal,
			FeeAmount:  item.FeeAmount,
			Total:      item.Total,
		}
	}

	return &models.CheckoutModel{
		ID:                checkout.ID,
		TerritoryID:       checkout.TerritoryID,
		BuyerUserID:       checkout.BuyerUserID,
		SellerUserID:      checkout.SellerUserID,
		StoreID:           checkout.StoreID,
		Currency:          checkout.Currency,
		Status:            checkout.Status,
		ItemsSubtotal:     checkout.ItemsSubtotal,
		PlatformFeeAmount: checkout.PlatformFeeAmount,
		TotalAmount:       checkout.TotalAmount,
		Items:             items,
		PaidAt:            checkout.PaidAt,
		CreatedAt:         checkout.CreatedAt,
		UpdatedAt:         checkout.UpdatedAt,
	}
}
