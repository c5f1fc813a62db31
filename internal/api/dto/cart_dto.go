package dto

import (
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/shopspring/decimal"
)

type AddToCartDTO struct {
	ArtworkID uint `json:"artwork_id"`
	// 省略或為 0 時採預設數量
	Quantity int `json:"quantity"`
}

type CartItemDTO struct {
	CartItemID uint            `json:"cart_item_id"`
	ArtworkID  uint            `json:"artwork_id"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type CartDTO struct {
	CartID uint            `json:"cart_id"`
	Items  []CartItemDTO   `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

func ConvertCartModelToDTO(cart model.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(cart.Items))
	total := decimal.Zero
	for _, item := range cart.Items {
		items = append(items, CartItemDTO{
			CartItemID: item.CartItemID,
			ArtworkID:  item.ArtworkID,
			Quantity:   item.Quantity,
			Subtotal:   item.Subtotal,
		})
		total = total.Add(item.Subtotal)
	}
	return CartDTO{
		CartID: cart.CartID,
		Items:  items,
		Total:  total,
	}
}
