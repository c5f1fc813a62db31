package dto

import (
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/shopspring/decimal"
)

type PlaceOrderDTO struct {
	ArtworkID uint `json:"artwork_id"`
	Quantity  int  `json:"quantity"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status"`
}

type OrderDTO struct {
	OrderID    uint            `json:"order_id"`
	BuyerID    uint            `json:"buyer_id"`
	ArtworkID  uint            `json:"artwork_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
}

func ConvertOrderModelToDTO(order model.Order) OrderDTO {
	return OrderDTO{
		OrderID:    order.OrderID,
		BuyerID:    order.BuyerID,
		ArtworkID:  order.ArtworkID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
	}
}

func ConvertOrderModelsToDTO(orders []model.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, ConvertOrderModelToDTO(order))
	}
	return dtos
}
