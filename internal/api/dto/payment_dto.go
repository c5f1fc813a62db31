package dto

import (
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/shopspring/decimal"
)

type CreatePaymentDTO struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
}

type PaymentDTO struct {
	PaymentID uint            `json:"payment_id"`
	OrderID   uint            `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
}

func ConvertPaymentModelToDTO(payment model.Payment) PaymentDTO {
	return PaymentDTO{
		PaymentID: payment.PaymentID,
		OrderID:   payment.OrderID,
		Amount:    payment.Amount,
		Method:    string(payment.Method),
		Status:    string(payment.Status),
	}
}

func ConvertPaymentModelsToDTO(payments []model.Payment) []PaymentDTO {
	dtos := make([]PaymentDTO, 0, len(payments))
	for _, payment := range payments {
		dtos = append(dtos, ConvertPaymentModelToDTO(payment))
	}
	return dtos
}
