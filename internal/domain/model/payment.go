package model

import (
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

func IsValidPaymentMethod(method string) bool {
	switch PaymentMethod(method) {
	case PaymentMethodCard, PaymentMethodTransfer:
		return true
	default:
		return false
	}
}

type Payment struct {
	PaymentID uint            `gorm:"primaryKey" json:"payment_id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	Amount    decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"amount"`
	Method    PaymentMethod   `gorm:"not null;type:varchar(10)" json:"method"`
	Status    PaymentStatus   `gorm:"not null;type:varchar(10);default:'pending'" json:"status"`
	BaseModel
}
