package model

import (
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

func IsValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCompleted, OrderStatusCanceled:
		return true
	default:
		return false
	}
}

// 訂單狀態只允許往前推進, completed / canceled 為終態
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPaid, OrderStatusCanceled},
	OrderStatusPaid:      {OrderStatusShipped},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {OrderStatusCompleted},
	OrderStatusCompleted: {},
	OrderStatusCanceled:  {},
}

// CanTransitionTo 檢查狀態轉移是否合法
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	OrderID   uint `gorm:"primaryKey" json:"order_id"`
	BuyerID   uint `gorm:"not null;index" json:"buyer_id"`
	ArtworkID uint `gorm:"not null;index" json:"artwork_id"`
	Quantity  int  `gorm:"not null;default:1" json:"quantity"`
	// 下單當下的 price * quantity 快照, 之後作品改價不回寫
	TotalPrice decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_price"`
	Status     OrderStatus     `gorm:"not null;type:varchar(20);default:'pending'" json:"status"`
	Payments   []Payment       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
	BaseModel
}
