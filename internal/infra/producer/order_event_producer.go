package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/segmentio/kafka-go"
)

type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order_created"
	OrderEventStatusChanged OrderEventType = "order_status_changed"
	PaymentEventRecorded    OrderEventType = "payment_recorded"
	PaymentEventSucceeded   OrderEventType = "payment_succeeded"
	PaymentEventFailed      OrderEventType = "payment_failed"
)

// OrderEvent 訂單生命週期事件, JSON 上 kafka
type OrderEvent struct {
	Type       OrderEventType `json:"type"`
	OrderID    uint           `json:"order_id"`
	BuyerID    uint           `json:"buyer_id,omitempty"`
	ArtworkID  uint           `json:"artwork_id,omitempty"`
	Quantity   int            `json:"quantity,omitempty"`
	TotalPrice string         `json:"total_price,omitempty"`
	Status     string         `json:"status,omitempty"`
	PaymentID  uint           `json:"payment_id,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// OrderEventProducer 可為 nil, nil producer 所有發送都是 no-op,
// 未設定 kafka 的部署不受影響
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	return &OrderEventProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *OrderEventProducer) OrderCreated(ctx context.Context, order *model.Order) error {
	return p.publish(ctx, OrderEvent{
		Type:       OrderEventCreated,
		OrderID:    order.OrderID,
		BuyerID:    order.BuyerID,
		ArtworkID:  order.ArtworkID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice.String(),
		Status:     string(order.Status),
	})
}

func (p *OrderEventProducer) OrderStatusChanged(ctx context.Context, orderID uint, status model.OrderStatus) error {
	return p.publish(ctx, OrderEvent{
		Type:    OrderEventStatusChanged,
		OrderID: orderID,
		Status:  string(status),
	})
}

func (p *OrderEventProducer) PaymentRecorded(ctx context.Context, payment *model.Payment) error {
	return p.publish(ctx, OrderEvent{
		Type:       PaymentEventRecorded,
		OrderID:    payment.OrderID,
		PaymentID:  payment.PaymentID,
		TotalPrice: payment.Amount.String(),
		Status:     string(payment.Status),
	})
}

func (p *OrderEventProducer) PaymentSucceeded(ctx context.Context, payment *model.Payment) error {
	return p.publish(ctx, OrderEvent{
		Type:      PaymentEventSucceeded,
		OrderID:   payment.OrderID,
		PaymentID: payment.PaymentID,
	})
}

func (p *OrderEventProducer) PaymentFailed(ctx context.Context, payment *model.Payment) error {
	return p.publish(ctx, OrderEvent{
		Type:      PaymentEventFailed,
		OrderID:   payment.OrderID,
		PaymentID: payment.PaymentID,
	})
}

func (p *OrderEventProducer) publish(ctx context.Context, event OrderEvent) error {
	if p == nil || p.writer == nil {
		return nil
	}

	event.OccurredAt = time.Now().UTC()
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// 同一訂單的事件以 order id 作 key, 保證落在同一 partition 維持順序
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.OrderID), 10)),
		Value: value,
	})
}

func (p *OrderEventProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
