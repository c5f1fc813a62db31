package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/producer"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = apperr.New(apperr.NotFoundCode, "order not found")
	ErrPaymentNotFound   = apperr.New(apperr.NotFoundCode, "payment not found")
	ErrInvalidPayMethod  = apperr.New(apperr.InvalidArgumentCode, "payment method must be card or transfer")
	ErrAmountMismatch    = apperr.New(apperr.InvalidArgumentCode, "payment amount must equal order total")
	ErrPaymentNotPending = apperr.New(apperr.InvalidArgumentCode, "payment is not pending")
	ErrInvalidTransition = apperr.New(apperr.InvalidArgumentCode, "illegal order status transition")
	ErrOrderNotPayable   = apperr.New(apperr.InvalidArgumentCode, "order can no longer be paid")
)

type IPaymentService interface {
	// CreatePayment 金額必須等於訂單成交金額, 不支援分期付款
	CreatePayment(ctx context.Context, orderID uint, amount decimal.Decimal, method model.PaymentMethod) (*model.Payment, error)
	// CompletePayment 付款轉 success, 訂單同交易內轉 paid
	CompletePayment(ctx context.Context, paymentID uint) (*model.Payment, error)
	FailPayment(ctx context.Context, paymentID uint) (*model.Payment, error)
	GetPaymentsByOrder(ctx context.Context, orderID uint) ([]model.Payment, error)
}

type PaymentService struct {
	paymentRepo   *db.PaymentRepo
	orderRepo     *db.OrderRepo
	orderProducer *producer.OrderEventProducer
}

func NewPaymentService(paymentRepo *db.PaymentRepo, orderRepo *db.OrderRepo, orderProducer *producer.OrderEventProducer) IPaymentService {
	return &PaymentService{
		paymentRepo:   paymentRepo,
		orderRepo:     orderRepo,
		orderProducer: orderProducer,
	}
}

// CreatePayment 對訂單記錄一筆付款
// 錯誤:
//   - apperr.NotFoundCode 404: 訂單不存在
//   - apperr.InvalidArgumentCode 460: 付款方式不合法 / 金額與訂單不符 / 訂單已離開 pending
//   - apperr.InternalErrorCode 500: 持久層錯誤
func (s *PaymentService) CreatePayment(ctx context.Context, orderID uint, amount decimal.Decimal, method model.PaymentMethod) (*model.Payment, error) {
	if !model.IsValidPaymentMethod(string(method)) {
		return nil, ErrInvalidPayMethod
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to get order", err)
	}

	if order.Status != model.OrderStatusPending {
		return nil, ErrOrderNotPayable
	}
	if !amount.Equal(order.TotalPrice) {
		return nil, ErrAmountMismatch
	}

	payment := &model.Payment{
		OrderID: orderID,
		Amount:  amount,
		Method:  method,
		Status:  model.PaymentStatusPending,
	}
	created, err := s.paymentRepo.CreatePayment(ctx, payment)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to create payment", err)
	}

	_ = s.orderProducer.PaymentRecorded(ctx, created)
	return created, nil
}

func (s *PaymentService) CompletePayment(ctx context.Context, paymentID uint) (*model.Payment, error) {
	payment, err := s.getPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != model.PaymentStatusPending {
		return nil, ErrPaymentNotPending
	}

	order, err := s.orderRepo.GetOrderByID(ctx, payment.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to get order", err)
	}
	if !order.Status.CanTransitionTo(model.OrderStatusPaid) {
		return nil, ErrInvalidTransition
	}

	if err := s.paymentRepo.CompletePayment(ctx, payment.PaymentID, order.OrderID); err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to complete payment", err)
	}

	payment.Status = model.PaymentStatusSuccess
	_ = s.orderProducer.PaymentSucceeded(ctx, payment)
	_ = s.orderProducer.OrderStatusChanged(ctx, order.OrderID, model.OrderStatusPaid)
	return payment, nil
}

func (s *PaymentService) FailPayment(ctx context.Context, paymentID uint) (*model.Payment, error) {
	payment, err := s.getPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != model.PaymentStatusPending {
		return nil, ErrPaymentNotPending
	}

	if err := s.paymentRepo.UpdatePaymentStatus(ctx, paymentID, model.PaymentStatusFailed); err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to update payment", err)
	}

	payment.Status = model.PaymentStatusFailed
	_ = s.orderProducer.PaymentFailed(ctx, payment)
	return payment, nil
}

func (s *PaymentService) GetPaymentsByOrder(ctx context.Context, orderID uint) ([]model.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByOrder(ctx, orderID)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to list payments", err)
	}
	return payments, nil
}

func (s *PaymentService) getPayment(ctx context.Context, paymentID uint) (*model.Payment, error) {
	payment, err := s.paymentRepo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to get payment", err)
	}
	return payment, nil
}
