package db

import (
	"context"

	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"gorm.io/gorm"
)

type PaymentRepo struct {
	dbDao *DbDao
}

func NewPaymentRepo(dbDao *DbDao) *PaymentRepo {
	return &PaymentRepo{dbDao: dbDao}
}

// CreatePayment - 創建付款紀錄
func (r *PaymentRepo) CreatePayment(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	if err := r.dbDao.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

// GetPaymentByID - 根據 ID 查詢付款紀錄
func (r *PaymentRepo) GetPaymentByID(ctx context.Context, id uint) (*model.Payment, error) {
	var payment model.Payment
	err := r.dbDao.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListPayments - 查詢所有付款紀錄
func (r *PaymentRepo) ListPayments(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.dbDao.WithContext(ctx).Find(&payments).Error
	return payments, err
}

// ListPaymentsByOrder - 根據訂單 ID 查詢付款紀錄
func (r *PaymentRepo) ListPaymentsByOrder(ctx context.Context, orderID uint) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.dbDao.WithContext(ctx).Where("order_id = ?", orderID).Find(&payments).Error
	return payments, err
}

// UpdatePaymentStatus - 更新付款狀態
func (r *PaymentRepo) UpdatePaymentStatus(ctx context.Context, id uint, status model.PaymentStatus) error {
	return r.dbDao.WithContext(ctx).
		Model(&model.Payment{}).
		Where("payment_id = ?", id).
		Update("status", status).Error
}

// CompletePayment - 付款成功與訂單轉 paid 綁在同一交易, 任一步失敗整筆回滾
func (r *PaymentRepo) CompletePayment(ctx context.Context, paymentID, orderID uint) error {
	return r.dbDao.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Payment{}).
			Where("payment_id = ?", paymentID).
			Update("status", model.PaymentStatusSuccess).Error
		if err != nil {
			return err
		}

		return tx.Model(&model.Order{}).
			Where("order_id = ?", orderID).
			Update("status", model.OrderStatusPaid).Error
	})
}
