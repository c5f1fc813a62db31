package db

import (
	"context"

	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
)

type OrderRepo struct {
	dbDao *DbDao
}

func NewOrderRepo(dbDao *DbDao) *OrderRepo {
	return &OrderRepo{dbDao: dbDao}
}

// CreateOrder - 創建訂單
func (r *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if err := r.dbDao.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrderByID - 根據 ID 查詢訂單
func (r *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := r.dbDao.WithContext(ctx).First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders - 查詢所有訂單
func (r *OrderRepo) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.dbDao.WithContext(ctx).Find(&orders).Error
	return orders, err
}

// ListOrdersByBuyer - 根據買家 ID 查詢訂單
func (r *OrderRepo) ListOrdersByBuyer(ctx context.Context, buyerID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.dbDao.WithContext(ctx).Where("buyer_id = ?", buyerID).Find(&orders).Error
	return orders, err
}

// ListOrdersByStatus - 根據狀態查詢訂單
func (r *OrderRepo) ListOrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	var orders []model.Order
	err := r.dbDao.WithContext(ctx).Where("status = ?", status).Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus - 更新訂單狀態
func (r *OrderRepo) UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	return r.dbDao.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_id = ?", id).
		Update("status", status).Error
}

// DeleteOrder - 軟刪除訂單
func (r *OrderRepo) DeleteOrder(ctx context.Context, id uint) error {
	return r.dbDao.WithContext(ctx).Delete(&model.Order{}, id).Error
}
