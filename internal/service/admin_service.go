package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/producer"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/repository/db"
	"gorm.io/gorm"
)

type IAdminService interface {
	GetAllUsers(ctx context.Context) ([]model.User, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	GetOrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	GetAllPayments(ctx context.Context) ([]model.Payment, error)
	// UpdateOrderStatus 僅接受狀態機允許的前進轉移
	UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus) (*model.Order, error)
	DeleteUser(ctx context.Context, userID uint) error
	DeleteArtwork(ctx context.Context, artworkID uint) error
}

type AdminService struct {
	userRepo      *db.UserRepo
	artworkRepo   *db.ArtworkRepo
	orderRepo     *db.OrderRepo
	paymentRepo   *db.PaymentRepo
	orderProducer *producer.OrderEventProducer
}

func NewAdminService(userRepo *db.UserRepo, artworkRepo *db.ArtworkRepo, orderRepo *db.OrderRepo, paymentRepo *db.PaymentRepo, orderProducer *producer.OrderEventProducer) IAdminService {
	return &AdminService{
		userRepo:      userRepo,
		artworkRepo:   artworkRepo,
		orderRepo:     orderRepo,
		paymentRepo:   paymentRepo,
		orderProducer: orderProducer,
	}
}

func (s *AdminService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to list users", err)
	}
	return users, nil
}

func (s *AdminService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to list orders", err)
	}
	return orders, nil
}

func (s *AdminService) GetOrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if !model.IsValidOrderStatus(string(status)) {
		return nil, apperr.New(apperr.InvalidArgumentCode, "unknown order status")
	}

	orders, err := s.orderRepo.ListOrdersByStatus(ctx, status)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to list orders", err)
	}
	return orders, nil
}

func (s *AdminService) GetAllPayments(ctx context.Context) ([]model.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to list payments", err)
	}
	return payments, nil
}

// UpdateOrderStatus 更新訂單狀態
// 錯誤:
//   - apperr.NotFoundCode 404: 訂單不存在
//   - apperr.InvalidArgumentCode 460: 未知狀態或非法轉移
func (s *AdminService) UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus) (*model.Order, error) {
	if !model.IsValidOrderStatus(string(status)) {
		return nil, apperr.New(apperr.InvalidArgumentCode, "unknown order status")
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to get order", err)
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to update order status", err)
	}

	order.Status = status
	_ = s.orderProducer.OrderStatusChanged(ctx, orderID, status)
	return order, nil
}

// DeleteUser 管理員下架任意用戶
func (s *AdminService) DeleteUser(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return apperr.Wrap(apperr.InternalErrorCode, "failed to get user", err)
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return apperr.Wrap(apperr.InternalErrorCode, "failed to delete user", err)
	}
	return nil
}

// DeleteArtwork 管理員下架任意作品, 不做擁有者檢查
func (s *AdminService) DeleteArtwork(ctx context.Context, artworkID uint) error {
	if _, err := s.artworkRepo.GetArtworkByID(ctx, artworkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArtworkNotFound
		}
		return apperr.Wrap(apperr.InternalErrorCode, "failed to get artwork", err)
	}

	if err := s.artworkRepo.DeleteArtwork(ctx, artworkID); err != nil {
		return apperr.Wrap(apperr.InternalErrorCode, "failed to delete artwork", err)
	}
	return nil
}
