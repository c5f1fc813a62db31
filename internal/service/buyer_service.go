package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/producer"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/repository/redis_repo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCartNotFound    = apperr.New(apperr.NotFoundCode, "cart not found")
	ErrInvalidQuantity = apperr.New(apperr.InvalidArgumentCode, "quantity must be positive")
)

const availableArtworksCacheTTL = 5 * time.Minute

type IBuyerService interface {
	BrowseAvailableArtworks(ctx context.Context) ([]model.Artwork, error)
	// AddToCart 買家首次加入時隱式建立購物車, 同作品行合併數量
	AddToCart(ctx context.Context, buyerID, artworkID uint, quantity int) (*model.Cart, error)
	GetCart(ctx context.Context, buyerID uint) (*model.Cart, error)
	// RemoveFromCart 行不存在回傳 false, 不視為錯誤
	RemoveFromCart(ctx context.Context, cartID, artworkID uint) (bool, error)
	ClearCart(ctx context.Context, cartID uint) error
	PlaceOrder(ctx context.Context, buyerID, artworkID uint, quantity int) (*model.Order, error)
	GetMyOrders(ctx context.Context, buyerID uint) ([]model.Order, error)
}

type BuyerService struct {
	artworkRepo   *db.ArtworkRepo
	cartRepo      *db.CartRepo
	orderRepo     *db.OrderRepo
	artworkCache  redis_repo.IArtworkCacheRepository
	orderProducer *producer.OrderEventProducer
}

// artworkCache 與 orderProducer 皆可為 nil
func NewBuyerService(
	artworkRepo *db.ArtworkRepo,
	cartRepo *db.CartRepo,
	orderRepo *db.OrderRepo,
	artworkCache redis_repo.IArtworkCacheRepository,
	orderProducer *producer.OrderEventProducer,
) IBuyerService {
	return &BuyerService{
		artworkRepo:   artworkRepo,
		cartRepo:      cartRepo,
		orderRepo:     orderRepo,
		artworkCache:  artworkCache,
		orderProducer: orderProducer,
	}
}

// BrowseAvailableArtworks 先查快取, 未命中或 redis 異常都回源 DB
func (s *BuyerService) BrowseAvailableArtworks(ctx context.Context) ([]model.Artwork, error) {
	if s.artworkCache != nil {
		cached, err := s.artworkCache.GetAvailableArtworks(ctx)
		if err == nil {
			return cached, nil
		}
	}

	artworks, err := s.artworkRepo.ListAvailableArtworks(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to list available artworks", err)
	}

	if s.artworkCache != nil {
		_ = s.artworkCache.SetAvailableArtworks(ctx, artworks, availableArtworksCacheTTL)
	}
	return artworks, nil
}

// AddToCart 加入購物車
// 錯誤:
//   - apperr.InvalidArgumentCode 460: 數量非正數
//   - apperr.NotFoundCode 404: 作品不存在
//   - apperr.InternalErrorCode 500: 持久層錯誤 (交易已回滾)
func (s *BuyerService) AddToCart(ctx context.Context, buyerID, artworkID uint, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.cartRepo.AddToCart(ctx, buyerID, artworkID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to add to cart", err)
	}
	return cart, nil
}

func (s *BuyerService) GetCart(ctx context.Context, buyerID uint) (*model.Cart, error) {
	cart, err := s.cartRepo.GetCartByBuyerID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to get cart", err)
	}
	return cart, nil
}

func (s *BuyerService) RemoveFromCart(ctx context.Context, cartID, artworkID uint) (bool, error) {
	removed, err := s.cartRepo.RemoveFromCart(ctx, cartID, artworkID)
	if err != nil {
		return false, apperr.Wrap(apperr.InternalErrorCode, "failed to remove from cart", err)
	}
	return removed, nil
}

func (s *BuyerService) ClearCart(ctx context.Context, cartID uint) error {
	if err := s.cartRepo.ClearCart(ctx, cartID); err != nil {
		return apperr.Wrap(apperr.InternalErrorCode, "failed to clear cart", err)
	}
	return nil
}

// PlaceOrder 下單
// 下架或不存在的作品一律回 404, 不洩漏下架狀態
// 成交金額取下單當下的 price * quantity 快照, 之後作品改價不影響已成立訂單
func (s *BuyerService) PlaceOrder(ctx context.Context, buyerID, artworkID uint, quantity int) (*model.Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	artwork, err := s.artworkRepo.GetArtworkByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to get artwork", err)
	}
	if !artwork.IsAvailable {
		return nil, ErrArtworkNotFound
	}

	order := &model.Order{
		BuyerID:    buyerID,
		ArtworkID:  artworkID,
		Quantity:   quantity,
		TotalPrice: artwork.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Status:     model.OrderStatusPending,
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to create order", err)
	}

	// 事件發送失敗不影響已成立的訂單
	_ = s.orderProducer.OrderCreated(ctx, created)
	return created, nil
}

func (s *BuyerService) GetMyOrders(ctx context.Context, buyerID uint) ([]model.Order, error) {
	orders, err := s.orderRepo.ListOrdersByBuyer(ctx, buyerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to list orders", err)
	}
	return orders, nil
}
