package db

import (
	"context"
	"errors"
	"strings"

	"github.com/RoyceAzure/lab/artmarket/internal/constants"
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepo struct {
	dbDao *DbDao
}

func NewCartRepo(dbDao *DbDao) *CartRepo {
	return &CartRepo{dbDao: dbDao}
}

// GetCartByBuyerID - 根據買家 ID 查詢購物車, 含明細
func (r *CartRepo) GetCartByBuyerID(ctx context.Context, buyerID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.dbDao.WithContext(ctx).Preload("Items").Where("buyer_id = ?", buyerID).First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart - 加入購物車
// 單一交易內完成: 取得或建立買家購物車 -> 查作品 -> 同作品行合併數量並重算小計
// 撞到寫入衝突 (兩個併發請求同時建同一買家的購物車) 會重試一次
func (r *CartRepo) AddToCart(ctx context.Context, buyerID, artworkID uint, quantity int) (*model.Cart, error) {
	var err error
	for attempt := 0; attempt <= constants.CartUpsertRetry; attempt++ {
		err = r.addToCartTx(ctx, buyerID, artworkID, quantity)
		if err == nil || !isWriteConflict(err) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return r.GetCartByBuyerID(ctx, buyerID)
}

func (r *CartRepo) addToCartTx(ctx context.Context, buyerID, artworkID uint, quantity int) error {
	return r.dbDao.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var artwork model.Artwork
		if err := tx.First(&artwork, artworkID).Error; err != nil {
			return err
		}

		cart, err := getOrCreateCart(tx, buyerID)
		if err != nil {
			return err
		}

		var item model.CartItem
		err = tx.Where("cart_id = ? AND artwork_id = ?", cart.CartID, artworkID).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += quantity
			item.Subtotal = artwork.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			return tx.Save(&item).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			newItem := model.CartItem{
				CartID:    cart.CartID,
				ArtworkID: artworkID,
				Quantity:  quantity,
				Subtotal:  artwork.Price.Mul(decimal.NewFromInt(int64(quantity))),
			}
			return tx.Create(&newItem).Error
		default:
			return err
		}
	})
}

// buyer_id 唯一索引保證至多一張購物車, 建立撞到衝突就改撈既有那張
func getOrCreateCart(tx *gorm.DB, buyerID uint) (*model.Cart, error) {
	var cart model.Cart
	err := tx.Where("buyer_id = ?", buyerID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newCart := model.Cart{BuyerID: buyerID}
	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "buyer_id"}},
		DoNothing: true,
	}).Create(&newCart).Error
	if err != nil {
		return nil, err
	}

	// DoNothing 時不會回填主鍵, 一律重撈
	err = tx.Where("buyer_id = ?", buyerID).First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveFromCart - 移除購物車內指定作品
// 行不存在回傳 false 而非錯誤
func (r *CartRepo) RemoveFromCart(ctx context.Context, cartID, artworkID uint) (bool, error) {
	res := r.dbDao.WithContext(ctx).
		Where("cart_id = ? AND artwork_id = ?", cartID, artworkID).
		Delete(&model.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ClearCart - 清空購物車, 冪等
func (r *CartRepo) ClearCart(ctx context.Context, cartID uint) error {
	return r.dbDao.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error
}

func isWriteConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	// 40001: postgres serialization failure
	return strings.Contains(msg, "SQLSTATE 40001") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
