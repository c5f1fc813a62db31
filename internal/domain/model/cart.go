package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 一個買家只會有一張購物車, buyer_id 上的唯一索引擋掉併發重複建立
type Cart struct {
	CartID  uint       `gorm:"primaryKey" json:"cart_id"`
	BuyerID uint       `gorm:"not null;uniqueIndex" json:"buyer_id"`
	Items   []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	BaseModel
}

// 同一張購物車內同一件作品只會有一行, 數量合併不重複插入
// 不做軟刪除, 否則刪過的行會佔住 (cart_id, artwork_id) 唯一索引
type CartItem struct {
	CartItemID uint            `gorm:"primaryKey" json:"cart_item_id"`
	CartID     uint            `gorm:"not null;uniqueIndex:idx_cart_items_cart_artwork" json:"cart_id"`
	ArtworkID  uint            `gorm:"not null;uniqueIndex:idx_cart_items_cart_artwork" json:"artwork_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Subtotal   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"subtotal"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
