package db

import (
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"gorm.io/gorm"
)

// DbDao 程序內唯一的持久層握把, 各 repo 共用
type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// 初始化db schema
// 冪等性
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.User{},
		&model.Artwork{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.Payment{},
	)
}
