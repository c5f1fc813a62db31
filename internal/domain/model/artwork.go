package model

import (
	"github.com/shopspring/decimal"
)

type Artwork struct {
	ArtworkID   uint            `gorm:"primaryKey" json:"artwork_id"`
	Name        string          `gorm:"not null;type:varchar(30)" json:"name"`
	Description string          `gorm:"not null;type:varchar(100)" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	ImageURL    string          `gorm:"not null;type:varchar(225)" json:"image_url"`
	Category    string          `gorm:"not null;type:varchar(30)" json:"category"`
	IsAvailable bool            `gorm:"not null;default:true" json:"is_available"`
	ArtistID    uint            `gorm:"not null;index" json:"artist_id"`
	BaseModel
}
