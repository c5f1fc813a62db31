package model

import (
	"github.com/RoyceAzure/lab/artmarket/internal/util/crypt"
)

type UserRole string

const (
	RoleBuyer  UserRole = "buyer"
	RoleArtist UserRole = "artist"
	RoleAdmin  UserRole = "admin"
)

func IsValidUserRole(role string) bool {
	switch UserRole(role) {
	case RoleBuyer, RoleArtist, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	UserID         uint     `gorm:"primaryKey" json:"user_id"`
	FirstName      string   `gorm:"not null;type:varchar(30)" json:"first_name"`
	LastName       string   `gorm:"not null;type:varchar(30)" json:"last_name"`
	Email          string   `gorm:"unique;not null;type:varchar(120)" json:"email"`
	HashedPassword string   `gorm:"not null;type:varchar(120)" json:"-"`
	Role           UserRole `gorm:"not null;type:varchar(10);default:'buyer'" json:"role"`
	IsVerified     bool     `gorm:"not null;default:false" json:"is_verified"`
	// 驗證完成後清空, NULL 不受 unique 限制
	VerificationCode *string   `gorm:"uniqueIndex;type:varchar(120)" json:"-"`
	Artworks         []Artwork `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"artworks,omitempty"`
	Orders           []Order   `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	Cart             *Cart     `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	BaseModel
}

// SetPassword 密碼設定的唯一入口, 寫入前一律經過雜湊
func (u *User) SetPassword(password string) error {
	hashed, err := crypt.HashPassword(password)
	if err != nil {
		return err
	}
	u.HashedPassword = hashed
	return nil
}

// CheckPassword 驗證明文密碼
func (u *User) CheckPassword(password string) error {
	return crypt.CheckPassword(password, u.HashedPassword)
}
