package token

import (
	"time"

	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
)

// Maker 令牌簽發與驗證
type Maker interface {
	CreateToken(userID uint, email string, role model.UserRole, duration time.Duration) (string, *Payload, error)
	VerifyToken(token string) (*Payload, error)
}
