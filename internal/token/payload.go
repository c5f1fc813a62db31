package token

import (
	"errors"
	"time"

	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("token is invalid")
)

// Payload 令牌酬載
type Payload struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uint           `json:"user_id"`
	Email     string         `json:"email"`
	Role      model.UserRole `json:"role"`
	IssuedAt  time.Time      `json:"issued_at"`
	ExpiredAt time.Time      `json:"expired_at"`
}

func NewPayload(userID uint, email string, role model.UserRole, duration time.Duration) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Payload{
		ID:        tokenID,
		UserID:    userID,
		Email:     email,
		Role:      role,
		IssuedAt:  now,
		ExpiredAt: now.Add(duration),
	}, nil
}

func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiredAt) {
		return ErrExpiredToken
	}
	return nil
}

// jwt.Claims 介面實作

func (p *Payload) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(p.ExpiredAt), nil
}

func (p *Payload) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(p.IssuedAt), nil
}

func (p *Payload) GetNotBefore() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(p.IssuedAt), nil
}

func (p *Payload) GetIssuer() (string, error) {
	return "artmarket", nil
}

func (p *Payload) GetSubject() (string, error) {
	return p.Email, nil
}

func (p *Payload) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}
