package util

import (
	"context"

	"github.com/RoyceAzure/lab/artmarket/internal/constants"
	"github.com/RoyceAzure/lab/artmarket/internal/token"
)

// GetTokenPayloadFromContext 取得 ctx 內的 token payload, 未登入回傳 nil
func GetTokenPayloadFromContext(ctx context.Context) *token.Payload {
	payload, ok := ctx.Value(constants.AuthorizationPayloadKey).(*token.Payload)
	if !ok {
		return nil
	}
	return payload
}

// GetRequestIDFromContext 取得 ctx 內的 request id
func GetRequestIDFromContext(ctx context.Context) string {
	requestID, ok := ctx.Value(constants.RequestIDKey).(string)
	if !ok {
		return "unknown"
	}
	return requestID
}
