package middleware

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/artmarket/internal/constants"
	"github.com/google/uuid"
)

// RequestIdMiddleware 沿用上游帶入的 request_id, 沒有就產生一個
func RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get("request_id")
		if requestId == "" {
			requestId = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), constants.RequestIDKey, requestId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
