package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/artmarket/internal/api"
	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
	"github.com/RoyceAzure/lab/artmarket/internal/constants"
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/RoyceAzure/lab/artmarket/internal/token"
)

// AuthMiddleware 驗證ctx是否有token payload
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*token.Payload)
		if !ok {
			api.ErrorJSON(w, int(apperr.UnauthenticatedCode), apperr.New(apperr.UnauthenticatedCode, "unauthenticated"), apperr.ErrStrMap[apperr.UnauthenticatedCode])
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole 限制路由只允許指定角色
func RequireRole(roles ...model.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*token.Payload)
			if !ok {
				api.ErrorJSON(w, int(apperr.UnauthenticatedCode), apperr.New(apperr.UnauthenticatedCode, "unauthenticated"), apperr.ErrStrMap[apperr.UnauthenticatedCode])
				return
			}

			for _, role := range roles {
				if payload.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			api.ErrorJSON(w, int(apperr.UnauthorizedCode), apperr.New(apperr.UnauthorizedCode, "insufficient role"), apperr.ErrStrMap[apperr.UnauthorizedCode])
		})
	}
}
