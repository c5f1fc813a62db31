package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/RoyceAzure/lab/artmarket/internal/api"
	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
	"github.com/RoyceAzure/lab/artmarket/internal/util"
	"github.com/rs/zerolog"
)

// RecoverMiddleware 攔截 handler panic, 記錄堆疊後回應標準錯誤格式
func RecoverMiddleware(logger *zerolog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
		logger = &temp
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}

					logger.Error().
						Str("request_id", util.GetRequestIDFromContext(r.Context())).
						Str("method", r.Method).
						Str("url", r.URL.String()).
						Str("stack", string(debug.Stack())).
						Err(err).
						Msg("panic recovered")

					api.ErrorJSON(w, int(apperr.InternalErrorCode), nil, apperr.ErrStrMap[apperr.InternalErrorCode])
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
