package middleware

import (
	"net/http"
	"os"

	"github.com/RoyceAzure/lab/artmarket/internal/util"
	"github.com/rs/zerolog"
)

type StatusRecoder struct {
	http.ResponseWriter
	status int
}

func (w *StatusRecoder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecoder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// LoggerMiddleware 記錄request 請求
func LoggerMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	// fallback 只建一次, 請求處理期間不再改動 logger
	if logger == nil {
		temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
		logger = &temp
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recoder := &StatusRecoder{
				ResponseWriter: w,
			}
			next.ServeHTTP(recoder, r)

			ctx := r.Context()
			event := logger.Info().
				Str("request_id", util.GetRequestIDFromContext(ctx)).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", recoder.Status())

			if payload := util.GetTokenPayloadFromContext(ctx); payload != nil {
				event = event.
					Uint("user_id", payload.UserID).
					Str("role", string(payload.Role))
			}

			event.Msg("request completed")
		})
	}
}
