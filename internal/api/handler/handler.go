package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/artmarket/internal/api"
	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
	"github.com/RoyceAzure/lab/artmarket/internal/token"
	"github.com/RoyceAzure/lab/artmarket/internal/util"
	"github.com/go-chi/chi/v5"
)

// writeServiceError 依錯誤鏈上的代碼回應, 非 apperr 一律回 500
func writeServiceError(w http.ResponseWriter, err error) {
	if ae, ok := apperr.AsError(err); ok {
		api.ErrorJSON(w, int(ae.Code), ae, apperr.ErrStrMap[ae.Code])
		return
	}
	api.ErrorJSON(w, int(apperr.InternalErrorCode), err, apperr.ErrStrMap[apperr.InternalErrorCode])
}

// mustGetPayload 取得登入者 payload, middleware 已擋掉未登入請求
func mustGetPayload(w http.ResponseWriter, r *http.Request) *token.Payload {
	payload := util.GetTokenPayloadFromContext(r.Context())
	if payload == nil {
		api.ErrorJSON(w, int(apperr.UnauthenticatedCode), apperr.New(apperr.UnauthenticatedCode, "unauthenticated"), apperr.ErrStrMap[apperr.UnauthenticatedCode])
		return nil
	}
	return payload
}

// parseUintParam 解析路徑參數
func parseUintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperr.New(apperr.BadRequestCode, "invalid "+name)
	}
	return uint(id), nil
}
