package api

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
)

// Response 標準回應格式
type Response struct {
	Data any `json:"data,omitempty"`
	Meta any `json:"meta,omitempty"`
}

// ResponseError 標準錯誤回應格式
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func SuccessJSON(w http.ResponseWriter, data any, meta any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Response{
		Data: data,
		Meta: meta,
	})
}

// ErrorJSON 回應錯誤, http status 由錯誤代碼轉換
func ErrorJSON(w http.ResponseWriter, code int, err error, message string) {
	res := ResponseError{
		Code:    code,
		Message: message,
	}
	if err != nil {
		res.Detail = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperr.HTTPStatus(apperr.Code(code)))
	json.NewEncoder(w).Encode(res)
}
