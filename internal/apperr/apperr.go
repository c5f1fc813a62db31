package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code 錯誤代碼
type Code int

const (
	BadRequestCode      Code = 400
	UnauthenticatedCode Code = 401
	UnauthorizedCode    Code = 403
	NotFoundCode        Code = 404
	ConflictCode        Code = 409
	InvalidArgumentCode Code = 460
	InternalErrorCode   Code = 500
)

var ErrStrMap = map[Code]string{
	BadRequestCode:      "bad request",
	UnauthenticatedCode: "unauthenticated",
	UnauthorizedCode:    "unauthorized",
	NotFoundCode:        "not found",
	ConflictCode:        "conflict",
	InvalidArgumentCode: "invalid argument",
	InternalErrorCode:   "internal server error",
}

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap 包裝底層錯誤並附加錯誤代碼
func Wrap(code Code, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// AsError 取出錯誤鏈上的 *Error
func AsError(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// CodeOf 取得錯誤代碼, 非 *Error 一律視為內部錯誤
func CodeOf(err error) Code {
	if ae, ok := AsError(err); ok {
		return ae.Code
	}
	return InternalErrorCode
}

// HTTPStatus 將錯誤代碼轉換成 http status code
func HTTPStatus(code Code) int {
	switch code {
	case InvalidArgumentCode:
		return http.StatusBadRequest
	case BadRequestCode, UnauthenticatedCode, UnauthorizedCode, NotFoundCode, ConflictCode:
		return int(code)
	default:
		return http.StatusInternalServerError
	}
}
