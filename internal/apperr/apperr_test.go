package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(InternalErrorCode, "storage failure", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, InternalErrorCode, CodeOf(err))
	require.Contains(t, err.Error(), "storage failure")
	require.Contains(t, err.Error(), "connection refused")
}

func TestCodeOfPlainError(t *testing.T) {
	require.Equal(t, InternalErrorCode, CodeOf(errors.New("boom")))
}

func TestCodeOfWrappedChain(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(NotFoundCode, "user not found"))
	require.Equal(t, NotFoundCode, CodeOf(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{BadRequestCode, http.StatusBadRequest},
		{UnauthenticatedCode, http.StatusUnauthorized},
		{UnauthorizedCode, http.StatusForbidden},
		{NotFoundCode, http.StatusNotFound},
		{ConflictCode, http.StatusConflict},
		{InvalidArgumentCode, http.StatusBadRequest},
		{InternalErrorCode, http.StatusInternalServerError},
		{Code(999), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, HTTPStatus(tt.code))
	}
}
