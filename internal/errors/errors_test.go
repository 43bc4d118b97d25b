package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrSessionNotFound)
	assert.Equal(t, ErrSessionNotFound, err.Code)
	assert.Equal(t, "录入会话不存在", err.Message)
	assert.Contains(t, err.Error(), "[2000]")

	// 未登记的错误码回落到未知错误消息
	err = New(ErrorCode(9999))
	assert.Equal(t, "未知错误", err.Message)

	err = New(ErrSessionLimit, "max 64")
	assert.Equal(t, "max 64", err.Details)
	assert.Contains(t, err.Error(), "max 64")
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrUnknown))

	cause := errors.New("disk full")
	err := Wrap(cause, ErrDatabaseInsert)
	require.NotNil(t, err)
	assert.Equal(t, ErrDatabaseInsert, err.Code)
	assert.Equal(t, "disk full", err.Details)
	assert.ErrorIs(t, err, cause)

	// 包装AppError时保留原始错误码
	inner := New(ErrSessionNotFound)
	wrapped := Wrap(inner, ErrUnknown, "查找会话")
	assert.Equal(t, ErrSessionNotFound, wrapped.Code)
	assert.Contains(t, wrapped.Details, "查找会话")
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrTimeout)
	assert.True(t, Is(err, ErrTimeout))
	assert.False(t, Is(err, ErrUnknown))
	assert.False(t, Is(nil, ErrTimeout))

	assert.Equal(t, ErrTimeout, GetCode(err))
	assert.Equal(t, ErrUnknown, GetCode(errors.New("plain")))
	assert.Equal(t, ErrorCode(0), GetCode(nil))
}

func TestWithDetails(t *testing.T) {
	err := New(ErrConfigLoad).WithDetails("config.yaml")
	assert.Equal(t, "config.yaml", err.Details)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code   ErrorCode
		status int
	}{
		{ErrNotFound, 404},
		{ErrSessionNotFound, 404},
		{ErrRecordNotFound, 404},
		{ErrSessionLimit, 400},
		{ErrInvalidParam, 400},
		{ErrPermissionDenied, 403},
		{ErrAuthentication, 401},
		{ErrTokenExpired, 401},
		{ErrDatabaseConnect, 503},
		{ErrUnknown, 500},
		{ErrTimeout, 500},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, New(tt.code).HTTPStatus(), "code %d", tt.code)
	}
}
