package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"auth-service/internal/service"

	"github.com/stretchr/testify/require"
)

// TestToHTTP_Table — маппинг доменных ошибок в HTTP-статусы и коды.
func TestToHTTP_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "nil_is_internal", err: nil, wantStatus: http.StatusInternalServerError, wantCode: "internal"},
		{name: "empty_credentials", err: service.ErrEmptyCredentials, wantStatus: http.StatusBadRequest, wantCode: "invalid_argument"},
		{name: "login_taken", err: service.ErrLoginTaken, wantStatus: http.StatusBadRequest, wantCode: "login_taken"},
		{name: "unknown_login", err: service.ErrUnknownLogin, wantStatus: http.StatusForbidden, wantCode: "invalid_credentials"},
		{name: "wrong_password", err: service.ErrWrongPassword, wantStatus: http.StatusForbidden, wantCode: "invalid_credentials"},
		{name: "invalid_token", err: service.ErrInvalidToken, wantStatus: http.StatusForbidden, wantCode: "invalid_token"},
		{name: "wrapped_sentinel", err: fmt.Errorf("service.auth.LoginUser: %w", service.ErrWrongPassword), wantStatus: http.StatusForbidden, wantCode: "invalid_credentials"},
		{name: "unknown_error", err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantCode: "internal"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, resp := ToHTTP(tt.err)
			require.Equal(t, tt.wantStatus, status)
			require.Equal(t, tt.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

// TestLoginEnumeration_SameResponse — неизвестный логин и неверный пароль
// наружу неразличимы: один статус, одно тело.
func TestLoginEnumeration_SameResponse(t *testing.T) {
	t.Parallel()

	stUnknown, respUnknown := ToHTTP(service.ErrUnknownLogin)
	stWrong, respWrong := ToHTTP(service.ErrWrongPassword)

	require.Equal(t, stUnknown, stWrong)
	require.Equal(t, respUnknown, respWrong)
}

// TestWriteError_PropagatesRequestID — request_id из заголовка попадает в тело.
func TestWriteError_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/auth", nil)
	r.Header.Set("X-Request-Id", "rid-123")
	w := httptest.NewRecorder()

	WriteError(w, r, service.ErrWrongPassword)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "rid-123", resp.Error.RequestID)
	require.Equal(t, "invalid_credentials", resp.Error.Code)
}

// TestWriteMalformed_And_WriteInternal — вспомогательные ответы.
func TestWriteMalformed_And_WriteInternal(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/registrate", nil)

	w := httptest.NewRecorder()
	WriteMalformed(w, r)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "malformed_request", resp.Error.Code)

	w = httptest.NewRecorder()
	WriteInternal(w, r)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "internal", resp.Error.Code)
}
