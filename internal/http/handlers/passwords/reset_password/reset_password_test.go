package resetpassword

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"roleplay/internal/core/domain/user"
	service "roleplay/internal/core/services/reset_password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	return result, nil
}

func TestResetPasswordSuccess(t *testing.T) {
	// Setup ---
	stub := &stubService{}
	handler := New(stub)

	// Exercise ---
	body := `{"token": "test-reset-token", "password": "123456"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reset-password", strings.NewReader(body)))

	// Verify ---
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
	require.NotNil(t, stub.input)
	assert.Equal(t, user.ResetToken("test-reset-token"), stub.input.Token)
	assert.Equal(t, user.RawPassword("123456"), stub.input.NewPassword)
}

func TestResetPasswordValidationErrors(t *testing.T) {
	cases := []struct {
		id   string
		body string
	}{
		{id: "empty body", body: `{}`},
		{id: "missing token", body: `{"password": "123456"}`},
		{id: "missing password", body: `{"token": "test-reset-token"}`},
		{id: "short password", body: `{"token": "test-reset-token", "password": "123"}`},
		{id: "malformed json", body: `{"token": `},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{}
			handler := New(stub)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(
				rec,
				httptest.NewRequest(http.MethodPost, "/reset-password", strings.NewReader(testcase.body)),
			)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assertErrorBody(t, rec, "BAD_REQUEST", 422, "")
			assert.Nil(t, stub.input)
		})
	}
}

func TestResetPasswordTokenNotFound(t *testing.T) {
	stub := &stubService{err: user.ErrResetTokenDoesNotExist}
	handler := New(stub)

	body := `{"token": "unknown-token", "password": "123456"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reset-password", strings.NewReader(body)))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assertErrorBody(t, rec, "BAD_REQUEST", 404, "")
}

func TestResetPasswordTokenExpired(t *testing.T) {
	stub := &stubService{err: user.ErrResetTokenExpired}
	handler := New(stub)

	body := `{"token": "expired-token", "password": "123456"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reset-password", strings.NewReader(body)))

	require.Equal(t, http.StatusGone, rec.Code)
	assertErrorBody(t, rec, "TOKEN_EXPIRED", 410, "token has expired")
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, code string, status int, msg string) {
	t.Helper()
	body := struct {
		Code    string `json:"code"`
		Status  int    `json:"status"`
		Message string `json:"message"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, code, body.Code)
	assert.Equal(t, status, body.Status)
	if msg != "" {
		assert.Equal(t, msg, body.Message)
	}
}
