package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tably-app/backoffice-service/internal/service"
)

func newTestUserHandler() *UserHandler {
	return NewUserHandler(service.NewAuthService(nil, service.JWTConfig{Secret: "test-secret", ExpiresIn: 24}))
}

func TestHandleMeRejectsBadCredentials(t *testing.T) {
	h := newTestUserHandler()

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/auth/me", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.HandleMe(rec, r)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestHandleChangePasswordRequiresAuthContext(t *testing.T) {
	h := newTestUserHandler()

	r := httptest.NewRequest("POST", "/auth/password", strings.NewReader(`{"current_password":"old","new_password":"longenough"}`))
	rec := httptest.NewRecorder()
	h.HandleChangePassword(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateUserValidation(t *testing.T) {
	h := newTestUserHandler()

	tests := []struct {
		name string
		body string
	}{
		{"not json", "nope"},
		{"missing fields", `{"email":"ana@tably.app"}`},
		{"unknown role", `{"email":"ana@tably.app","password":"hunter2","name":"Ana","role":"chef"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/users", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.HandleUsers(rec, r)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("wrong method", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/users", nil)
		rec := httptest.NewRecorder()
		h.HandleUsers(rec, r)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
