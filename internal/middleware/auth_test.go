package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tably-app/backoffice-service/internal/models"
	"github.com/tably-app/backoffice-service/internal/service"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID uuid.UUID, role models.UserRole) string {
	t.Helper()

	claims := &service.Claims{
		UserID: userID.String(),
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAuthPopulatesContext(t *testing.T) {
	svc := service.NewAuthService(nil, service.JWTConfig{Secret: testSecret, ExpiresIn: 24})
	userID := uuid.New()

	var gotID string
	var gotRole models.UserRole
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		gotID, ok = GetUserID(r.Context())
		require.True(t, ok)
		gotRole, ok = GetUserRole(r.Context())
		require.True(t, ok)
	})

	req := httptest.NewRequest("GET", "/menu", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID, models.RoleManager))
	rec := httptest.NewRecorder()
	Auth(svc)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), gotID)
	assert.Equal(t, models.RoleManager, gotRole)
}

func TestAuthRejectsMissingOrBadHeader(t *testing.T) {
	svc := service.NewAuthService(nil, service.JWTConfig{Secret: testSecret, ExpiresIn: 24})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a valid token")
	})

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
			req := httptest.NewRequest("GET", "/menu", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			Auth(svc)(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRequireRole(t *testing.T) {
	svc := service.NewAuthService(nil, service.JWTConfig{Secret: testSecret, ExpiresIn: 24})
	chain := func(roles ...models.UserRole) http.Handler {
		return Auth(svc)(RequireRole(roles...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))
	}

	t.Run("matching role passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/clients", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New(), models.RoleSuperadmin))
		rec := httptest.NewRecorder()
		chain(models.RoleSuperadmin).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/clients", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New(), models.RoleWaiter))
		rec := httptest.NewRecorder()
		chain(models.RoleSuperadmin).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
