package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/models"
)

const testKey = "supersecretkeysupersecretkey123456"

func newVerifier() *middleware.JWTVerifier {
	return middleware.NewJWTVerifier(&config.Config{
		Auth: config.AuthConfig{JWT: config.JWTConfig{SigningKey: testKey}},
	})
}

// Вспомогательная функция для JWT
func makeToken(t *testing.T, key string, user crypto.TokenUser, exp time.Time) string {
	t.Helper()

	claims := crypto.AccessClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

type authFailures struct {
	reasons []string
}

func (a *authFailures) ObserveRequest(string, string, int, time.Duration) {}
func (a *authFailures) RecordAuthFailure(reason string)                   { a.reasons = append(a.reasons, reason) }

// Успех
func TestAuthMiddleware_OK(t *testing.T) {
	v := newVerifier()

	userID := uuid.New()
	token := makeToken(t, testKey, crypto.TokenUser{
		ID: userID.String(), Username: "alice", Email: "alice@x.com",
	}, time.Now().Add(time.Minute))

	called := false
	handler := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true

		id, ok := middleware.IdentityFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, userID, id.ID)
		require.Equal(t, "alice", id.Username)
		require.Equal(t, "alice@x.com", id.Email)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.True(t, called)
	require.Equal(t, http.StatusOK, rr.Code)
}

// Ошибки: next не вызывается, ответ 401 в JSON
func TestAuthMiddleware_Rejects(t *testing.T) {
	good := crypto.TokenUser{ID: uuid.New().String(), Username: "alice", Email: "alice@x.com"}

	tests := []struct {
		name   string
		header string
		reason string
	}{
		{"no header", "", "missing"},
		{"no bearer prefix", makeToken(t, testKey, good, time.Now().Add(time.Minute)), "missing"},
		{"lowercase prefix", "bearer " + makeToken(t, testKey, good, time.Now().Add(time.Minute)), "missing"},
		{"empty token", "Bearer ", "missing"},
		{"expired", "Bearer " + makeToken(t, testKey, good, time.Now().Add(-time.Minute)), "expired"},
		{"wrong secret", "Bearer " + makeToken(t, "another-secret-another-secret-123", good, time.Now().Add(time.Minute)), "invalid"},
		{"garbage", "Bearer not.a.jwt", "invalid"},
		{"id is not uuid", "Bearer " + makeToken(t, testKey, crypto.TokenUser{ID: "42"}, time.Now().Add(time.Minute)), "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVerifier()
			rec := &authFailures{}
			v.Metrics = rec

			handler := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next must not be called")
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, http.StatusUnauthorized, rr.Code)
			require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body sharedModels.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			require.Equal(t, "Unauthorized", body.Title)
			require.Equal(t, []string{tt.reason}, rec.reasons)
		})
	}
}

// Ошибка уходит в подключённый ErrorWriter
func TestAuthMiddleware_CustomErrorWriter(t *testing.T) {
	v := newVerifier()

	var got error
	v.ErrorWriter = func(w http.ResponseWriter, r *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusTeapot)
	}

	token := makeToken(t, testKey, crypto.TokenUser{ID: uuid.New().String()}, time.Now().Add(-time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	v.AuthMiddleware()(http.NotFoundHandler()).ServeHTTP(rr, req)

	require.Equal(t, http.StatusTeapot, rr.Code)
	require.ErrorIs(t, got, serr.ErrTokenExpired)
}

func TestIdentityFromContext_Missing(t *testing.T) {
	_, ok := middleware.IdentityFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	require.False(t, ok)
}

func TestExtractBearer(t *testing.T) {
	require.Equal(t, "abc", middleware.ExtractBearer("Bearer abc"))
	require.Equal(t, "", middleware.ExtractBearer("Basic abc"))
	require.Equal(t, "", middleware.ExtractBearer("Bearer"))
	require.Equal(t, "", middleware.ExtractBearer(""))
}
