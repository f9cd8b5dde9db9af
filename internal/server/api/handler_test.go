package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-contacts-api/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/models"
)

const testSigningKey = "supersecretkeysupersecretkey123456"

type testDeps struct {
	users    *svcmocks.MockUsersRepo
	contacts *svcmocks.MockContactsRepo
	health   *svcmocks.MockHealthRepo
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			AccessTTL: 15 * time.Minute,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: testSigningKey,
			},
		},
		Password: config.PasswordConfig{Bcrypt: config.BcryptConfig{Cost: 4}},
	}
}

// NewTestHandler создаёт Handler с моками и конфигом через dependency injection
func newTestHandler(t *testing.T) (*api.Handler, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		users:    svcmocks.NewMockUsersRepo(ctrl),
		contacts: svcmocks.NewMockContactsRepo(ctrl),
		health:   svcmocks.NewMockHealthRepo(ctrl),
	}

	cfg := testConfig()
	svc := service.NewServices(service.Repositories{
		Users:    deps.users,
		Contacts: deps.contacts,
		Health:   deps.health,
	}, cfg)

	h := api.NewHandler(svc, logger.Nop(), middleware.NewJWTVerifier(cfg), true)
	return h, deps
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// withIdentity имитирует прохождение AuthMiddleware
func withIdentity(req *http.Request, id middleware.Identity) *http.Request {
	return req.WithContext(middleware.WithIdentity(req.Context(), id))
}

// withURLParam имитирует chi-маршрут с {id}
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	require.Equal(t, api.JsonContentType, rr.Header().Get(api.ContentType))

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}
