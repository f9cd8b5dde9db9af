// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/metrics"
	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/models"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// identityKey — ключ контекста, под которым хранится Identity аутентифицированного пользователя.
const identityKey ctxKey = "identity"

// Identity — пользователь, извлечённый из access-токена.
type Identity struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// ErrorWriter пишет ошибку в ответ. Обычно это api.Handler.WriteError.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// JWTVerifier инкапсулирует параметры проверки JWT access-токенов.
//
// Используется в HTTP middleware для:
//   - проверки подписи и срока жизни токена (только HS256)
//   - извлечения пользователя из claims
type JWTVerifier struct {
	SigningKey  string           // симметричный ключ для подписи (HS256)
	ErrorWriter ErrorWriter      // куда отдавать 401; nil — короткий JSON
	Metrics     metrics.Recorder // опционально
}

// NewJWTVerifier создаёт JWTVerifier из конфига сервера.
func NewJWTVerifier(cfg *config.Config) *JWTVerifier {
	return &JWTVerifier{SigningKey: cfg.Auth.JWT.SigningKey}
}

// IdentityFromContext извлекает пользователя из контекста.
//
// Возвращает:
//   - Identity
//   - false, если запрос не прошёл через AuthMiddleware
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// WithIdentity кладёт пользователя в контекст.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// AuthMiddleware возвращает HTTP middleware для проверки JWT access-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и срок жизни токена
//   - сохраняет Identity в context.Context
//
// В случае ошибки отвечает 401 и next не вызывает.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				v.fail(w, r, "missing", serr.ErrUnauthorized)
				return
			}

			claims, err := crypto.ParseAccessToken(tokenStr, v.SigningKey)
			if err != nil {
				if errors.Is(err, crypto.ErrTokenExpired) {
					v.fail(w, r, "expired", serr.ErrTokenExpired)
					return
				}
				v.fail(w, r, "invalid", serr.ErrUnauthorized)
				return
			}

			userID, err := uuid.Parse(claims.User.ID)
			if err != nil {
				v.fail(w, r, "invalid", serr.ErrUnauthorized)
				return
			}

			ctx := WithIdentity(r.Context(), Identity{
				ID:       userID,
				Username: claims.User.Username,
				Email:    claims.User.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (v *JWTVerifier) fail(w http.ResponseWriter, r *http.Request, reason string, err error) {
	if v.Metrics != nil {
		v.Metrics.RecordAuthFailure(reason)
	}
	if v.ErrorWriter != nil {
		v.ErrorWriter(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(sharedModels.ErrorResponse{
		Title:   http.StatusText(http.StatusUnauthorized),
		Message: err.Error(),
	})
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат (префикс с учётом регистра):
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}
