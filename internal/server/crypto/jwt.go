// Package crypto содержит криптографические примитивы сервера:
//   - генерацию и проверку JWT access-токенов (HS256);
//   - хэширование паролей (bcrypt).
package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig описывает параметры генерации и проверки access-токена.
type JWTConfig struct {
	// SigningKey — секретный ключ для подписи токена (HS256).
	SigningKey string
	// AccessTTL — срок жизни access-токена (по умолчанию 15 минут).
	AccessTTL time.Duration
}

// TokenUser — данные пользователя, зашитые в токен.
type TokenUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AccessClaims — claims access-токена: объект user плюс стандартные поля.
//
// Формат payload: {"user":{"username","email","id"}}.
type AccessClaims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

var (
	// ErrTokenInvalid — подпись не сошлась, алгоритм не тот или токен битый.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired — срок жизни токена истёк.
	ErrTokenExpired = errors.New("token expired")
)

// NewAccessToken создаёт и подписывает JWT access-токен для пользователя.
//
// Помимо user в токене есть sub (id пользователя), iat и exp.
func NewAccessToken(user TokenUser, cfg JWTConfig) (string, error) {
	return newAccessTokenAt(user, cfg, time.Now())
}

func newAccessTokenAt(user TokenUser, cfg JWTConfig, now time.Time) (string, error) {
	claims := AccessClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseAccessToken проверяет подпись и срок жизни токена и возвращает claims.
//
// Принимается только HS256. Ошибки сводятся к ErrTokenExpired / ErrTokenInvalid.
func ParseAccessToken(tokenStr, signingKey string) (*AccessClaims, error) {
	claims := &AccessClaims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	)
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(signingKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims.User.ID == "" {
		claims.User.ID = claims.Subject
	}
	if claims.User.ID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
