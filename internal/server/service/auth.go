package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/utils"
)

// AuthService реализует регистрацию и вход пользователей.
//
// Ответственность:
//   - регистрация (bcrypt-хэш пароля)
//   - аутентификация (логин)
//   - выпуск access токена
//
// Refresh-токенов и отзыва сессий нет: access токен живёт cfg.Auth.AccessTTL.
type AuthService struct {
	users UsersRepo

	bcryptCost int
	jwt        crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users:      users,
		bcryptCost: cfg.Password.Bcrypt.Cost,
		jwt: crypto.JWTConfig{
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// Register регистрирует нового пользователя.
//
// Ошибки:
//   - ErrInvalidInput если username, email или password пустые,
//     либо пароль длиннее crypto.MaxPasswordBytes
//   - ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if utils.AnyBlank(username, email, password) {
		return models.User{}, errors.WithStack(serr.ErrInvalidInput)
	}

	hash, err := crypto.HashPassword(password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.User{}, errors.WithStack(serr.ErrInvalidInput)
		}
		return models.User{}, errors.Wrap(err, "hash password")
	}
	return s.users.Create(ctx, username, email, hash)
}

// Login аутентифицирует пользователя и выдаёт access токен.
//
// Для "нет такого email" и "не тот пароль" ошибка одна и та же: ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if utils.AnyBlank(email, password) {
		return "", errors.WithStack(serr.ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return "", errors.WithStack(serr.ErrInvalidCredentials)
		}
		return "", err
	}

	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", errors.Wrap(err, "verify password")
	}
	if !ok {
		return "", errors.WithStack(serr.ErrInvalidCredentials)
	}

	access, err := crypto.NewAccessToken(crypto.TokenUser{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, s.jwt)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}
	return access, nil
}
