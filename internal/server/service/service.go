// Package service содержит бизнес-логику приложения (контакты + аутентификация).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users    UsersRepo
	Contacts ContactsRepo
	Health   HealthRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth     *AuthService
	Contacts *ContactsService
	Health   *HealthService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (стоимость bcrypt, ключ и время жизни токена).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Users, cfg),
		Contacts: NewContactsService(repos.Contacts),
		Health:   NewHealthService(repos.Health),
	}
}

// HealthRepo — минимально нужное для health-check.
type HealthRepo interface {
	Ping(ctx context.Context) error
}

// UsersRepo — репозиторий пользователей (нужен для register/login).
type UsersRepo interface {
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// ContactsRepo — репозиторий контактов.
// Update и Delete дополнительно фильтруют по владельцу.
type ContactsRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Contact, error)
	Create(ctx context.Context, c models.Contact) (models.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Contact, error)
	Update(ctx context.Context, c models.Contact) (models.Contact, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (models.Contact, error)
}

// HealthService проверяет, что зависимости сервера живы.
type HealthService struct {
	repo HealthRepo
}

func NewHealthService(repo HealthRepo) *HealthService {
	return &HealthService{repo: repo}
}

// Check пингует базу.
func (s *HealthService) Check(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
