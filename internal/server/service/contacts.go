package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
)

// ContactsService реализует бизнес-логику работы с контактами пользователя.
// Сервис:
//   - валидирует входные данные;
//   - проверяет, что контакт принадлежит вызывающему;
//   - не знает о HTTP и БД напрямую.
type ContactsService struct {
	repo ContactsRepo
}

// NewContactsService создаёт новый ContactsService.
func NewContactsService(repo ContactsRepo) *ContactsService {
	return &ContactsService{repo: repo}
}

// List возвращает все контакты пользователя.
func (s *ContactsService) List(ctx context.Context, userID uuid.UUID) ([]models.Contact, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(serr.ErrUserIDEmpty)
	}
	return s.repo.ListByUser(ctx, userID)
}

// Create создаёт контакт, владельцем становится userID.
//
// Ошибки:
//   - ErrInvalidInput — name, email или phone пустые.
func (s *ContactsService) Create(ctx context.Context, userID uuid.UUID, name, email, phone string) (models.Contact, error) {
	if userID == uuid.Nil {
		return models.Contact{}, errors.WithStack(serr.ErrUserIDEmpty)
	}

	c := models.Contact{
		UserID: userID,
		Name:   strings.TrimSpace(name),
		Email:  strings.TrimSpace(email),
		Phone:  strings.TrimSpace(phone),
	}
	if err := c.Validate(); err != nil {
		return models.Contact{}, errors.WithStack(err)
	}
	return s.repo.Create(ctx, c)
}

// Get возвращает контакт по id.
//
// Ошибки:
//   - ErrContactNotFound — контакта нет;
//   - ErrForbidden — контакт принадлежит другому пользователю.
func (s *ContactsService) Get(ctx context.Context, userID, id uuid.UUID) (models.Contact, error) {
	if userID == uuid.Nil {
		return models.Contact{}, errors.WithStack(serr.ErrUserIDEmpty)
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Contact{}, err
	}
	if !c.OwnedBy(userID) {
		return models.Contact{}, errors.WithStack(serr.ErrForbidden)
	}
	return c, nil
}

// Update частично обновляет контакт: nil-поля patch не трогаются.
// После применения patch контакт снова валидируется, пустое значение даёт ErrInvalidInput.
func (s *ContactsService) Update(ctx context.Context, userID, id uuid.UUID, patch models.ContactPatch) (models.Contact, error) {
	current, err := s.Get(ctx, userID, id)
	if err != nil {
		return models.Contact{}, err
	}

	updated := current.Apply(patch)
	if err := updated.Validate(); err != nil {
		return models.Contact{}, errors.WithStack(err)
	}
	return s.repo.Update(ctx, updated)
}

// Delete удаляет контакт и возвращает его последнее состояние.
func (s *ContactsService) Delete(ctx context.Context, userID, id uuid.UUID) (models.Contact, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return models.Contact{}, err
	}
	return s.repo.Delete(ctx, id, userID)
}
