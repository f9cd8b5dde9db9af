package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	sharedModels "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/models"
	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
)

// Contact — контакт, принадлежащий ровно одному пользователю (UserID).
type Contact struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactPatch — изменяемые поля контакта; nil означает "оставить как есть".
type ContactPatch struct {
	Name  *string
	Email *string
	Phone *string
}

// Validate проверяет обязательные поля контакта.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" ||
		strings.TrimSpace(c.Email) == "" ||
		strings.TrimSpace(c.Phone) == "" {
		return serr.ErrInvalidInput
	}
	return nil
}

// Apply накладывает patch на контакт и возвращает изменённую копию.
// Значения обрезаются по краям так же, как при создании.
func (c Contact) Apply(p ContactPatch) Contact {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		c.Email = strings.TrimSpace(*p.Email)
	}
	if p.Phone != nil {
		c.Phone = strings.TrimSpace(*p.Phone)
	}
	return c
}

// OwnedBy сообщает, принадлежит ли контакт пользователю userID.
func (c Contact) OwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}

// ToAPI переводит контакт в формат HTTP API.
func (c Contact) ToAPI() sharedModels.Contact {
	return sharedModels.Contact{
		ID:        c.ID.String(),
		UserID:    c.UserID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
