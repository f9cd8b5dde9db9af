// Серверные модели пользователя и контакта
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — зарегистрированный пользователь.
//
// PasswordHash хранит только bcrypt-хэш и никогда не отдаётся наружу.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
