// Package models содержит модели HTTP API, общие для сервера и CLI-клиента.
//
// Имена JSON-полей (`_id`, `user_id`, `accessToken`, `createdAt`) повторяют
// контракт публичного API, на который уже завязаны клиенты.
package models

import "time"

// Contact — контакт пользователя в том виде, в котором его отдаёт API.
//
// Поля:
//   - ID: уникальный идентификатор контакта (UUID строкой)
//   - UserID: идентификатор владельца
//   - Name/Email/Phone: данные контакта
//   - CreatedAt/UpdatedAt: серверные метки времени
type Contact struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateContactRequest — запрос на создание контакта.
//
// Используется в:
//
//	POST /api/contacts
//
// Все три поля обязательны.
type CreateContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateContactRequest — частичное обновление контакта.
//
// Используется в:
//
//	PUT /api/contacts/{id}
//
// Поля — указатели: nil означает "не менять".
type UpdateContactRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse описывает успешный ответ регистрации: только id и email.
type RegisterResponse struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает успешный ответ входа пользователя.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// CurrentUserResponse — данные пользователя, извлечённые из access-токена.
type CurrentUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ErrorResponse — единый формат ошибки API.
//
// StackTrace заполняется только если на сервере включён errors.expose_stack.
type ErrorResponse struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	StackTrace string `json:"stackTrace,omitempty"`
}
