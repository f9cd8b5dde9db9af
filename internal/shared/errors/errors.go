// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки возвращаются service и repository слоями
// и маппятся на HTTP-статусы в api слое (см. api.StatusFromError).
package errors

import "errors"

var (
	// Входные данные невалидны (пустые обязательные поля и т.п.)
	ErrInvalidInput = errors.New("all fields are mandatory")
	// Неверные учётные данные, одинаково для "нет такого email" и "не тот пароль"
	ErrInvalidCredentials = errors.New("email or password is not valid")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Нет токена, токен битый или просрочен
	ErrUnauthorized = errors.New("user is not authorized")
	// Токен просрочен
	ErrTokenExpired = errors.New("token expired")
	// Ресурс принадлежит другому пользователю
	ErrForbidden = errors.New("user don't have permission to access other user contacts")
	// Пользователь с таким email уже зарегистрирован
	ErrAlreadyExists = errors.New("user already registered")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Маршрут есть, но не для этого метода
	ErrMethodNotAllowed = errors.New("method not allowed")
	// ожидаемая ошибка (для тестов)
	ErrExpectedError = errors.New("expected error")
)

// только для контактов
var (
	ErrContactNotFound = errors.New("contact not found")
	ErrUserIDEmpty     = errors.New("user id cannot be empty")
)
