// В этом файле описаны методы клиента для работы
// с эндпоинтами пользователей: регистрация, вход и текущий пользователь.
package api

import "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/models"

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /api/users/register и возвращает id и email.
func (c *Client) Register(username, email, password string) (models.RegisterResponse, error) {
	var resp models.RegisterResponse
	err := c.PostJSON("/api/users/register", models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает access токен.
func (c *Client) Login(email, password string) (models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.PostJSON("/api/users/login", models.LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Current запрашивает пользователя, которому выдан accessToken.
func (c *Client) Current(accessToken string) (models.CurrentUserResponse, error) {
	var resp models.CurrentUserResponse
	err := c.GetJSON("/api/users/current", &resp, accessToken)
	return resp, err
}
