// HTTP-хендлеры регистрации, логина и текущего пользователя
package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/models"
)

// Register обрабатывает регистрацию пользователя.
//
// @Summary      Register user
// @Description  Creates a new user. Password is stored as a bcrypt hash.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body models.RegisterRequest true "Register request"
// @Success      201 {object} models.RegisterResponse
// @Failure      400 {object} models.ErrorResponse "All fields are mandatory or bad JSON"
// @Failure      409 {object} models.ErrorResponse "User already registered"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/users/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.WriteError(w, r, err)
		return
	}

	user, err := h.Svc.Auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.RegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	})
}

// Login обрабатывает вход пользователя и выдачу access токена.
//
// @Summary      Login
// @Description  Checks credentials and returns an access token (HS256, 15 minutes by default).
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body models.LoginRequest true "Login request"
// @Success      200 {object} models.LoginResponse
// @Failure      400 {object} models.ErrorResponse "All fields are mandatory or bad JSON"
// @Failure      401 {object} models.ErrorResponse "Email or password is not valid"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /api/users/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.WriteError(w, r, err)
		return
	}

	token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{AccessToken: token})
}

// Current возвращает пользователя из access токена.
//
// @Summary      Current user
// @Description  Returns the user the bearer token was issued to.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.CurrentUserResponse
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Router       /api/users/current [get]
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CurrentUserResponse{
		ID:       id.ID.String(),
		Username: id.Username,
		Email:    id.Email,
	})
}
