package api

import (
	"errors"
	"fmt"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/models"
)

// Заголовки тела ошибки по статусу
var statusTitles = map[int]string{
	http.StatusBadRequest:          "Validation Failed",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusConflict:            "Conflict",
	http.StatusInternalServerError: "Server Error",
}

// TitleForStatus возвращает title ошибки для статуса.
// Для статусов вне таблицы берётся стандартный текст статуса.
func TitleForStatus(status int) string {
	if t, ok := statusTitles[status]; ok {
		return t
	}
	if t := http.StatusText(status); t != "" {
		return t
	}
	return "Error"
}

// StatusFromError переводит доменную ошибку в HTTP-статус.
// Всё, что не распознано, — 500.
func StatusFromError(err error) int {
	var tooLarge *http.MaxBytesError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, serr.ErrInvalidInput), errors.Is(err, serr.ErrBadJSON):
		return http.StatusBadRequest
	case errors.Is(err, serr.ErrInvalidCredentials),
		errors.Is(err, serr.ErrUnauthorized),
		errors.Is(err, serr.ErrTokenExpired),
		errors.Is(err, serr.ErrUserIDEmpty):
		return http.StatusUnauthorized
	case errors.Is(err, serr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serr.ErrNotFound), errors.Is(err, serr.ErrContactNotFound):
		return http.StatusNotFound
	case errors.Is(err, serr.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	case errors.Is(err, serr.ErrAlreadyExists):
		return http.StatusConflict
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// WriteError — единственная точка, где ошибка превращается в HTTP-ответ
// {"title","message","stackTrace"}. Ответ пишется всегда.
//
// Текст 5xx-ошибок наружу отдаётся только при ExposeStack,
// иначе клиент видит "internal error", а подробности уходят в лог.
func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFromError(err)

	body := models.ErrorResponse{
		Title:   TitleForStatus(status),
		Message: err.Error(),
	}

	if status >= http.StatusInternalServerError {
		h.Log.Error("request failed",
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.String("error", fmt.Sprintf("%+v", err)),
		)
		if !h.ExposeStack {
			body.Message = serr.ErrInternal.Error()
		}
	}

	if h.ExposeStack {
		body.StackTrace = fmt.Sprintf("%+v", err)
	}

	writeJSON(w, status, body)
}
