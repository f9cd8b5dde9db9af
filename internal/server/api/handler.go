// Package api реализует HTTP-обработчики сервера контактов.
//
// Пакет отвечает за:
//   - разбор запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и тело ошибки;
//   - документацию эндпоинтов (swag-аннотации).
//
// Маршруты регистрируются в internal/server/net/http.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	pkgerrors "github.com/pkg/errors"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки JWT и middleware авторизации;
//   - ExposeStack: отдавать ли stackTrace в теле ошибки.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc         *service.Services
	Log         *logger.HTTPLogger
	Verifier    *middleware.JWTVerifier
	ExposeStack bool
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// Если у verifier не задан ErrorWriter, ошибки авторизации будут
// отдаваться через h.WriteError, в том же формате, что и остальные.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier, exposeStack bool) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{
		Svc:         svc,
		Log:         log,
		Verifier:    verifier,
		ExposeStack: exposeStack,
	}
	if verifier != nil && verifier.ErrorWriter == nil {
		verifier.ErrorWriter = h.WriteError
	}
	return h
}

// writeJSON отдаёт v со статусом status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON читает тело запроса в v.
// Превышение лимита тела возвращается как есть (413), остальное — ErrBadJSON.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return pkgerrors.WithStack(err)
		}
		return pkgerrors.WithStack(serr.ErrBadJSON)
	}
	return nil
}

// identity достаёт пользователя, положенного AuthMiddleware.
func identity(r *http.Request) (middleware.Identity, error) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		return middleware.Identity{}, pkgerrors.WithStack(serr.ErrUnauthorized)
	}
	return id, nil
}
