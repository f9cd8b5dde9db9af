// Package http реализует маршрутизацию HTTP-слоя сервера контактов.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - общие middleware: request id, логирование, метрики, recover, CORS, лимит тела;
//   - подключение проверки JWT для защищённых маршрутов.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/metrics"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/middleware"
)

// Options — необязательные части роутера.
// Нулевое значение даёт роутер только с API-маршрутами.
type Options struct {
	Config   *config.Config      // CORS, лимит тела, пути метрик и swagger
	Metrics  *metrics.Collector  // nil — метрики запросов не пишутся
	Gatherer prometheus.Gatherer // откуда отдавать /metrics
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты /api/users/register и /api/users/login;
//   - /api/users/current и группу /api/contacts за AuthMiddleware;
//   - /health, а также /metrics и /swagger/* если они включены в конфиге.
func NewRouter(h *api.Handler, opts Options) http.Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	r := chi.NewRouter()

	// CORS должен стоять первым, чтобы preflight не упирался в авторизацию
	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders: []string{"Content-Length"},
			MaxAge:         cfg.CORS.MaxAge,
		}))
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	// логирование всех запросов
	var recorder metrics.Recorder
	if opts.Metrics != nil {
		recorder = opts.Metrics
		h.Verifier.Metrics = opts.Metrics
	}
	r.Use(middleware.LoggerMiddleware(h.Log, recorder))
	r.Use(chimw.Recoverer)
	if cfg.Server.MaxBodyBytes > 0 {
		r.Use(chimw.RequestSize(cfg.Server.MaxBodyBytes))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.WriteError(w, r, errNoRoute)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.WriteError(w, r, errMethodNotAllowed)
	})

	r.Get("/health", h.Health)

	if cfg.Observability.Metrics.Enabled && opts.Gatherer != nil {
		r.Handle(cfg.Observability.Metrics.Path, metrics.Handler(opts.Gatherer))
	}
	// добавляем swagger
	if cfg.Observability.Swagger.Enabled {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route("/api", func(r chi.Router) {
		// Публичные пути
		r.Post("/users/register", h.Register)
		r.Post("/users/login", h.Login)

		// защищённые пути
		r.Group(func(r chi.Router) {
			// проверка access токена
			r.Use(h.Verifier.AuthMiddleware())

			r.Get("/users/current", h.Current)

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", h.ListContacts)
				r.Post("/", h.CreateContact)
				r.Get("/{id}", h.GetContact)
				r.Put("/{id}", h.UpdateContact)
				r.Delete("/{id}", h.DeleteContact)
			})
		})
	})

	return r
}
