// Логирование HTTP-запросов и сбор метрик
package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/metrics"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/logger"
)

type ResponseWriter struct {
	http.ResponseWriter
	Status int
	Size   int
}

func (w *ResponseWriter) WriteHeader(Status int) {
	w.Status = Status
	w.ResponseWriter.WriteHeader(Status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.Status == 0 {
		w.Status = http.StatusOK
	}
	Size, err := w.ResponseWriter.Write(b)
	w.Size += Size
	return Size, err
}

// LoggerMiddleware пишет access-лог в loggerHTTP и, если m != nil, метрики запроса.
func LoggerMiddleware(loggerHTTP *logger.HTTPLogger, m metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wr := &ResponseWriter{ResponseWriter: w}
			next.ServeHTTP(wr, r)

			// хендлер ничего не записал
			if wr.Status == 0 {
				wr.Status = http.StatusOK
			}

			elapsed := time.Since(start)
			loggerHTTP.LogRequest(r.Method, r.RequestURI, chimw.GetReqID(r.Context()), wr.Status, wr.Size, elapsed.Seconds()*1000)

			if m != nil {
				route := ""
				if rc := chi.RouteContext(r.Context()); rc != nil {
					route = rc.RoutePattern()
				}
				m.ObserveRequest(r.Method, route, wr.Status, elapsed)
			}
		})
	}
}
