// Package metrics собирает Prometheus-метрики HTTP-сервера и отдаёт их на /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder — то, что нужно middleware от сборщика метрик.
type Recorder interface {
	ObserveRequest(method, route string, status int, d time.Duration)
	RecordAuthFailure(reason string)
}

// Collector — реализация Recorder поверх prometheus.
type Collector struct {
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	authFailures *prometheus.CounterVec
}

// NewCollector создаёт Collector и регистрирует метрики в reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contacts_http_requests_total",
			Help: "Количество HTTP-запросов по методу, маршруту и статусу",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contacts_http_request_duration_seconds",
			Help:    "Время обработки HTTP-запроса (секунды)",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contacts_auth_failures_total",
			Help: "Отклонённые bearer-токены по причине",
		}, []string{"reason"}),
	}

	reg.MustRegister(c.requests, c.latency, c.authFailures)
	return c
}

// ObserveRequest учитывает завершённый запрос.
// route — шаблон маршрута chi (/api/contacts/{id}), а не сырой путь.
func (c *Collector) ObserveRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordAuthFailure учитывает отклонённый токен (missing|expired|invalid).
func (c *Collector) RecordAuthFailure(reason string) {
	c.authFailures.WithLabelValues(reason).Inc()
}

// Handler отдаёт метрики из gatherer в формате Prometheus.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
