// Package metrics expone contadores Prometheus de la aplicación.
// Todos los métodos aceptan receptor nil (métricas deshabilitadas).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "estoque"

// Metrics registro propio (no el global) con los collectors de la app.
type Metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	movements *prometheus.CounterVec
	logins    *prometheus.CounterVec
	products  prometheus.Counter
}

// New crea el registro con métricas de runtime de Go y del proceso.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requests HTTP por método, ruta y status.",
		}, []string{"method", "route", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de requests HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		movements: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movimentacoes_total",
			Help:      "Movimentações de estoque registradas por tipo.",
		}, []string{"tipo"}),
		logins: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Tentativas de login por resultado.",
		}, []string{"result"}),
		products: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "produtos_criados_total",
			Help:      "Produtos cadastrados.",
		}),
	}
}

// Handler exposición en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry registro subyacente (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveRequest cuenta el request y registra su latencia. route es el patrón, no la URL.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// MovementRecorded cuenta una movimentação confirmada.
func (m *Metrics) MovementRecorded(tipo string) {
	if m == nil {
		return
	}
	m.movements.WithLabelValues(tipo).Inc()
}

// LoginAttempt cuenta un intento de login.
func (m *Metrics) LoginAttempt(success bool) {
	if m == nil {
		return
	}
	result := "failure"
	if success {
		result = "success"
	}
	m.logins.WithLabelValues(result).Inc()
}

// ProductCreated cuenta un producto cadastrado.
func (m *Metrics) ProductCreated() {
	if m == nil {
		return
	}
	m.products.Inc()
}
