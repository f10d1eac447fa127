package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector agrupa las métricas Prometheus del servicio.
type Collector struct {
	registry    *prometheus.Registry
	authTotal   *prometheus.CounterVec
	verifyTotal *prometheus.CounterVec
	httpLatency *prometheus.HistogramVec
}

// NewCollector registra las métricas en un registry propio y lo devuelve
// listo para exponer.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		authTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Resultados de autenticacion por tipo.",
		}, []string{"result"}),
		verifyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "session_verify_total",
			Help: "Resultados de verificacion de sesion.",
		}, []string{"result"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latencia de requests HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	registry.MustRegister(c.authTotal, c.verifyTotal, c.httpLatency)
	return c
}

// RecordAuthResult cuenta un intento de autenticacion por resultado
// ("success", "invalid_token", "provider_error", "storage_error").
func (c *Collector) RecordAuthResult(result string) {
	c.authTotal.WithLabelValues(result).Inc()
}

// RecordVerifyResult cuenta una verificacion de sesion.
func (c *Collector) RecordVerifyResult(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	c.verifyTotal.WithLabelValues(result).Inc()
}

// RecordRequest observa la latencia de un request HTTP terminado.
func (c *Collector) RecordRequest(method, path string, status int, d time.Duration) {
	c.httpLatency.WithLabelValues(method, path, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler expone las métricas registradas en formato Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
