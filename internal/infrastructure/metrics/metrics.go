// Package metrics expone las métricas Prometheus de la API.
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

// Metrics agrupa los colectores con un registro propio (uno por instancia de la app).
type Metrics struct {
	reg *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	signups  *prometheus.CounterVec
	logins   *prometheus.CounterVec
}

// New registra los colectores bajo el namespace indicado (puede ser vacío).
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de peticiones HTTP",
		}, []string{"method", "path", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		signups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signups_total",
			Help:      "Cuentas registradas por rol",
		}, []string{"role"}),
		logins: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Intentos de login por resultado",
		}, []string{"result"}),
	}
}

// ObserveRequest registra una petición. path debe ser la ruta registrada, no la URL.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Signup implementa auth.Observer.
func (m *Metrics) Signup(role string) {
	m.signups.WithLabelValues(role).Inc()
}

// Login implementa auth.Observer.
func (m *Metrics) Login(ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	m.logins.WithLabelValues(result).Inc()
}

// Handler sirve el registro en formato de exposición.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Registry acceso al registro subyacente.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}
