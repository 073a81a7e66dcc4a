package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contadores Prometheus para el subsistema de autenticación y control de acceso.
type Metrics struct {
	loginTotal      *prometheus.CounterVec
	accessDenied    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// Resultados de login usados como label.
const (
	LoginOK       = "ok"
	LoginBadCreds = "bad_credentials"
	LoginLocked   = "locked"
)

// New registra y devuelve las métricas de la aplicación.
// Usa el registro por defecto de Prometheus; promhttp las expone en /metrics.
func New(namespace string) *Metrics {
	m := &Metrics{
		loginTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "login_total",
				Help:      "Total de intentos de login por resultado",
			},
			[]string{"result"},
		),
		accessDenied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "access_denied_total",
				Help:      "Total de peticiones denegadas por el gate de acceso",
			},
			[]string{"reason"}, // schedule, stale_token, forbidden
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duración de las peticiones HTTP",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "status"},
		),
	}
	prometheus.MustRegister(m.loginTotal, m.accessDenied, m.requestDuration)
	return m
}

// RecordLogin registra un intento de login con su resultado.
// Con receiver nil es un no-op, para poder omitir métricas en tests.
func (m *Metrics) RecordLogin(result string) {
	if m == nil {
		return
	}
	m.loginTotal.WithLabelValues(result).Inc()
}

// RecordAccessDenied registra una denegación del gate por petición.
func (m *Metrics) RecordAccessDenied(reason string) {
	if m == nil {
		return
	}
	m.accessDenied.WithLabelValues(reason).Inc()
}

// ObserveRequest registra la duración de una petición HTTP.
func (m *Metrics) ObserveRequest(method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, status).Observe(seconds)
}
