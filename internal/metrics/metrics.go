// Package metrics define los collectors Prometheus del probe y del servidor HTTP.
// Los collectors viven en un paquete propio para que email, services y
// middlewares puedan registrar sin ciclos de import.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Probe steps.
const (
	StepVerify = "verify"
	StepSend   = "send"
)

// Probe results.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	ProbeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mailcheck_probe_total",
		Help: "Pasos del probe SMTP por resultado y código de diagnóstico",
	}, []string{"step", "result", "code"})

	ProbeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mailcheck_probe_duration_seconds",
		Help:    "Duración de cada paso del probe SMTP",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"step"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Número total de requests procesadas",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latencia de los requests HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	HTTPInflight = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "http_inflight_requests",
		Help: "Requests en vuelo por método",
	}, []string{"method"})
)

// Register registra todos los collectors en reg y devuelve el handler de /metrics.
// Con reg == nil usa el registry global de prometheus.
func Register(reg *prometheus.Registry) (http.Handler, error) {
	var r prometheus.Registerer = prometheus.DefaultRegisterer
	if reg != nil {
		r = reg
	}

	for _, c := range []prometheus.Collector{
		ProbeTotal, ProbeDuration,
		HTTPRequestsTotal, HTTPRequestDuration, HTTPInflight,
	} {
		if err := registerCollector(r, c); err != nil {
			return nil, err
		}
	}

	if reg == nil {
		return promhttp.Handler(), nil
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

// registerCollector registra el collector ignorando duplicados.
func registerCollector(reg prometheus.Registerer, collector prometheus.Collector) error {
	if err := reg.Register(collector); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return nil
		}
		return err
	}
	return nil
}

// ObserveProbe registra un paso del probe.
func ObserveProbe(step, result, code string, d time.Duration) {
	if code == "" {
		code = "none"
	}
	ProbeTotal.WithLabelValues(step, result, code).Inc()
	ProbeDuration.WithLabelValues(step).Observe(d.Seconds())
}

// ObserveHTTP registra un request terminado. path debe ser un patrón de ruta,
// nunca el path crudo.
func ObserveHTTP(method, path string, status int, d time.Duration) {
	method = strings.ToUpper(method)
	if status == 0 {
		status = http.StatusOK
	}
	HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// TrackInflight incrementa el gauge y devuelve la función que lo decrementa.
func TrackInflight(method string) func() {
	g := HTTPInflight.WithLabelValues(strings.ToUpper(method))
	g.Inc()
	return g.Dec
}
