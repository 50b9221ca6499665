// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the service and handler layers record through.
type Recorder interface {
	RecordRegistration()
	RecordLogin(success bool)
	RecordTokenIssued()
	RecordHTTPStatus(statusCode int)
}

// Collector is the Prometheus-backed Recorder implementation.
type Collector struct {
	registrations prometheus.Counter
	logins        *prometheus.CounterVec
	tokensIssued  prometheus.Counter
	httpStatus    *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "habitly_registrations_total",
			Help: "Total number of successful user registrations",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "habitly_logins_total",
			Help: "Total number of login attempts by outcome",
		}, []string{"outcome"}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "habitly_tokens_issued_total",
			Help: "Total number of session tokens issued",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "habitly_http_status_total",
			Help: "Total number of HTTP responses by status code",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.registrations,
		c.logins,
		c.tokensIssued,
		c.httpStatus,
	)

	return c
}

// RecordRegistration counts a successful registration.
func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordLogin counts a login attempt by outcome.
func (c *Collector) RecordLogin(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	c.logins.WithLabelValues(outcome).Inc()
}

// RecordTokenIssued counts an issued session token.
func (c *Collector) RecordTokenIssued() {
	c.tokensIssued.Inc()
}

// RecordHTTPStatus counts a response status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler returns the HTTP handler Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
