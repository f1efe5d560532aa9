// Package metrics exposes Prometheus collectors for form activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/km-arc/go-signup/framework/form"
	"github.com/km-arc/go-signup/framework/validation"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "signup").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) { c.Namespace = namespace }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) { c.ConstLabels = labels }
}

// Collector records validation runs, field errors, submissions and live
// sessions. It implements form.Observer.
type Collector struct {
	registry     *prometheus.Registry
	validations  *prometheus.CounterVec
	fieldErrors  *prometheus.CounterVec
	submissions  *prometheus.CounterVec
	liveSessions prometheus.Gauge
}

var _ form.Observer = (*Collector)(nil)

// New registers the collectors.
func New(opts ...Option) *Collector {
	cfg := Config{Namespace: "signup"}
	for _, opt := range opts {
		opt(&cfg)
	}
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "validations_total",
			Help:        "Validation runs by trigger",
			ConstLabels: cfg.ConstLabels,
		}, []string{"trigger"}),

		fieldErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "field_errors_total",
			Help:        "Field errors produced by validation runs",
			ConstLabels: cfg.ConstLabels,
		}, []string{"field", "kind"}),

		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "submissions_total",
			Help:        "Submit attempts by outcome",
			ConstLabels: cfg.ConstLabels,
		}, []string{"outcome"}),

		liveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Name:        "live_sessions",
			Help:        "Open live form sessions",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// Validated records one validation run.
func (c *Collector) Validated(trigger form.Trigger, errs *validation.Errors) {
	c.validations.WithLabelValues(string(trigger)).Inc()
	for _, field := range errs.Fields() {
		c.fieldErrors.WithLabelValues(field, string(errs.Kind(field))).Inc()
	}
}

// Submitted records one submit attempt.
func (c *Collector) Submitted(ok bool) {
	outcome := "rejected"
	if ok {
		outcome = "accepted"
	}
	c.submissions.WithLabelValues(outcome).Inc()
}

// SessionOpened and SessionClosed track live sessions.
func (c *Collector) SessionOpened() { c.liveSessions.Inc() }
func (c *Collector) SessionClosed() { c.liveSessions.Dec() }

// Registry returns the registry holding the collectors.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
