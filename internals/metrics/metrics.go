// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	settlementSteps *prometheus.CounterVec
}

// New membuat registry sendiri supaya test bisa membuat instance berulang.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "craftedshots",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "craftedshots",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		settlementSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "craftedshots",
			Name:      "payment_settlement_steps_total",
			Help:      "Payment settlement steps by step and outcome.",
		}, []string{"step", "outcome"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.latency,
		m.settlementSteps,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware memakai route pattern (bukan path asli) sebagai label.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		route := c.Route().Path
		m.requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.latency.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// SettlementStep dipanggil untuk tiap langkah settlement (insert, seats, selection).
func (m *Metrics) SettlementStep(step string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	m.settlementSteps.WithLabelValues(step, outcome).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
