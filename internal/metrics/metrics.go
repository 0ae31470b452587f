package metrics

import (
	"errors"
	"strconv"
	"time"

	"goldencitizen-backend/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goldencitizen_http_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "goldencitizen_http_request_duration_seconds",
			Help: "API request duration in seconds",
		},
		[]string{"method", "route"},
	)

	LeadsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goldencitizen_leads_submitted_total",
			Help: "Leads stored through the contact form",
		},
		[]string{"subject"},
	)

	LeadsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goldencitizen_leads_rejected_total",
			Help: "Lead submissions rejected by validation",
		},
		[]string{"field"},
	)

	LeadNotificationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "goldencitizen_lead_notification_failures_total",
			Help: "Stored leads whose downstream notification could not be dispatched",
		},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goldencitizen_store_errors_total",
			Help: "Content store failures by operation",
		},
		[]string{"operation"},
	)
)

// Middleware records request count and latency per route template.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		// Hata handler'ı middleware'den sonra çalışıyor, status'u buradan çıkar
		var fe *fiber.Error
		var ae *apperrors.Error
		switch {
		case errors.As(err, &fe):
			status = fe.Code
		case errors.As(err, &ae):
			status = ae.HTTPStatus()
		case err != nil:
			status = fiber.StatusInternalServerError
		}
		route := c.Route().Path
		HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposes the default registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
