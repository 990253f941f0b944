package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mojorewards/internal"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	claims   *prometheus.CounterVec
}

func newMetrics(registry prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		claims: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "claims_submitted_total",
				Help: "Total number of challenge claim submissions by outcome",
			},
			[]string{"outcome"},
		),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration, m.claims} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Monitor records request counts and latencies labelled by route template,
// so ids in the URL do not create new series.
func Monitor(m *metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			path := c.Path()
			if status == http.StatusNotFound || path == "" {
				path = "unmatched"
			}

			method := c.Request().Method
			m.requests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

func isAPIRequest(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/api/")
}

const CONTEXT_KEY_INVITE_URL = "invite_url"

// InviteURL exposes the configured Discord invite to every view.
func InviteURL(url string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(CONTEXT_KEY_INVITE_URL, url)
			return next(c)
		}
	}
}

func inviteURL(c echo.Context) string {
	if url, ok := c.Get(CONTEXT_KEY_INVITE_URL).(string); ok && url != "" {
		return url
	}
	return internal.DISCORD_INVITE_URL
}

// clientKey identifies the caller for rate limiting. The address comes from
// the echo IPExtractor configured in New.
func clientKey(c echo.Context) string {
	return c.RealIP()
}
