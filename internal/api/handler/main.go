package handler

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"mojorewards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do"
)

type Config struct {
	Container *do.Injector
	Mode      string
	// Registry receives the HTTP and claim metrics. A fresh registry is
	// created when nil.
	Registry *prometheus.Registry
	// Now is the clock used for filters and countdowns, time.Now when nil.
	Now func() time.Time
	// TrustedProxies are the CIDR ranges whose X-Forwarded-For is believed.
	// Empty means the peer address is the client.
	TrustedProxies []string
}

func New(cfg *Config) (http.Handler, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m, err := newMetrics(registry)
	if err != nil {
		return nil, err
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	views, err := newRenderer()
	if err != nil {
		return nil, err
	}

	ipExtractor, err := newIPExtractor(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}

	vs, err := do.InvokeNamed[map[string]string](cfg.Container, "envs")
	if err != nil {
		return nil, err
	}

	r := echo.New()
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == "debug" {
		r.Debug = true
		pprof.Register(r)
	}

	r.JSONSerializer = httpx.SegmentJSONSerializer{}
	r.Renderer = views
	r.IPExtractor = ipExtractor
	r.HTTPErrorHandler = errorHandler(r)
	r.Use(RequestID())
	r.Use(InviteURL(services.InviteURL(vs)))
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}\t${id}\t${method}\t${uri}\t${status}\t${latency_human}\n",
	}))
	r.Use(middleware.Recover())
	r.Use(Monitor(m))

	r.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "🤖")
	})
	r.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	l := groupLeaderboard{cfg.Container, now}
	r.GET("/", l.Show)

	ms := groupMilestone{cfg.Container}
	r.GET("/milestones", ms.Index)

	ch := groupChallenge{cfg.Container, m}
	r.GET("/challenges", ch.Index)
	r.POST("/challenges/:id/claim", ch.Claim)

	fs := groupFreeSpins{cfg.Container, now}
	r.GET("/free-spins", fs.Index)

	rf := groupReferral{cfg.Container}
	r.GET("/referral", rf.Show)

	cd := groupCountdown{now}
	r.GET("/countdown/stream", cd.Stream)

	routesAPIv1 := r.Group("/api/v1")
	{
		routesAPIv1.GET("", Hello)
		routesAPIv1.GET("/countdown", cd.Frame)
		routesAPIv1.GET("/leaderboard", l.Get)
		routesAPIv1.GET("/milestones", ms.Get)
		routesAPIv1.GET("/challenges", ch.Get)
		routesAPIv1.POST("/challenges/:id/claim", ch.ClaimJSON)
		routesAPIv1.GET("/free-spins", fs.Get)
		routesAPIv1.GET("/referral", rf.Get)
	}

	return r, nil
}

func Hello(c echo.Context) error {
	return httpx.RestAbort(c, "hello world", nil)
}

// errorHandler renders the not-found view for unknown pages and leaves every
// other error to echo.
func errorHandler(r *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusNotFound && !isAPIRequest(c) && !c.Response().Committed {
			if err := render(c, http.StatusNotFound, VIEW_NOT_FOUND, "Page Not Found", nil); err == nil {
				return
			}
		}
		r.DefaultHTTPErrorHandler(err, c)
	}
}

// newIPExtractor reads the client address from X-Forwarded-For only when
// trusted proxy ranges are given, otherwise from the connection.
func newIPExtractor(trusted []string) (echo.IPExtractor, error) {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	options := make([]echo.TrustOption, 0, len(trusted))
	for _, cidr := range trusted {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", cidr, err)
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(options...), nil
}
