package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	groupSessionJoins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "healing_minds",
			Subsystem: "group_session",
			Name:      "joins_total",
			Help:      "Group session join attempts by outcome.",
		},
		[]string{"result"},
	)

	groupSessionLeaves = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "healing_minds",
			Subsystem: "group_session",
			Name:      "leaves_total",
			Help:      "Participants that left a group session.",
		},
	)

	cartAdds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "healing_minds",
			Subsystem: "cart",
			Name:      "adds_total",
			Help:      "Add-to-cart calls by whether a new line was inserted or merged.",
		},
		[]string{"result"},
	)

	sessionsPruned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "healing_minds",
			Subsystem: "session_store",
			Name:      "pruned_total",
			Help:      "Expired login sessions removed by pruning.",
		},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "healing_minds",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	Registry.MustRegister(
		groupSessionJoins,
		groupSessionLeaves,
		cartAdds,
		sessionsPruned,
		httpDuration,
	)
}

// RecordJoin counts a join attempt. result is one of joined, conflict, full, not_found, error.
func RecordJoin(result string) {
	groupSessionJoins.WithLabelValues(result).Inc()
}

func RecordLeave() {
	groupSessionLeaves.Inc()
}

func RecordCartAdd(merged bool) {
	result := "inserted"
	if merged {
		result = "merged"
	}
	cartAdds.WithLabelValues(result).Inc()
}

func RecordPruned(removed int) {
	sessionsPruned.Add(float64(removed))
}

// Handler exposes the registry for scraping.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}

// Middleware records request durations labelled by route pattern.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			httpDuration.WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}
