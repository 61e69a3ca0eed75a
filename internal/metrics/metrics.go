package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	// Request duration histogram with method, endpoint, and status labels
	RequestDuration *prometheus.HistogramVec
	// Login attempts counter
	LoginAttempts *prometheus.CounterVec
	// Reactions counter with kind label
	Reactions *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "request_duration_seconds",
			Help: "Duration of HTTP requests in seconds."},
			[]string{"method", "endpoint", "status"},
		),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts.",
		},
			[]string{"status"},
		),
		Reactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "post_reactions_total",
			Help: "Total number of post reaction toggles.",
		},
			[]string{"kind"},
		),
	}
	reg.MustRegister(m.RequestDuration, m.LoginAttempts, m.Reactions)
	return m
}

// Middleware records the duration and status of every request.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
