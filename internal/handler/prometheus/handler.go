package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

type Handler struct {
	gatherer prometheus.Gatherer
	metrics  *metrics.Metrics
}

// New serves the metrics collected by gatherer and records HTTP traffic on m.
func New(gatherer prometheus.Gatherer, m *metrics.Metrics) *Handler {
	return &Handler{
		gatherer: gatherer,
		metrics:  m,
	}
}

// Middleware records latency and outcome per route template.
func (h *Handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := c.Writer.Status()
		code := strconv.Itoa(status)

		h.metrics.RequestDuration.WithLabelValues(method, path, code).Observe(time.Since(start).Seconds())
		h.metrics.RequestTotal.WithLabelValues(method, path, code).Inc()

		switch {
		case status >= 500:
			h.metrics.ErrorTotal.WithLabelValues(method, path, "5xx").Inc()
		case status >= 400:
			h.metrics.ErrorTotal.WithLabelValues(method, path, "4xx").Inc()
		}
	}
}

func (h *Handler) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
}
