package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 统计 HTTP 请求的耗时和次数，path 用路由模板避免基数爆炸
type MetricsBuilder struct {
	namespace string
	registry  prometheus.Registerer
}

func NewMetricsBuilder() *MetricsBuilder {
	return &MetricsBuilder{
		namespace: "xpecial",
		registry:  prometheus.DefaultRegisterer,
	}
}

// Registerer 测试里面替换成独立的 registry
func (b *MetricsBuilder) Registerer(r prometheus.Registerer) *MetricsBuilder {
	b.registry = r
	return b
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	factory := promauto.With(b.registry)
	labels := []string{"method", "path", "status_code"}
	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: b.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP 请求耗时",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, labels)
	total := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: b.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP 请求次数",
	}, labels)
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			// 没有命中路由
			path = "unknown"
		}
		lvs := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		duration.WithLabelValues(lvs...).Observe(time.Since(start).Seconds())
		total.WithLabelValues(lvs...).Inc()
	}
}
