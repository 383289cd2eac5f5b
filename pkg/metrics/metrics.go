// Package metrics 提供基于Prometheus的指标收集
//
// 指标命名规范：
// - Counter以`_total`结尾（http_requests_total、books_ingested_total）
// - Histogram以单位结尾（http_request_duration_seconds）
// - 标签只使用低基数维度（method、path、status），禁止使用记录ID
//
// 使用方式：
//
//	metrics.InitMetrics()
//	r.Use(metrics.GinMiddleware())
//	r.GET("/metrics", gin.WrapH(metrics.Handler()))
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/404/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时分布（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// BooksIngestedTotal 批量导入成功的图书总数（Counter）
	BooksIngestedTotal prometheus.Counter

	// BooksIngestFailedTotal 批量导入失败的条目总数（Counter）
	BooksIngestFailedTotal prometheus.Counter

	// BulkIngestDuration 批量导入耗时（Histogram）
	BulkIngestDuration prometheus.Histogram
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，注册所有指标到默认Registry
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "Number of HTTP requests currently being served",
		},
	)

	BooksIngestedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_ingested_total",
			Help: "Total number of books created through bulk ingestion",
		},
	)

	BooksIngestFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_ingest_failed_total",
			Help: "Total number of bulk ingestion items that failed",
		},
	)

	BulkIngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bulk_ingest_duration_seconds",
			Help:    "Bulk ingestion request duration",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 30},
		},
	)
}

// Handler 返回/metrics端点的HTTP处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

// GinMiddleware HTTP指标采集中间件
// 说明：path使用c.FullPath()（路由模板，如/api/books/:id），
// 避免将具体ID作为标签造成高基数问题
// 未调用InitMetrics时退化为空中间件（测试环境不挂Registry）
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !initialized {
			c.Next()
			return
		}
		start := time.Now()

		HTTPRequestsInProgress.Inc()
		c.Next()
		HTTPRequestsInProgress.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched" // 404等未命中路由的请求
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
