package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger 请求日志中间件
// 设计说明:
// 1. 每个请求分配唯一请求ID,通过X-Request-ID头回传,
//    错误日志(response.Error)用同一个ID做关联
// 2. 记录方法、路径、状态码、耗时与客户端IP
// 3. 超过3秒的请求额外输出慢请求警告
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Request-ID", uuid.New().String())

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		var errMsg string
		if len(c.Errors) > 0 {
			errMsg = c.Errors.String()
		}

		statusColor := statusColor(c.Writer.Status())
		resetColor := "\033[0m"

		fmt.Printf(
			statusColor+"[HTTP] %s | %3d | %13v | %15s | %-7s %s"+resetColor+" %s\n",
			time.Now().Format("2006/01/02 - 15:04:05"),
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			c.Request.Method,
			c.Request.URL.Path,
			errMsg,
		)

		if latency > 3*time.Second {
			fmt.Printf("[WARN] Slow request: %s %s took %v\n",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}

// statusColor 按状态码选择终端颜色
func statusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "\033[32m"
	case status >= 300 && status < 400:
		return "\033[36m"
	case status >= 400 && status < 500:
		return "\033[33m"
	default:
		return "\033[31m"
	}
}
