package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS 跨域资源共享中间件
// 馆藏系统的前端与API不同源,放行所有来源;
// 预检请求(OPTIONS)直接以204应答
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
