package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pustakalay/inventory/pkg/errors"
)

// 响应形状约定：
// 1. 成功时直接返回业务数据，
//    失败时返回 {"error": message}，删除类操作返回 {"message": ...}
// 2. HTTP状态码承载错误类别（200/201/400/404/500）

// OK 200响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应（创建成功）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 返回 {"message": ...}（用于删除等无实体返回的操作）
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	book, err := uc.Execute(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误只进日志，不暴露给客户端
	// 带上回传客户端的请求ID（Logger中间件写入），方便与访问日志关联
	if appErr.Err != nil {
		log.Printf("[ERROR] [%s] %s %s: %v",
			c.Writer.Header().Get("X-Request-ID"),
			c.Request.Method, c.Request.URL.Path, appErr.Err)
	}

	c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
}

// =========================================
// 分页响应结构
// =========================================

// Pagination 分页元信息
type Pagination struct {
	Total      int64 `json:"total"`      // 总记录数（与分页无关）
	Page       int   `json:"page"`       // 当前页码
	Limit      int   `json:"limit"`      // 每页大小
	TotalPages int   `json:"totalPages"` // 总页数 = ceil(total/limit)
}

// NewPagination 创建分页元信息
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
