package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于区分错误类别，前三位对应HTTP状态（404xx/400xx/500xx）
// 2. Message直接作为HTTP响应中的error字段返回给客户端
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 返回给客户端的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误）
// 用途：将底层错误转换为业务错误，原始错误保留在Err中供日志使用
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 404xx: 资源不存在（NotFound）
// - 400xx: 请求参数/业务校验失败（ValidationError）
// - 500xx: 服务端错误（PersistenceError等）

const (
	// 系统级错误码
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误

	// 资源错误
	ErrCodeNotFound         = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound     = 40401 // 图书不存在
	ErrCodeImageNotFound    = 40402 // 封面图不存在
	ErrCodeOrderNotFound    = 40403 // 订单不存在
	ErrCodeActivityNotFound = 40404 // 活动日志不存在
	ErrCodeReaderNotFound   = 40405 // 读者不存在

	// 校验错误
	ErrCodeValidation    = 40000 // 校验失败(通用)
	ErrCodeInvalidParams = 40001 // 参数错误
	ErrCodeNotAnArray    = 40002 // 批量接口输入不是数组
	ErrCodeMissingField  = 40003 // 缺少必填字段
	ErrCodeDuplicateCode = 40004 // bookCode重复
)

// ErrInvalidParams 通用参数错误(路径ID非法等)
// 各领域自己的哨兵错误定义在对应的domain包里,这里只保留跨领域通用的
var ErrInvalidParams = New(ErrCodeInvalidParams, "Invalid parameters")

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装后返回）
// 包装时保留原始错误信息作为Message，对应原系统"500 + 原始错误消息"的行为
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, err.Error())
}

// HTTPStatus 根据错误码推导HTTP状态码
// 约定：错误码前三位即HTTP状态（40401 → 404）
func (e *AppError) HTTPStatus() int {
	switch {
	case e.Code >= 50000:
		return 500
	case e.Code >= 40400 && e.Code < 40500:
		return 404
	case e.Code >= 40000 && e.Code < 40100:
		return 400
	default:
		return 500
	}
}
