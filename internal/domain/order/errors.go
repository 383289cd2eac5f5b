package order

import (
	apperrors "github.com/pustakalay/inventory/pkg/errors"
)

// 借阅单领域错误定义
var (
	// ErrOrderNotFound 借阅单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "Order not found")

	// ErrReaderNotFound 读者不存在
	ErrReaderNotFound = apperrors.New(apperrors.ErrCodeReaderNotFound, "Reader not found")

	// ErrInvalidStatusTransition 非法的状态转换
	ErrInvalidStatusTransition = apperrors.New(apperrors.ErrCodeValidation, "Order status does not allow this transition")

	// ErrInvalidStatus 未知的状态值
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "Invalid order status")

	// ErrNoBooks 借阅明细不能为空
	ErrNoBooks = apperrors.New(apperrors.ErrCodeInvalidParams, "Order must contain at least one book")

	// ErrInvalidQuantity 借阅数量必须大于0
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "Quantity must be greater than 0")
)
