package activity

import (
	"context"

	apperrors "github.com/pustakalay/inventory/pkg/errors"
)

// 活动日志领域错误定义
var (
	// ErrNotFound 日志不存在
	ErrNotFound = apperrors.New(apperrors.ErrCodeActivityNotFound, "Activity log not found")

	// ErrActionRequired 操作名称必填
	ErrActionRequired = apperrors.New(apperrors.ErrCodeMissingField, "Action is required")
)

// Repository 活动日志仓储接口
type Repository interface {
	// Create 写入一条日志
	Create(ctx context.Context, l *ActivityLog) error

	// FindByID 根据ID查找日志
	FindByID(ctx context.Context, id uint) (*ActivityLog, error)

	// List 查询全部日志(时间倒序)
	List(ctx context.Context) ([]*ActivityLog, error)

	// ListByOrder 查询某借阅单的日志
	ListByOrder(ctx context.Context, orderID uint) ([]*ActivityLog, error)

	// ListByReader 查询某读者的日志
	ListByReader(ctx context.Context, readerID uint) ([]*ActivityLog, error)

	// Update 更新日志
	Update(ctx context.Context, l *ActivityLog) error

	// Delete 删除日志
	Delete(ctx context.Context, id uint) error
}
