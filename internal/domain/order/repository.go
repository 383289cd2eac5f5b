package order

import (
	"context"
)

// BookStats 单本图书的借阅统计
type BookStats struct {
	BookID      uint  `json:"bookId"`
	TotalOrders int64 `json:"totalOrders"` // 涉及该书的借阅单数
	TotalQty    int64 `json:"totalQty"`    // 累计借出册数
}

// Repository 借阅单仓储接口
// 设计说明:
// 1. Create会在同一事务中写入借阅单与明细(GORM关联写入)
// 2. 列表查询带分页,避免一次性加载全部历史
type Repository interface {
	// Create 创建借阅单(含明细)
	Create(ctx context.Context, o *Order) error

	// FindByID 根据ID查找借阅单(含明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// Update 更新借阅单(主要用于状态流转)
	Update(ctx context.Context, o *Order) error

	// List 分页查询全部借阅单
	List(ctx context.Context, page, limit int) ([]*Order, int64, error)

	// ListByReader 查询某读者的借阅单
	ListByReader(ctx context.Context, readerID uint, page, limit int) ([]*Order, int64, error)

	// StatsByBook 统计某图书的借阅情况
	StatsByBook(ctx context.Context, bookID uint) (*BookStats, error)

	// FindReader 根据ID查找读者
	FindReader(ctx context.Context, id uint) (*Reader, error)

	// CreateReader 创建读者
	CreateReader(ctx context.Context, r *Reader) error
}
