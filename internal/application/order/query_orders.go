package order

import (
	"context"

	"github.com/pustakalay/inventory/internal/domain/order"
)

// GetOrderUseCase 借阅单详情用例
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 根据ID获取借阅单(含明细)
func (uc *GetOrderUseCase) Execute(ctx context.Context, id uint) (*order.Order, error) {
	return uc.orderRepo.FindByID(ctx, id)
}

// ListOrdersUseCase 借阅单列表用例
// readerID为0时查询全部,否则只查该读者
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// Execute 分页查询
func (uc *ListOrdersUseCase) Execute(ctx context.Context, readerID uint, page, limit int) ([]*order.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	if readerID > 0 {
		return uc.orderRepo.ListByReader(ctx, readerID, page, limit)
	}
	return uc.orderRepo.List(ctx, page, limit)
}

// BookStatsUseCase 图书借阅统计用例
type BookStatsUseCase struct {
	orderRepo order.Repository
}

// NewBookStatsUseCase 创建用例
func NewBookStatsUseCase(orderRepo order.Repository) *BookStatsUseCase {
	return &BookStatsUseCase{orderRepo: orderRepo}
}

// Execute 统计某图书的借阅单数与累计册数
func (uc *BookStatsUseCase) Execute(ctx context.Context, bookID uint) (*order.BookStats, error) {
	return uc.orderRepo.StatsByBook(ctx, bookID)
}

// CreateReaderUseCase 创建读者用例
type CreateReaderUseCase struct {
	orderRepo order.Repository
}

// NewCreateReaderUseCase 创建用例
func NewCreateReaderUseCase(orderRepo order.Repository) *CreateReaderUseCase {
	return &CreateReaderUseCase{orderRepo: orderRepo}
}

// Execute 创建读者
func (uc *CreateReaderUseCase) Execute(ctx context.Context, r *order.Reader) error {
	return uc.orderRepo.CreateReader(ctx, r)
}
