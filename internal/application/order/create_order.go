package order

import (
	"context"
	"fmt"

	"github.com/pustakalay/inventory/internal/domain/activity"
	"github.com/pustakalay/inventory/internal/domain/book"
	"github.com/pustakalay/inventory/internal/domain/order"
)

// CreateOrderUseCase 创建借阅单用例
// 设计说明:
// 1. 创建前校验读者与每本图书都存在,避免写入悬空外键
// 2. 创建成功后追加一条活动日志作为操作流水
//    (日志写入失败不回滚借阅单,流水是旁路记录)
type CreateOrderUseCase struct {
	orderRepo    order.Repository
	bookService  book.Service
	activityRepo activity.Repository
}

// NewCreateOrderUseCase 创建用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	bookService book.Service,
	activityRepo activity.Repository,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:    orderRepo,
		bookService:  bookService,
		activityRepo: activityRepo,
	}
}

// Execute 执行创建
func (uc *CreateOrderUseCase) Execute(ctx context.Context, readerID uint, books []order.OrderedBook, notes string) (*order.Order, error) {
	if len(books) == 0 {
		return nil, order.ErrNoBooks
	}
	for _, ob := range books {
		if ob.Quantity <= 0 {
			return nil, order.ErrInvalidQuantity
		}
	}

	if _, err := uc.orderRepo.FindReader(ctx, readerID); err != nil {
		return nil, err
	}
	for _, ob := range books {
		if _, err := uc.bookService.GetBook(ctx, ob.BookID); err != nil {
			return nil, err
		}
	}

	o := order.NewOrder(readerID, books, notes)
	if err := uc.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	uc.logActivity(ctx, o, "order_created",
		fmt.Sprintf("Order created with %d books", o.TotalQuantity()))
	return o, nil
}

// logActivity 追加操作流水(失败只忽略,不影响主流程)
func (uc *CreateOrderUseCase) logActivity(ctx context.Context, o *order.Order, action, details string) {
	orderID := o.ID
	readerID := o.ReaderID
	_ = uc.activityRepo.Create(ctx, &activity.ActivityLog{
		OrderID:  &orderID,
		ReaderID: &readerID,
		Action:   action,
		Details:  details,
	})
}
