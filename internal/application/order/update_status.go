package order

import (
	"context"
	"fmt"

	"github.com/pustakalay/inventory/internal/domain/activity"
	"github.com/pustakalay/inventory/internal/domain/order"
)

// UpdateOrderStatusUseCase 借阅单状态流转用例
// 状态机约束在领域实体中,这里负责编排:读取 → 流转 → 持久化 → 记流水
type UpdateOrderStatusUseCase struct {
	orderRepo    order.Repository
	activityRepo activity.Repository
}

// NewUpdateOrderStatusUseCase 创建用例
func NewUpdateOrderStatusUseCase(orderRepo order.Repository, activityRepo activity.Repository) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{orderRepo: orderRepo, activityRepo: activityRepo}
}

// Execute 执行流转
// status为字符串形式(pending/approved/returned/cancelled)
func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, id uint, status, notes string) (*order.Order, error) {
	target, ok := order.ParseStatus(status)
	if !ok {
		return nil, order.ErrInvalidStatus
	}

	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := o.Status
	if err := o.TransitionTo(target); err != nil {
		return nil, err
	}
	if notes != "" {
		o.Notes = notes
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	orderID := o.ID
	readerID := o.ReaderID
	_ = uc.activityRepo.Create(ctx, &activity.ActivityLog{
		OrderID:  &orderID,
		ReaderID: &readerID,
		Action:   "order_" + target.String(),
		Details:  fmt.Sprintf("Status changed from %s to %s", from, target),
	})

	return o, nil
}
